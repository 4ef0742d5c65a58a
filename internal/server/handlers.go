package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	appErrors "github.com/boardcamp/api/internal/errors"
	"github.com/boardcamp/api/internal/models"
)

func getIDFromRequest(c echo.Context) (int, error) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}

func (s *Server) HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *Server) ListCategoriesHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		categories, err := s.categories.List(c.Request().Context())
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, categories)
	}
}

func (s *Server) CreateCategoryHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.CreateCategoryRequest)
		if err := c.Bind(req); err != nil {
			return err
		}
		if err := c.Validate(req); err != nil {
			return err
		}

		if err := s.categories.Create(c.Request().Context(), req.Name); err != nil {
			switch {
			case errors.Is(err, appErrors.ErrInvalidInput):
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			case errors.Is(err, appErrors.ErrCategoryNameTaken):
				return echo.NewHTTPError(http.StatusConflict, err.Error())
			default:
				return err
			}
		}

		return c.NoContent(http.StatusCreated)
	}
}

func (s *Server) ListGamesHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		games, err := s.games.List(c.Request().Context())
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, games)
	}
}

func (s *Server) CreateGameHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.CreateGameRequest)
		if err := c.Bind(req); err != nil {
			return err
		}
		if err := c.Validate(req); err != nil {
			return err
		}

		game := models.Game{
			Name:        req.Name,
			Image:       req.Image,
			StockTotal:  req.StockTotal,
			CategoryID:  req.CategoryID,
			PricePerDay: req.PricePerDay,
		}
		if err := s.games.Create(c.Request().Context(), game); err != nil {
			switch {
			// a missing category is bad input here, not a 404
			case errors.Is(err, appErrors.ErrInvalidInput),
				errors.Is(err, appErrors.ErrCategoryNotFound):
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			case errors.Is(err, appErrors.ErrGameNameTaken):
				return echo.NewHTTPError(http.StatusConflict, err.Error())
			default:
				return err
			}
		}

		return c.NoContent(http.StatusCreated)
	}
}

func (s *Server) ListCustomersHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		customers, err := s.customers.List(c.Request().Context(), c.QueryParam("cpf"))
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, customers)
	}
}

func (s *Server) GetCustomerHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromRequest(c)
		if err != nil {
			return err
		}

		customer, err := s.customers.Get(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, appErrors.ErrCustomerNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, err.Error())
			}
			return err
		}

		return c.JSON(http.StatusOK, customer)
	}
}

func (s *Server) CreateCustomerHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.CustomerRequest)
		if err := c.Bind(req); err != nil {
			return err
		}
		if err := c.Validate(req); err != nil {
			return err
		}

		if err := s.customers.Create(c.Request().Context(), *req); err != nil {
			switch {
			case errors.Is(err, appErrors.ErrInvalidInput):
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			case errors.Is(err, appErrors.ErrCPFTaken):
				return echo.NewHTTPError(http.StatusConflict, err.Error())
			default:
				return err
			}
		}

		return c.NoContent(http.StatusCreated)
	}
}

func (s *Server) UpdateCustomerHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromRequest(c)
		if err != nil {
			return err
		}

		req := new(models.CustomerRequest)
		if err := c.Bind(req); err != nil {
			return err
		}
		if err := c.Validate(req); err != nil {
			return err
		}

		if err := s.customers.Update(c.Request().Context(), id, *req); err != nil {
			switch {
			case errors.Is(err, appErrors.ErrInvalidInput):
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			case errors.Is(err, appErrors.ErrCPFTaken):
				return echo.NewHTTPError(http.StatusConflict, err.Error())
			default:
				return err
			}
		}

		return c.NoContent(http.StatusCreated)
	}
}

func (s *Server) ListRentalsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		rentals, err := s.rentals.List(c.Request().Context())
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, rentals)
	}
}

func (s *Server) CreateRentalHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.CreateRentalRequest)
		if err := c.Bind(req); err != nil {
			return err
		}
		if err := c.Validate(req); err != nil {
			return err
		}

		rental, err := s.rentals.Create(
			c.Request().Context(),
			req.CustomerID, req.GameID, req.DaysRented,
		)
		if err != nil {
			switch {
			// absent customer/game and exhausted stock are all input
			// errors on this endpoint
			case errors.Is(err, appErrors.ErrInvalidInput),
				errors.Is(err, appErrors.ErrCustomerNotFound),
				errors.Is(err, appErrors.ErrGameNotFound),
				errors.Is(err, appErrors.ErrGameOutOfStock):
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			default:
				return err
			}
		}

		return c.JSON(http.StatusOK, rental)
	}
}

func (s *Server) CloseRentalHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := getIDFromRequest(c)
		if err != nil {
			return err
		}

		if err := s.rentals.Close(c.Request().Context(), id); err != nil {
			if errors.Is(err, appErrors.ErrRentalNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, err.Error())
			}
			return err
		}

		return c.NoContent(http.StatusOK)
	}
}
