package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/boardcamp/api/internal/usecases/categories"
	"github.com/boardcamp/api/internal/usecases/customers"
	"github.com/boardcamp/api/internal/usecases/games"
	"github.com/boardcamp/api/internal/usecases/rentals"
)

type Server struct {
	*echo.Echo
	categories *categories.Usecase
	games      *games.Usecase
	customers  *customers.Usecase
	rentals    *rentals.Usecase
}

func NewServer(
	categoriesUsecase *categories.Usecase,
	gamesUsecase *games.Usecase,
	customersUsecase *customers.Usecase,
	rentalsUsecase *rentals.Usecase,
) *Server {
	e := echo.New()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(ErrorLogger())
	e.Logger.SetLevel(log.ERROR)
	e.JSONSerializer = Serializer{}
	e.Validator = &requestValidator{validate: validator.New()}

	s := &Server{e, categoriesUsecase, gamesUsecase, customersUsecase, rentalsUsecase}

	s.registerHandlers()

	return s
}

func (s *Server) registerHandlers() {
	s.GET("/health", s.HealthHandler())

	s.GET("/categories", s.ListCategoriesHandler())
	s.POST("/categories", s.CreateCategoryHandler())

	s.GET("/games", s.ListGamesHandler())
	s.POST("/games", s.CreateGameHandler())

	s.GET("/customers", s.ListCustomersHandler())
	s.GET("/customers/:id", s.GetCustomerHandler())
	s.POST("/customers", s.CreateCustomerHandler())
	s.PUT("/customers/:id", s.UpdateCustomerHandler())

	s.GET("/rentals", s.ListRentalsHandler())
	s.POST("/rentals", s.CreateRentalHandler())
	s.POST("/rentals/:id/return", s.CloseRentalHandler())
}

// requestValidator runs go-playground struct validation on bound request
// bodies; a failed rule is a 400.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
