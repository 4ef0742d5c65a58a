package games

import (
	"context"
	"fmt"

	appErrors "github.com/boardcamp/api/internal/errors"
	"github.com/boardcamp/api/internal/models"
	"github.com/boardcamp/api/internal/validation"
)

type Repo interface {
	List(ctx context.Context) ([]models.GameWithCategory, error)
	NameExists(ctx context.Context, name string) (bool, error)
	CategoryExists(ctx context.Context, categoryID int) (bool, error)
	Insert(ctx context.Context, game models.Game) (int, error)
}

type Usecase struct {
	repo Repo
}

func NewUsecase(repo Repo) *Usecase {
	return &Usecase{repo: repo}
}

func (u *Usecase) List(ctx context.Context) ([]models.GameWithCategory, error) {
	return u.repo.List(ctx)
}

// Create validates the game, requires its category to exist and its name
// to be free, then inserts. A missing category is an input error, not a
// lookup miss.
func (u *Usecase) Create(ctx context.Context, game models.Game) error {
	switch {
	case !validation.IsValidName(game.Name):
		return fmt.Errorf("%w: game name must not be empty", appErrors.ErrInvalidInput)
	case !validation.IsPositive(game.StockTotal):
		return fmt.Errorf("%w: stockTotal must be greater than zero", appErrors.ErrInvalidInput)
	case !validation.IsPositive(game.PricePerDay):
		return fmt.Errorf("%w: pricePerDay must be greater than zero", appErrors.ErrInvalidInput)
	}

	categoryExists, err := u.repo.CategoryExists(ctx, game.CategoryID)
	if err != nil {
		return err
	}
	if !categoryExists {
		return appErrors.ErrCategoryNotFound
	}

	nameExists, err := u.repo.NameExists(ctx, game.Name)
	if err != nil {
		return err
	}
	if nameExists {
		return appErrors.ErrGameNameTaken
	}

	if _, err := u.repo.Insert(ctx, game); err != nil {
		return err
	}

	return nil
}
