package categories

import (
	"context"
	"fmt"

	appErrors "github.com/boardcamp/api/internal/errors"
	"github.com/boardcamp/api/internal/models"
	"github.com/boardcamp/api/internal/validation"
)

type Repo interface {
	List(ctx context.Context) ([]models.Category, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Insert(ctx context.Context, name string) (int, error)
}

type Usecase struct {
	repo Repo
}

func NewUsecase(repo Repo) *Usecase {
	return &Usecase{repo: repo}
}

func (u *Usecase) List(ctx context.Context) ([]models.Category, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) Create(ctx context.Context, name string) error {
	if !validation.IsValidName(name) {
		return fmt.Errorf("%w: category name must not be empty", appErrors.ErrInvalidInput)
	}

	exists, err := u.repo.NameExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return appErrors.ErrCategoryNameTaken
	}

	if _, err := u.repo.Insert(ctx, name); err != nil {
		return err
	}

	return nil
}
