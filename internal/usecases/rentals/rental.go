package rentals

import (
	"context"
	"fmt"
	"time"

	appErrors "github.com/boardcamp/api/internal/errors"
	"github.com/boardcamp/api/internal/models"
	"github.com/boardcamp/api/internal/validation"
)

type Repo interface {
	List(ctx context.Context) ([]models.RentalWithDetails, error)
	Create(ctx context.Context, customerID, gameID, daysRented int, rentDate time.Time) (*models.Rental, error)
	Close(ctx context.Context, id int, returnDate time.Time) (int, error)
}

type Usecase struct {
	repo Repo
	now  func() time.Time
}

func NewUsecase(repo Repo) *Usecase {
	return &Usecase{repo: repo, now: time.Now}
}

func (u *Usecase) List(ctx context.Context) ([]models.RentalWithDetails, error) {
	return u.repo.List(ctx)
}

// Create opens a rental dated today. Existence of the customer and the
// game, the stock admission check and the price snapshot all happen in
// the repository's transaction.
func (u *Usecase) Create(ctx context.Context, customerID, gameID, daysRented int) (*models.Rental, error) {
	if !validation.IsPositive(daysRented) {
		return nil, fmt.Errorf("%w: daysRented must be greater than zero", appErrors.ErrInvalidInput)
	}

	return u.repo.Create(ctx, customerID, gameID, daysRented, models.DateOnly(u.now()))
}

// Close returns a rental today, charging the late fee if it is overdue.
func (u *Usecase) Close(ctx context.Context, id int) error {
	_, err := u.repo.Close(ctx, id, models.DateOnly(u.now()))
	return err
}
