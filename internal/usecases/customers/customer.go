package customers

import (
	"context"
	"fmt"

	appErrors "github.com/boardcamp/api/internal/errors"
	"github.com/boardcamp/api/internal/models"
	"github.com/boardcamp/api/internal/validation"
)

type Repo interface {
	List(ctx context.Context, cpfPrefix string) ([]models.Customer, error)
	Get(ctx context.Context, id int) (*models.Customer, error)
	CPFExists(ctx context.Context, cpf string) (bool, error)
	CPFOwnedByOther(ctx context.Context, cpf string, id int) (bool, error)
	Insert(ctx context.Context, customer models.Customer) (int, error)
	Update(ctx context.Context, customer models.Customer) (int64, error)
}

type Usecase struct {
	repo Repo
}

func NewUsecase(repo Repo) *Usecase {
	return &Usecase{repo: repo}
}

func (u *Usecase) List(ctx context.Context, cpfPrefix string) ([]models.Customer, error) {
	return u.repo.List(ctx, cpfPrefix)
}

func (u *Usecase) Get(ctx context.Context, id int) (*models.Customer, error) {
	return u.repo.Get(ctx, id)
}

func (u *Usecase) Create(ctx context.Context, req models.CustomerRequest) error {
	customer, err := validate(req)
	if err != nil {
		return err
	}

	exists, err := u.repo.CPFExists(ctx, customer.CPF)
	if err != nil {
		return err
	}
	if exists {
		return appErrors.ErrCPFTaken
	}

	if _, err := u.repo.Insert(ctx, *customer); err != nil {
		return err
	}

	return nil
}

// Update replaces the record. The cpf conflict check excludes the record
// being updated: only a cpf owned by another customer is a conflict. An
// id that matches nothing touches zero rows and still succeeds.
func (u *Usecase) Update(ctx context.Context, id int, req models.CustomerRequest) error {
	customer, err := validate(req)
	if err != nil {
		return err
	}
	customer.ID = id

	taken, err := u.repo.CPFOwnedByOther(ctx, customer.CPF, id)
	if err != nil {
		return err
	}
	if taken {
		return appErrors.ErrCPFTaken
	}

	if _, err := u.repo.Update(ctx, *customer); err != nil {
		return err
	}

	return nil
}

func validate(req models.CustomerRequest) (*models.Customer, error) {
	if !validation.IsValidName(req.Name) {
		return nil, fmt.Errorf("%w: name must not be empty", appErrors.ErrInvalidInput)
	}
	if !validation.IsValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: phone must be 10 or 11 digits", appErrors.ErrInvalidInput)
	}
	if !validation.IsValidCPF(req.CPF) {
		return nil, fmt.Errorf("%w: cpf must be 11 digits", appErrors.ErrInvalidInput)
	}
	birthday, ok := validation.ParseDate(req.Birthday)
	if !ok {
		return nil, fmt.Errorf("%w: birthday must be a valid date", appErrors.ErrInvalidInput)
	}

	return &models.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		CPF:      req.CPF,
		Birthday: models.NewDate(birthday),
	}, nil
}
