package games_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	appErrors "github.com/boardcamp/api/internal/errors"
	"github.com/boardcamp/api/internal/models"
	"github.com/boardcamp/api/internal/usecases/games"
)

type repoMock struct {
	listFn           func(ctx context.Context) ([]models.GameWithCategory, error)
	nameExistsFn     func(ctx context.Context, name string) (bool, error)
	categoryExistsFn func(ctx context.Context, categoryID int) (bool, error)
	insertFn         func(ctx context.Context, game models.Game) (int, error)
}

func (m *repoMock) List(ctx context.Context) ([]models.GameWithCategory, error) {
	return m.listFn(ctx)
}
func (m *repoMock) NameExists(ctx context.Context, name string) (bool, error) {
	return m.nameExistsFn(ctx, name)
}
func (m *repoMock) CategoryExists(ctx context.Context, categoryID int) (bool, error) {
	return m.categoryExistsFn(ctx, categoryID)
}
func (m *repoMock) Insert(ctx context.Context, game models.Game) (int, error) {
	return m.insertFn(ctx, game)
}

func validGame() models.Game {
	return models.Game{
		Name:        "Catan",
		Image:       "http://example.com/catan.png",
		StockTotal:  3,
		CategoryID:  1,
		PricePerDay: 1500,
	}
}

func TestCreateValidation(t *testing.T) {
	u := games.NewUsecase(&repoMock{})
	ctx := context.Background()

	g := validGame()
	g.Name = ""
	require.ErrorIs(t, u.Create(ctx, g), appErrors.ErrInvalidInput)

	g = validGame()
	g.StockTotal = 0
	require.ErrorIs(t, u.Create(ctx, g), appErrors.ErrInvalidInput)

	g = validGame()
	g.PricePerDay = -1
	require.ErrorIs(t, u.Create(ctx, g), appErrors.ErrInvalidInput)
}

func TestCreateUnknownCategory(t *testing.T) {
	u := games.NewUsecase(&repoMock{
		categoryExistsFn: func(ctx context.Context, categoryID int) (bool, error) {
			return false, nil
		},
	})

	err := u.Create(context.Background(), validGame())
	require.ErrorIs(t, err, appErrors.ErrCategoryNotFound)
}

func TestCreateDuplicateName(t *testing.T) {
	u := games.NewUsecase(&repoMock{
		categoryExistsFn: func(ctx context.Context, categoryID int) (bool, error) {
			return true, nil
		},
		nameExistsFn: func(ctx context.Context, name string) (bool, error) {
			return true, nil
		},
	})

	err := u.Create(context.Background(), validGame())
	require.ErrorIs(t, err, appErrors.ErrGameNameTaken)
}

func TestCreateSuccess(t *testing.T) {
	var inserted models.Game
	u := games.NewUsecase(&repoMock{
		categoryExistsFn: func(ctx context.Context, categoryID int) (bool, error) {
			return true, nil
		},
		nameExistsFn: func(ctx context.Context, name string) (bool, error) {
			return false, nil
		},
		insertFn: func(ctx context.Context, game models.Game) (int, error) {
			inserted = game
			return 7, nil
		},
	})

	require.NoError(t, u.Create(context.Background(), validGame()))
	require.Equal(t, validGame(), inserted)
}
