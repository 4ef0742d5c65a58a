package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardcamp/api/internal/database/connection"
	appErrors "github.com/boardcamp/api/internal/errors"
)

func newMockConn(t *testing.T) (*connection.DBConn, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &connection.DBConn{Conn: db}, mock
}

func TestRentalsCreate(t *testing.T) {
	rentDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("admits while stock remains and snapshots the price", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewRentals(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM customers WHERE id = \$1\)`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(`SELECT stock_total, price_per_day FROM games WHERE id = \$1 FOR UPDATE`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"stock_total", "price_per_day"}).AddRow(3, 1500))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rentals WHERE game_id = \$1 AND return_date IS NULL`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(`INSERT INTO rentals \(customer_id, game_id, rent_date, days_rented, original_price\) VALUES \(\$1, \$2, \$3, \$4, \$5\) RETURNING id`).
			WithArgs(1, 2, rentDate, 3, 4500).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectCommit()

		rental, err := repo.Create(context.Background(), 1, 2, 3, rentDate)
		require.NoError(t, err)
		assert.Equal(t, 10, rental.ID)
		assert.Equal(t, 4500, rental.OriginalPrice)
		assert.Nil(t, rental.ReturnDate)
		assert.Nil(t, rental.DelayFee)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects when every copy is out", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewRentals(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM customers WHERE id = \$1\)`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(`SELECT stock_total, price_per_day FROM games WHERE id = \$1 FOR UPDATE`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"stock_total", "price_per_day"}).AddRow(1, 1500))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rentals WHERE game_id = \$1 AND return_date IS NULL`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), 1, 2, 3, rentDate)
		assert.ErrorIs(t, err, appErrors.ErrGameOutOfStock)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an unknown customer", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewRentals(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM customers WHERE id = \$1\)`).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), 99, 2, 3, rentDate)
		assert.ErrorIs(t, err, appErrors.ErrCustomerNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an unknown game", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewRentals(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM customers WHERE id = \$1\)`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(`SELECT stock_total, price_per_day FROM games WHERE id = \$1 FOR UPDATE`).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"stock_total", "price_per_day"}))
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), 1, 99, 3, rentDate)
		assert.ErrorIs(t, err, appErrors.ErrGameNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalsClose(t *testing.T) {
	lockQuery := `SELECT r.rent_date, r.days_rented, g.price_per_day FROM rentals r JOIN games g ON g.id = r.game_id WHERE r.id = \$1 AND r.return_date IS NULL FOR UPDATE OF r`

	t.Run("charges the late fee on an overdue return", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewRentals(conn)

		rentDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		returnDate := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC) // due 2024-03-04

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows([]string{"rent_date", "days_rented", "price_per_day"}).
				AddRow(rentDate, 3, 1500))
		mock.ExpectExec(`UPDATE rentals SET return_date = \$1, delay_fee = \$2 WHERE id = \$3`).
			WithArgs(returnDate, 4500, 10).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		fee, err := repo.Close(context.Background(), 10, returnDate)
		require.NoError(t, err)
		assert.Equal(t, 4500, fee)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("charges nothing on an on-time return", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewRentals(conn)

		rentDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		returnDate := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows([]string{"rent_date", "days_rented", "price_per_day"}).
				AddRow(rentDate, 3, 1500))
		mock.ExpectExec(`UPDATE rentals SET return_date = \$1, delay_fee = \$2 WHERE id = \$3`).
			WithArgs(returnDate, 0, 10).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		fee, err := repo.Close(context.Background(), 10, returnDate)
		require.NoError(t, err)
		assert.Equal(t, 0, fee)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports an already closed rental as absent", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewRentals(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows([]string{"rent_date", "days_rented", "price_per_day"}))
		mock.ExpectRollback()

		_, err := repo.Close(context.Background(), 10, time.Now())
		assert.ErrorIs(t, err, appErrors.ErrRentalNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalsList(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewRentals(conn)

	rentDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	returnDate := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT r.id, r.customer_id, r.game_id, r.rent_date, r.days_rented, r.return_date, r.original_price, r.delay_fee, c.name, g.name, g.category_id, cat.name FROM rentals r JOIN customers c ON c.id = r.customer_id JOIN games g ON g.id = r.game_id JOIN categories cat ON cat.id = g.category_id ORDER BY r.id`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "game_id", "rent_date", "days_rented",
			"return_date", "original_price", "delay_fee",
			"c_name", "g_name", "g_category_id", "cat_name",
		}).
			AddRow(1, 2, 3, rentDate, 3, nil, 4500, nil, "João", "Catan", 4, "Euro").
			AddRow(2, 2, 3, rentDate, 3, returnDate, 4500, 1500, "João", "Catan", 4, "Euro"))

	rentals, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rentals, 2)

	open, closed := rentals[0], rentals[1]
	assert.Nil(t, open.ReturnDate)
	assert.Nil(t, open.DelayFee)
	assert.Equal(t, 2, open.Customer.ID)
	assert.Equal(t, "João", open.Customer.Name)
	assert.Equal(t, 3, open.Game.ID)
	assert.Equal(t, "Catan", open.Game.Name)
	assert.Equal(t, 4, open.Game.CategoryID)
	assert.Equal(t, "Euro", open.Game.CategoryName)

	require.NotNil(t, closed.ReturnDate)
	assert.Equal(t, "2024-03-05", closed.ReturnDate.String())
	require.NotNil(t, closed.DelayFee)
	assert.Equal(t, 1500, *closed.DelayFee)

	require.NoError(t, mock.ExpectationsWereMet())
}
