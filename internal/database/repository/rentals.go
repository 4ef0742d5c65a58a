package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/boardcamp/api/internal/database/connection"
	appErrors "github.com/boardcamp/api/internal/errors"
	"github.com/boardcamp/api/internal/models"
)

type Rentals struct {
	dbConn *connection.DBConn
}

func NewRentals(conn *connection.DBConn) *Rentals {
	return &Rentals{conn}
}

func (r *Rentals) List(ctx context.Context) ([]models.RentalWithDetails, error) {
	query, args, err := psql.
		Select(
			"r.id", "r.customer_id", "r.game_id", "r.rent_date", "r.days_rented",
			"r.return_date", "r.original_price", "r.delay_fee",
			"c.name", "g.name", "g.category_id", "cat.name",
		).
		From("rentals r").
		Join("customers c ON c.id = r.customer_id").
		Join("games g ON g.id = r.game_id").
		Join("categories cat ON cat.id = g.category_id").
		OrderBy("r.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building rentals query: %w", err)
	}

	rows, err := r.dbConn.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing rentals: %w", err)
	}
	defer rows.Close()

	rentals := make([]models.RentalWithDetails, 0)
	for rows.Next() {
		var (
			rental     models.RentalWithDetails
			returnDate sql.NullTime
			delayFee   sql.NullInt64
		)
		if err := rows.Scan(
			&rental.ID,
			&rental.CustomerID,
			&rental.GameID,
			&rental.RentDate,
			&rental.DaysRented,
			&returnDate,
			&rental.OriginalPrice,
			&delayFee,
			&rental.Customer.Name,
			&rental.Game.Name,
			&rental.Game.CategoryID,
			&rental.Game.CategoryName,
		); err != nil {
			return nil, err
		}

		rental.Customer.ID = rental.CustomerID
		rental.Game.ID = rental.GameID
		if returnDate.Valid {
			date := models.NewDate(returnDate.Time)
			rental.ReturnDate = &date
		}
		if delayFee.Valid {
			fee := int(delayFee.Int64)
			rental.DelayFee = &fee
		}

		rentals = append(rentals, rental)
	}

	return rentals, rows.Err()
}

// Create admits a rental inside one transaction. The game row is locked
// with FOR UPDATE, so two concurrent creations for the same game cannot
// both pass the open-rentals count and overshoot the stock.
func (r *Rentals) Create(ctx context.Context, customerID, gameID, daysRented int, rentDate time.Time) (*models.Rental, error) {
	tx, err := r.dbConn.Conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}

	var txErr error
	defer func() {
		if txErr != nil {
			_ = tx.Rollback()
		}
	}()

	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`
	var customerExists bool
	if err := tx.QueryRowContext(ctx, query, customerID).Scan(&customerExists); err != nil {
		txErr = fmt.Errorf("error checking customer: %w", err)
		return nil, txErr
	}
	if !customerExists {
		txErr = appErrors.ErrCustomerNotFound
		return nil, txErr
	}

	query = `SELECT stock_total, price_per_day FROM games WHERE id = $1 FOR UPDATE`
	var stockTotal, pricePerDay int
	if err := tx.QueryRowContext(ctx, query, gameID).Scan(&stockTotal, &pricePerDay); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			txErr = appErrors.ErrGameNotFound
		} else {
			txErr = fmt.Errorf("error locking game: %w", err)
		}
		return nil, txErr
	}

	query = `SELECT COUNT(*) FROM rentals WHERE game_id = $1 AND return_date IS NULL`
	var open int
	if err := tx.QueryRowContext(ctx, query, gameID).Scan(&open); err != nil {
		txErr = fmt.Errorf("error counting open rentals: %w", err)
		return nil, txErr
	}
	if open >= stockTotal {
		txErr = appErrors.ErrGameOutOfStock
		return nil, txErr
	}

	// price is snapshotted here and never recalculated
	originalPrice := pricePerDay * daysRented

	query = `
      INSERT INTO rentals (customer_id, game_id, rent_date, days_rented, original_price)
      VALUES ($1, $2, $3, $4, $5)
      RETURNING id
    `
	var id int
	if err := tx.QueryRowContext(
		ctx, query,
		customerID, gameID, rentDate, daysRented, originalPrice,
	).Scan(&id); err != nil {
		txErr = fmt.Errorf("error inserting rental: %w", err)
		return nil, txErr
	}

	if err := tx.Commit(); err != nil {
		txErr = fmt.Errorf("error committing transaction: %w", err)
		return nil, txErr
	}

	return &models.Rental{
		ID:            id,
		CustomerID:    customerID,
		GameID:        gameID,
		RentDate:      models.NewDate(rentDate),
		DaysRented:    daysRented,
		OriginalPrice: originalPrice,
	}, nil
}

// Close settles an open rental: the fee for returnDate is computed from
// the locked row and the transition to closed happens exactly once. A
// rental that is absent or already closed reports ErrRentalNotFound.
func (r *Rentals) Close(ctx context.Context, id int, returnDate time.Time) (int, error) {
	tx, err := r.dbConn.Conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("error beginning transaction: %w", err)
	}

	var txErr error
	defer func() {
		if txErr != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
      SELECT r.rent_date, r.days_rented, g.price_per_day
      FROM rentals r
      JOIN games g ON g.id = r.game_id
      WHERE r.id = $1 AND r.return_date IS NULL
      FOR UPDATE OF r
    `
	var (
		rentDate    time.Time
		daysRented  int
		pricePerDay int
	)
	if err := tx.QueryRowContext(ctx, query, id).Scan(&rentDate, &daysRented, &pricePerDay); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			txErr = appErrors.ErrRentalNotFound
		} else {
			txErr = fmt.Errorf("error locking rental: %w", err)
		}
		return 0, txErr
	}

	delayFee := models.LateFee(rentDate, daysRented, pricePerDay, returnDate)

	query = `UPDATE rentals SET return_date = $1, delay_fee = $2 WHERE id = $3`
	if _, err := tx.ExecContext(ctx, query, returnDate, delayFee, id); err != nil {
		txErr = fmt.Errorf("error closing rental: %w", err)
		return 0, txErr
	}

	if err := tx.Commit(); err != nil {
		txErr = fmt.Errorf("error committing transaction: %w", err)
		return 0, txErr
	}

	return delayFee, nil
}
