package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/boardcamp/api/internal/database/connection"
	appErrors "github.com/boardcamp/api/internal/errors"
	"github.com/boardcamp/api/internal/models"
)

type Customers struct {
	dbConn *connection.DBConn
}

func NewCustomers(conn *connection.DBConn) *Customers {
	return &Customers{conn}
}

func (c *Customers) List(ctx context.Context, cpfPrefix string) ([]models.Customer, error) {
	builder := psql.
		Select("id", "name", "phone", "cpf", "birthday").
		From("customers")
	if cpfPrefix != "" {
		builder = builder.Where(sq.Like{"cpf": cpfPrefix + "%"})
	}

	query, args, err := builder.OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building customers query: %w", err)
	}

	rows, err := c.dbConn.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var customer models.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Phone,
			&customer.CPF,
			&customer.Birthday,
		); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

func (c *Customers) Get(ctx context.Context, id int) (*models.Customer, error) {
	query := `SELECT id, name, phone, cpf, birthday FROM customers WHERE id = $1`

	var customer models.Customer
	err := c.dbConn.Conn.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.CPF,
		&customer.Birthday,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("error getting customer: %w", err)
	}

	return &customer, nil
}

func (c *Customers) CPFExists(ctx context.Context, cpf string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE cpf = $1)`

	var exists bool
	if err := c.dbConn.Conn.QueryRowContext(ctx, query, cpf).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking cpf: %w", err)
	}

	return exists, nil
}

// CPFOwnedByOther reports whether the cpf is registered to a customer
// other than the one being updated.
func (c *Customers) CPFOwnedByOther(ctx context.Context, cpf string, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE cpf = $1 AND id <> $2)`

	var exists bool
	if err := c.dbConn.Conn.QueryRowContext(ctx, query, cpf, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking cpf: %w", err)
	}

	return exists, nil
}

func (c *Customers) Insert(ctx context.Context, customer models.Customer) (int, error) {
	query := `
      INSERT INTO customers (name, phone, cpf, birthday)
      VALUES ($1, $2, $3, $4)
      RETURNING id
    `

	var id int
	err := c.dbConn.Conn.QueryRowContext(
		ctx, query,
		customer.Name, customer.Phone, customer.CPF, customer.Birthday,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting customer: %w", err)
	}

	return id, nil
}

// Update rewrites the record in place. A missing id touches zero rows
// and is not an error; the affected count is returned for callers that
// care.
func (c *Customers) Update(ctx context.Context, customer models.Customer) (int64, error) {
	query := `
      UPDATE customers SET name = $1, phone = $2, cpf = $3, birthday = $4
      WHERE id = $5
    `

	res, err := c.dbConn.Conn.ExecContext(
		ctx, query,
		customer.Name, customer.Phone, customer.CPF, customer.Birthday, customer.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("error updating customer: %w", err)
	}

	return res.RowsAffected()
}
