package repository

import (
	"context"
	"fmt"

	"github.com/boardcamp/api/internal/database/connection"
	"github.com/boardcamp/api/internal/models"
)

type Categories struct {
	dbConn *connection.DBConn
}

func NewCategories(conn *connection.DBConn) *Categories {
	return &Categories{conn}
}

func (c *Categories) List(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id`

	rows, err := c.dbConn.Conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (c *Categories) NameExists(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)`

	var exists bool
	if err := c.dbConn.Conn.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking category name: %w", err)
	}

	return exists, nil
}

func (c *Categories) Insert(ctx context.Context, name string) (int, error) {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`

	var id int
	if err := c.dbConn.Conn.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting category: %w", err)
	}

	return id, nil
}
