package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/boardcamp/api/internal/database/connection"
	"github.com/boardcamp/api/internal/models"
)

// psql builds the list queries with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Games struct {
	dbConn *connection.DBConn
}

func NewGames(conn *connection.DBConn) *Games {
	return &Games{conn}
}

func (g *Games) List(ctx context.Context) ([]models.GameWithCategory, error) {
	query, args, err := psql.
		Select(
			"g.id", "g.name", "g.image", "g.stock_total",
			"g.category_id", "g.price_per_day", "c.name",
		).
		From("games g").
		Join("categories c ON c.id = g.category_id").
		OrderBy("g.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building games query: %w", err)
	}

	rows, err := g.dbConn.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}
	defer rows.Close()

	games := make([]models.GameWithCategory, 0)
	for rows.Next() {
		var game models.GameWithCategory
		if err := rows.Scan(
			&game.ID,
			&game.Name,
			&game.Image,
			&game.StockTotal,
			&game.CategoryID,
			&game.PricePerDay,
			&game.CategoryName,
		); err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	return games, rows.Err()
}

func (g *Games) NameExists(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM games WHERE name = $1)`

	var exists bool
	if err := g.dbConn.Conn.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking game name: %w", err)
	}

	return exists, nil
}

func (g *Games) CategoryExists(ctx context.Context, categoryID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`

	var exists bool
	if err := g.dbConn.Conn.QueryRowContext(ctx, query, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking category: %w", err)
	}

	return exists, nil
}

func (g *Games) Insert(ctx context.Context, game models.Game) (int, error) {
	query := `
      INSERT INTO games (name, image, stock_total, category_id, price_per_day)
      VALUES ($1, $2, $3, $4, $5)
      RETURNING id
    `

	var id int
	err := g.dbConn.Conn.QueryRowContext(
		ctx, query,
		game.Name, game.Image, game.StockTotal, game.CategoryID, game.PricePerDay,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting game: %w", err)
	}

	return id, nil
}
