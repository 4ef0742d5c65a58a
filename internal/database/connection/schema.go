package connection

import (
	"context"
	"fmt"
)

// schema is applied in order at boot. Column names are explicit
// snake_case so no statement depends on quoted mixed-case identifiers.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS games (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		image TEXT NOT NULL DEFAULT '',
		stock_total INT NOT NULL CHECK (stock_total > 0),
		category_id INT NOT NULL REFERENCES categories (id),
		price_per_day INT NOT NULL CHECK (price_per_day > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone VARCHAR(11) NOT NULL,
		cpf VARCHAR(11) NOT NULL UNIQUE,
		birthday DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rentals (
		id SERIAL PRIMARY KEY,
		customer_id INT NOT NULL REFERENCES customers (id),
		game_id INT NOT NULL REFERENCES games (id),
		rent_date DATE NOT NULL,
		days_rented INT NOT NULL CHECK (days_rented > 0),
		return_date DATE,
		original_price INT NOT NULL,
		delay_fee INT
	)`,
}

// Migrate creates the four tables if they do not exist yet.
func (c *DBConn) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := c.Conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("error applying schema: %w", err)
		}
	}
	return nil
}
