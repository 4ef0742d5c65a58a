package connection

import (
	"database/sql"
	"fmt"

	backoff "github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"

	"github.com/boardcamp/api/internal/utils"
)

// DBConn wraps the shared *sql.DB handle. Both the pgx stdlib driver
// ("pgx") and lib/pq ("postgres") are registered; the caller picks one
// by driver name.
type DBConn struct {
	Conn *sql.DB
}

func NewDBConn(driverName, connString string) (*DBConn, error) {
	db, err := sql.Open(driverName, connString)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}

	// the database may come up after the API in containerized setups
	if err := backoff.Retry(db.Ping, utils.ConnectBackoff()); err != nil {
		return nil, fmt.Errorf("could not reach db: %w", err)
	}

	return &DBConn{Conn: db}, nil
}
