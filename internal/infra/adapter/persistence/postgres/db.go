// Package postgres implements the repository contracts on PostgreSQL through database/sql.
package postgres

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and by the circuit-breaker wrapper around it.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}
