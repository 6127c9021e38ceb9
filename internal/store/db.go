package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql operations the stores run their
// queries through. Both *sql.DB and *sql.Tx satisfy it, so the same
// store can execute against the connection pool or, via WithTx,
// inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
