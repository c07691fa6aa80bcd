// Package dbx holds the database/sql plumbing shared by the SQLite
// repositories: the DBTX handle interface and transaction helpers.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a new transaction on db. It commits when fn
// returns nil and rolls back on error or panic; panics are re-raised.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()

	return fn(ctx, tx)
}

// Atomic runs fn so that its writes land together. A *sql.DB handle gets
// a fresh transaction; any other handle (typically a *sql.Tx owned by the
// caller) is used as is and the caller decides commit or rollback.
func Atomic(ctx context.Context, h DBTX, fn func(ctx context.Context, tx DBTX) error) error {
	if db, ok := h.(*sql.DB); ok {
		return WithTx(ctx, db, nil, fn)
	}
	return fn(ctx, h)
}
