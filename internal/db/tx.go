// Package db holds small helpers shared by the SQLite-backed stores.
package db

import (
	"database/sql"
)

// Querier runs single-row queries. Both *sql.DB and *sql.Tx satisfy it.
type Querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

// Execer runs statements. Both *sql.DB and *sql.Tx satisfy it.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
	_ Execer  = (*sql.DB)(nil)
	_ Execer  = (*sql.Tx)(nil)
)

// WithTx executes fn within a transaction.
// It handles Begin, Rollback on error, and Commit on success.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
