package state

import (
	"database/sql"
	"fmt"

	"github.com/llehouerou/decoded/internal/db"
)

// migrations[i] moves the schema from version i to version i+1.
var migrations = []string{
	`CREATE TABLE preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
}

func initSchema(conn *sql.DB) error {
	if _, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return err
	}

	version, err := schemaVersion(conn)
	if err != nil {
		return err
	}
	for v := version; v < len(migrations); v++ {
		err := db.WithTx(conn, func(tx *sql.Tx) error {
			if _, err := tx.Exec(migrations[v]); err != nil {
				return err
			}
			_, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, v+1)
			return err
		})
		if err != nil {
			return fmt.Errorf("migrate to schema version %d: %w", v+1, err)
		}
	}
	return nil
}

func schemaVersion(q db.Querier) (int, error) {
	var version int
	err := q.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	return version, err
}
