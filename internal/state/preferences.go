package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/decoded/internal/db"
)

// ThemeKey is the preference holding "light" or "dark".
const ThemeKey = "theme"

// GetPreference returns the value stored under key and whether it exists.
func (m *Manager) GetPreference(key string) (string, bool, error) {
	return getPreference(m.db, key)
}

// SetPreference stores value under key, replacing any previous value.
func (m *Manager) SetPreference(key, value string) error {
	return db.WithTx(m.db, func(tx *sql.Tx) error {
		return setPreference(tx, key, value)
	})
}

// LoadTheme implements theme.Store.
func (m *Manager) LoadTheme() (string, bool, error) {
	return m.GetPreference(ThemeKey)
}

// SaveTheme implements theme.Store.
func (m *Manager) SaveTheme(value string) error {
	return m.SetPreference(ThemeKey, value)
}

func getPreference(q db.Querier, key string) (string, bool, error) {
	var value string
	err := q.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func setPreference(e db.Execer, key, value string) error {
	_, err := e.Exec(`
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())
	return err
}
