// internal/state/interface.go
package state

import (
	"database/sql"

	"github.com/llehouerou/decoded/internal/theme"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	theme.Store
	DB() *sql.DB
	GetPreference(key string) (string, bool, error)
	SetPreference(key, value string) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
