// internal/state/mock.go
package state

import "database/sql"

// Mock is a test double for Manager.
type Mock struct {
	prefs  map[string]string
	writes int
	err    error
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{prefs: make(map[string]string)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) GetPreference(key string) (string, bool, error) {
	v, ok := m.prefs[key]
	return v, ok, nil
}

func (m *Mock) SetPreference(key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.prefs[key] = value
	m.writes++
	return nil
}

func (m *Mock) LoadTheme() (string, bool, error) { return m.GetPreference(ThemeKey) }

func (m *Mock) SaveTheme(value string) error { return m.SetPreference(ThemeKey, value) }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetError(err error) { m.err = err }

func (m *Mock) Writes() int { return m.writes }

func (m *Mock) Closed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
