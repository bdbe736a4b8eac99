package theme

// Store persists the theme preference.
type Store interface {
	// LoadTheme returns the stored value and whether one exists.
	LoadTheme() (string, bool, error)
	SaveTheme(value string) error
}

// MemoryStore is a Store kept in memory. It counts writes.
type MemoryStore struct {
	Value  string
	Set    bool
	Writes int
	Err    error // returned by SaveTheme when set
}

// LoadTheme implements Store.
func (m *MemoryStore) LoadTheme() (string, bool, error) {
	return m.Value, m.Set, nil
}

// SaveTheme implements Store.
func (m *MemoryStore) SaveTheme(value string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Value = value
	m.Set = true
	m.Writes++
	return nil
}

// Verify MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)
