package theme

import (
	"errors"
	"testing"
	"time"
)

type failingStore struct{ err error }

func (f failingStore) LoadTheme() (string, bool, error) { return "", false, f.err }
func (f failingStore) SaveTheme(string) error           { return f.err }

func TestNew_InitialTheme(t *testing.T) {
	tests := []struct {
		name  string
		store Store
		want  Theme
	}{
		{"nil store", nil, Dark},
		{"absent", &MemoryStore{}, Dark},
		{"light", &MemoryStore{Value: "light", Set: true}, Light},
		{"dark", &MemoryStore{Value: "dark", Set: true}, Dark},
		{"invalid", &MemoryStore{Value: "sepia", Set: true}, Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.store, nil)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			s := m.Snapshot()
			if s.Theme != tt.want {
				t.Errorf("Theme = %v, want %v", s.Theme, tt.want)
			}
			if s.Phase != Idle || s.LogicTransitioning || s.OverlayVisible || s.Direction != None {
				t.Errorf("initial snapshot not idle: %+v", s)
			}
		})
	}
}

func TestNew_StoreErrorStillUsable(t *testing.T) {
	m, err := New(failingStore{err: errors.New("disk")}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if m == nil || m.Theme() != Dark {
		t.Fatalf("want usable dark machine, got %+v", m)
	}
}

func TestMachine_FullTransition(t *testing.T) {
	store := &MemoryStore{}
	m, _ := New(store, nil)

	var swapped []Theme
	m.OnSwap(func(th Theme) { swapped = append(swapped, th) })

	if !m.Initiate() {
		t.Fatal("Initiate() = false, want true")
	}
	s := m.Snapshot()
	if s.Phase != OverlayEntering || !s.OverlayVisible || !s.LogicTransitioning || s.Direction != ToLight {
		t.Fatalf("after Initiate: %+v", s)
	}
	if s.Theme != Dark {
		t.Error("theme must not change before the swap point")
	}
	if store.Writes != 0 {
		t.Error("store written before the swap point")
	}

	if !m.EntryComplete() {
		t.Fatal("EntryComplete() = false, want true")
	}
	s = m.Snapshot()
	if s.Theme != Light || s.OverlayVisible || s.Phase != OverlayExiting || !s.LogicTransitioning {
		t.Fatalf("after EntryComplete: %+v", s)
	}
	if store.Value != "light" || store.Writes != 1 {
		t.Errorf("store = %q (%d writes), want light (1 write)", store.Value, store.Writes)
	}
	if len(swapped) != 1 || swapped[0] != Light {
		t.Errorf("observers saw %v, want [light]", swapped)
	}

	if !m.ExitComplete() {
		t.Fatal("ExitComplete() = false, want true")
	}
	s = m.Snapshot()
	if s.Phase != Idle || s.LogicTransitioning || s.Direction != None {
		t.Fatalf("after ExitComplete: %+v", s)
	}
}

func TestMachine_DoubleInitiateSwapsOnce(t *testing.T) {
	store := &MemoryStore{Value: "light", Set: true}
	m, _ := New(store, nil)
	swaps := 0
	m.OnSwap(func(Theme) { swaps++ })

	if !m.Initiate() {
		t.Fatal("first Initiate rejected")
	}
	if m.Initiate() {
		t.Fatal("second Initiate accepted mid-transition")
	}
	m.EntryComplete()
	if m.Initiate() {
		t.Fatal("Initiate accepted while overlay exits")
	}
	m.EntryComplete() // duplicate signal
	m.ExitComplete()

	s := m.Snapshot()
	if swaps != 1 || store.Writes != 1 {
		t.Errorf("swaps = %d, writes = %d, want 1 and 1", swaps, store.Writes)
	}
	if s.Theme != Dark || s.Phase != Idle || s.LogicTransitioning {
		t.Errorf("final snapshot = %+v", s)
	}
}

func TestMachine_OutOfOrderSignalsIgnored(t *testing.T) {
	m, _ := New(&MemoryStore{}, nil)
	if m.EntryComplete() {
		t.Error("EntryComplete accepted while idle")
	}
	if m.ExitComplete() {
		t.Error("ExitComplete accepted while idle")
	}
	m.Initiate()
	if m.ExitComplete() {
		t.Error("ExitComplete accepted while entering")
	}
}

func TestMachine_SaveErrorStillSwaps(t *testing.T) {
	store := &MemoryStore{Err: errors.New("read-only")}
	m, _ := New(store, nil)
	m.Initiate()
	m.EntryComplete()
	if m.Theme() != Light {
		t.Errorf("Theme = %v, want light", m.Theme())
	}
}

func TestMachine_RoundTrip(t *testing.T) {
	store := &MemoryStore{}
	m, _ := New(store, nil)
	for range 2 {
		m.Initiate()
		m.EntryComplete()
		m.ExitComplete()
	}
	if m.Theme() != Dark || store.Writes != 2 || store.Value != "dark" {
		t.Errorf("theme = %v, store = %q/%d", m.Theme(), store.Value, store.Writes)
	}
}

func TestParse(t *testing.T) {
	if th, err := Parse(" Light "); err != nil || th != Light {
		t.Errorf("Parse(Light) = %v, %v", th, err)
	}
	if _, err := Parse("blue"); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("Parse(blue) error = %v, want ErrInvalidTheme", err)
	}
}

func TestTiming(t *testing.T) {
	if got := Timing(ToLight); got.Enter != 1200*time.Millisecond || got.Exit != 300*time.Millisecond {
		t.Errorf("Timing(ToLight) = %+v", got)
	}
	if got := Timing(ToDark); got.Enter != 500*time.Millisecond || got.Exit != 600*time.Millisecond {
		t.Errorf("Timing(ToDark) = %+v", got)
	}
	if got := Timing(None); got != (Timings{}) {
		t.Errorf("Timing(None) = %+v", got)
	}
}
