package theme

import (
	"fmt"
	"log/slog"
)

// Snapshot is the theme state handed to renderers.
type Snapshot struct {
	Theme              Theme
	Direction          Direction
	OverlayVisible     bool
	LogicTransitioning bool
	Phase              Phase
}

// Machine owns the theme and the transition protocol. It is driven from a
// single goroutine; the overlay reports the end of its entry and exit
// animations through EntryComplete and ExitComplete.
type Machine struct {
	store     Store
	logger    *slog.Logger
	state     Snapshot
	observers []func(Theme)
}

// New creates a machine from the stored preference. A missing or
// unreadable preference starts in Dark; only a store read failure is
// returned, alongside a usable machine.
func New(store Store, logger *slog.Logger) (*Machine, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Machine{store: store, logger: logger}

	if store == nil {
		return m, nil
	}
	value, ok, err := store.LoadTheme()
	if err != nil {
		return m, fmt.Errorf("load theme preference: %w", err)
	}
	if !ok {
		return m, nil
	}
	t, err := Parse(value)
	if err != nil {
		logger.Warn("ignoring stored theme", slog.Any("error", err))
		return m, nil
	}
	m.state.Theme = t
	return m, nil
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	return m.state
}

// Theme returns the active theme.
func (m *Machine) Theme() Theme {
	return m.state.Theme
}

// OnSwap registers fn to run at the swap point with the new theme.
func (m *Machine) OnSwap(fn func(Theme)) {
	m.observers = append(m.observers, fn)
}

// Initiate starts a transition to the opposite theme. It returns false and
// changes nothing while a transition is already in flight.
func (m *Machine) Initiate() bool {
	if m.state.LogicTransitioning {
		return false
	}
	m.state.Phase = Requested
	m.state.Direction = directionTo(m.state.Theme.Opposite())
	m.state.LogicTransitioning = true
	m.state.OverlayVisible = true
	m.state.Phase = OverlayEntering
	m.logger.Debug("theme transition started", slog.String("direction", m.state.Direction.String()))
	return true
}

// EntryComplete is the one signal that the overlay fully covers the screen.
// It swaps the theme, persists it and starts the exit animation. Calls
// outside OverlayEntering are ignored.
func (m *Machine) EntryComplete() bool {
	if m.state.Phase != OverlayEntering {
		return false
	}
	m.state.Phase = SwapPoint

	target := Dark
	if m.state.Direction == ToLight {
		target = Light
	}
	m.state.Theme = target
	if m.store != nil {
		if err := m.store.SaveTheme(target.String()); err != nil {
			m.logger.Warn("save theme preference", slog.Any("error", err))
		}
	}
	for _, fn := range m.observers {
		fn(target)
	}

	m.state.OverlayVisible = false
	m.state.Phase = OverlayExiting
	return true
}

// ExitComplete ends the transition once the overlay has withdrawn.
func (m *Machine) ExitComplete() bool {
	if m.state.Phase != OverlayExiting {
		return false
	}
	m.state.Direction = None
	m.state.LogicTransitioning = false
	m.state.Phase = Idle
	m.logger.Debug("theme transition finished", slog.String("theme", m.state.Theme.String()))
	return true
}
