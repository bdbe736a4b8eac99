// Package theme runs the light/dark switch as an explicit transition:
// an overlay covers the screen, the theme swaps while it is opaque, then the
// overlay withdraws.
package theme

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTheme is returned by Parse for unknown theme names.
var ErrInvalidTheme = errors.New("invalid theme")

// Theme is the active colour scheme.
type Theme int

const (
	Dark Theme = iota
	Light
)

// String returns the stored name of the theme.
func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Parse converts a stored name into a Theme.
func Parse(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Dark, fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Direction is the target of an in-flight transition.
type Direction int

const (
	None Direction = iota
	ToLight
	ToDark
)

func (d Direction) String() string {
	switch d {
	case ToLight:
		return "to-light"
	case ToDark:
		return "to-dark"
	default:
		return "none"
	}
}

func directionTo(t Theme) Direction {
	if t == Light {
		return ToLight
	}
	return ToDark
}

// Phase is the step of the transition protocol.
type Phase int

const (
	Idle Phase = iota
	Requested
	OverlayEntering
	SwapPoint
	OverlayExiting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Requested:
		return "Requested"
	case OverlayEntering:
		return "OverlayEntering"
	case SwapPoint:
		return "SwapPoint"
	case OverlayExiting:
		return "OverlayExiting"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Timings holds the overlay animation durations for one direction.
type Timings struct {
	Enter time.Duration
	Exit  time.Duration
}

// Timing returns the overlay durations for d. The light reveal is slow in
// and quick out; the dark fade is the other way round.
func Timing(d Direction) Timings {
	switch d {
	case ToLight:
		return Timings{Enter: 1200 * time.Millisecond, Exit: 300 * time.Millisecond}
	case ToDark:
		return Timings{Enter: 500 * time.Millisecond, Exit: 600 * time.Millisecond}
	default:
		return Timings{}
	}
}
