// Package media wraps one playable audio resource behind a small capability
// interface and reports what it does as an ordered stream of events.
package media

import (
	"errors"
	"math"
)

var (
	// ErrNotLoaded is returned by Play when no source has been loaded.
	ErrNotLoaded = errors.New("no audio source loaded")
	// ErrUnsupportedFormat is returned for sources the decoders cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("media binding closed")
)

// Binding is the capability set the playback controller needs from an audio
// resource. Operations are commands; their outcome arrives later on Events.
type Binding interface {
	// Load replaces the current source and returns the generation its
	// events will carry. Any load still in flight is superseded.
	Load(src string) uint64
	// Play requests playback. A returned error means the request was refused
	// outright; asynchronous refusals arrive as EventFailed.
	Play() error
	Pause()
	SetPosition(seconds float64)
	SetRate(factor float64)
	// Position returns the live playback position in seconds.
	Position() float64
	// Source returns the locator currently loaded or loading.
	Source() string
	Events() <-chan Event
	Close() error
}

// EventKind identifies what happened to the resource.
type EventKind int

const (
	EventProgress      EventKind = iota // Value = position in seconds
	EventDurationKnown                  // Value = duration in seconds, 0 if unknown
	EventStarted
	EventStopped
	EventEnded
	EventFailed // Err is set
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "Progress"
	case EventDurationKnown:
		return "DurationKnown"
	case EventStarted:
		return "Started"
	case EventStopped:
		return "Stopped"
	case EventEnded:
		return "Ended"
	case EventFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Event is one notification from a Binding.
type Event struct {
	Kind       EventKind
	Source     string
	Generation uint64 // incremented by every Load
	Value      float64
	Err        error
}

// Seconds normalizes a reported time: NaN, infinities and negatives become 0.
func Seconds(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
