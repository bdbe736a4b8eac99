// Package app contains the root bubbletea model of the player.
package app

import (
	"github.com/llehouerou/decoded/internal/media"
	"github.com/llehouerou/decoded/internal/session"
)

// MediaEventMsg carries one event from the media binding.
type MediaEventMsg media.Event

// MediaClosedMsg is sent when the binding's event feed ends.
type MediaClosedMsg struct{}

// CommandMsg carries a transport intent raised outside the UI loop, such
// as an MPRIS media key.
type CommandMsg session.Command

// PlaybackErrorMsg reports a playback failure published by the session.
type PlaybackErrorMsg session.ErrorEvent

// SessionClosedMsg is sent when the session ends its subscriptions.
type SessionClosedMsg struct{}

// ClearErrorMsg hides the status line. Version ignores timeouts for
// errors that have already been replaced.
type ClearErrorMsg struct {
	Version int
}
