// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/decoded/internal/media"
	"github.com/llehouerou/decoded/internal/session"
)

const errorDisplayTime = 5 * time.Second

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WaitForMediaEvent returns a command that delivers the next binding event.
// It is re-armed after each event, so events reach Update in order.
func WaitForMediaEvent(ch <-chan media.Event) tea.Cmd {
	return waitForChannel(ch, func(e media.Event, ok bool) tea.Msg {
		if !ok {
			return MediaClosedMsg{}
		}
		return MediaEventMsg(e)
	})
}

// WatchErrors returns a command that waits for the next playback failure.
func WatchErrors(sub *session.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.Errors:
			return PlaybackErrorMsg(e)
		case <-sub.Done:
			return SessionClosedMsg{}
		}
	}
}

// ClearErrorCmd returns a command that sends ClearErrorMsg after the
// status line display time.
func ClearErrorCmd(version int) tea.Cmd {
	return tea.Tick(errorDisplayTime, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{Version: version}
	})
}
