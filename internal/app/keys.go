// internal/app/keys.go
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/decoded/internal/keymap"
)

// handleKey routes a key press through the key map. While the help panel
// is open it gets every key except quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.Keys.ResolveKey(msg)

	if m.ShowHelp && action != keymap.ActionQuit {
		if m.Help.Update(msg) {
			m.ShowHelp = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionHelp:
		m.ShowHelp = true

	case keymap.ActionToggleTheme:
		if m.Theme.Initiate() {
			cmd = m.Overlay.Start(m.Theme.Snapshot().Direction)
		}

	case keymap.ActionToggleMute:
		muted := m.Ambient.ToggleMute()
		m.logger.Debug("ambient sound toggled", slog.Bool("muted", muted))

	// Playback
	case keymap.ActionPlayPause:
		cmd = m.transport(m.Session.TogglePlayPause)
	case keymap.ActionNextEpisode:
		cmd = m.transport(m.Session.Next)
	case keymap.ActionPrevEpisode:
		cmd = m.transport(m.Session.Previous)
	case keymap.ActionSeekForward:
		cmd = m.transport(func() { m.Session.Skip(m.skip) })
	case keymap.ActionSeekBack:
		cmd = m.transport(func() { m.Session.Skip(-m.skip) })
	case keymap.ActionSeekStart:
		cmd = m.transport(func() { m.Session.Seek(0) })
	case keymap.ActionCycleRate:
		cmd = m.transport(m.Session.CyclePlaybackRate)

	// Shelf
	case keymap.ActionMoveUp:
		m.Shelf.Move(-1)
	case keymap.ActionMoveDown:
		m.Shelf.Move(1)
	case keymap.ActionJumpStart:
		m.Shelf.JumpStart()
	case keymap.ActionJumpEnd:
		m.Shelf.JumpEnd()
	case keymap.ActionSelect:
		if m.Shelf.Len() > 0 {
			index := m.Shelf.Cursor()
			cmd = m.transport(func() { m.Session.SelectEpisode(index) })
		}
	}
	return m, cmd
}
