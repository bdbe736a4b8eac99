// internal/app/update.go
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/decoded/internal/errmsg"
	"github.com/llehouerou/decoded/internal/media"
	"github.com/llehouerou/decoded/internal/session"
	"github.com/llehouerou/decoded/internal/ui/headerbar"
	"github.com/llehouerou/decoded/internal/ui/layout"
	"github.com/llehouerou/decoded/internal/ui/playerbar"
	"github.com/llehouerou/decoded/internal/ui/transition"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MediaEventMsg:
		cmd := m.transport(func() {
			m.Session.HandleEvent(media.Event(msg))
		})
		return m, tea.Batch(cmd, WaitForMediaEvent(m.events))

	case MediaClosedMsg:
		m.logger.Debug("media event feed closed")
		return m, nil

	case CommandMsg:
		cmd := m.transport(func() {
			m.Session.Apply(session.Command(msg))
		})
		return m, cmd

	case PlaybackErrorMsg:
		cmd := m.showError(msg)
		return m, tea.Batch(cmd, WatchErrors(m.errors))

	case SessionClosedMsg:
		return m, nil

	case ClearErrorMsg:
		if msg.Version == m.errorVersion {
			m.ErrorMsg = ""
			m.resize()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Bar, cmd = m.Bar.Update(msg, m.Session.State().Loading)
		return m, cmd

	case transition.EntryDoneMsg:
		if !m.Theme.EntryComplete() {
			return m, nil
		}
		cmd := m.Overlay.BeginExit()
		return m, cmd

	case transition.ExitDoneMsg:
		m.Theme.ExitComplete()
		return m, nil
	}

	cmd := m.Overlay.Update(msg)
	return m, cmd
}

// transport runs a session operation and keeps the shelf and spinner in
// step with the resulting state.
func (m *Model) transport(op func()) tea.Cmd {
	before := m.Session.State()
	op()
	after := m.Session.State()

	if after.SelectedIndex != before.SelectedIndex {
		m.Shelf.Follow(after)
	}
	if playerbar.Visible(after) != playerbar.Visible(before) {
		m.resize()
	}
	if after.Loading && !before.Loading {
		return m.Bar.Spin()
	}
	return nil
}

func (m *Model) showError(e PlaybackErrorMsg) tea.Cmd {
	m.ErrorMsg = errmsg.FormatWith(errmsg.OpPlaybackStart, e.Episode.Label(), e.Err)
	m.logger.Debug("showing playback error", slog.String("status", m.ErrorMsg))
	m.errorVersion++
	m.resize()
	return ClearErrorCmd(m.errorVersion)
}

// resize distributes the screen between header, shelf, status line and
// player bar.
func (m *Model) resize() {
	bar := 0
	if playerbar.Visible(m.Session.State()) {
		bar = playerbar.Height
	}
	body := layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight:    headerbar.Height,
		PlayerBarHeight: bar,
		StatusVisible:   m.ErrorMsg != "",
	})
	m.Shelf.SetSize(m.Width, body)
	m.Help.SetSize(m.Width, body)
}
