// Package playerbar renders the transport bar for the selected episode.
package playerbar

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/decoded/internal/session"
	"github.com/llehouerou/decoded/internal/timefmt"
	"github.com/llehouerou/decoded/internal/ui/render"
	"github.com/llehouerou/decoded/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"

	// Height is the rendered height: two content rows plus the border.
	Height = 4
)

// Model holds the loading spinner. Everything else comes from the session
// state passed to View.
type Model struct {
	spinner spinner.Model
}

// New creates a player bar.
func New() Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return Model{spinner: s}
}

// Spin starts the spinner tick loop.
func (m Model) Spin() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the spinner while loading. Ticks arriving when nothing
// is loading are swallowed, which ends the tick loop.
func (m Model) Update(msg tea.Msg, loading bool) (Model, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok || !loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// Visible reports whether the bar takes space for s.
func Visible(s session.State) bool {
	return s.HasSelection()
}

// View renders the bar at the given width. It is empty while nothing is
// selected.
func (m Model) View(s session.State, ambientMuted bool, width int) string {
	if !Visible(s) || width < 4 {
		return ""
	}
	st := styles.T().S()
	inner := width - 4 // border and padding

	status := pauseSymbol
	switch {
	case s.Loading:
		status = m.spinner.View()
	case s.IsPlaying:
		status = playSymbol
	}
	status = st.Active.Render(status)

	badges := st.Badge.Render(RateLabel(s.PlaybackRate))
	if ambientMuted {
		badges += " " + st.Subtle.Render("ambient off")
	} else {
		badges += " " + st.Muted.Render("ambient on")
	}

	var title string
	if s.Episode != nil {
		title = s.Episode.Label()
	}
	statusWidth := lipgloss.Width(status) + 1
	top := status + " " + st.Title.Render(render.Row(title, "", max(inner-statusWidth-lipgloss.Width(badges), 1))) + badges

	times := timefmt.Format(s.CurrentTime) + " / " + timefmt.Format(s.Duration)
	bottom := RenderProgressBar(s.Progress(), max(inner-len(times)-1, 0)) + " " + st.Muted.Render(times)

	return st.Bar.Padding(0, 1).Width(width - 2).Render(top + "\n" + bottom)
}

// RateLabel formats a playback rate as a badge, e.g. "1.25×".
func RateLabel(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "×"
}
