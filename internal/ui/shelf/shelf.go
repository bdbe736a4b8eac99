// Package shelf renders the scrollable list of episodes.
package shelf

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/decoded/internal/catalog"
	"github.com/llehouerou/decoded/internal/session"
	"github.com/llehouerou/decoded/internal/timefmt"
	"github.com/llehouerou/decoded/internal/ui/render"
	"github.com/llehouerou/decoded/internal/ui/styles"
)

const (
	scrollMargin = 2
	footerRows   = 1
)

// Markers shown in front of an episode.
const (
	markerPlaying = "▶ "
	markerActive  = "◆ "
	markerNone    = "  "
)

// Model is the episode list with its own cursor. The cursor is independent
// of the selected episode: moving it never changes what plays.
type Model struct {
	episodes []catalog.Episode
	total    float64
	pos      int // cursor position
	offset   int // first visible episode
	width    int
	height   int
}

// New creates a shelf over the given episodes.
func New(episodes []catalog.Episode) Model {
	var total float64
	for _, ep := range episodes {
		total += ep.Duration
	}
	return Model{episodes: episodes, total: total}
}

// SetSize updates the area available to the shelf.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// Len returns the number of episodes.
func (m Model) Len() int {
	return len(m.episodes)
}

// Cursor returns the cursor position.
func (m Model) Cursor() int {
	return m.pos
}

// Offset returns the first visible episode index.
func (m Model) Offset() int {
	return m.offset
}

// Move moves the cursor by delta, clamped to the list.
func (m *Model) Move(delta int) {
	m.Jump(m.pos + delta)
}

// Jump puts the cursor on index, clamped to the list.
func (m *Model) Jump(index int) {
	if len(m.episodes) == 0 {
		return
	}
	m.pos = max(0, min(index, len(m.episodes)-1))
	m.ensureVisible()
}

// JumpStart moves the cursor to the first episode.
func (m *Model) JumpStart() {
	m.Jump(0)
}

// JumpEnd moves the cursor to the last episode.
func (m *Model) JumpEnd() {
	m.Jump(len(m.episodes) - 1)
}

// Follow moves the cursor onto the selected episode, if any.
func (m *Model) Follow(s session.State) {
	if s.HasSelection() {
		m.Jump(s.SelectedIndex)
	}
}

func (m Model) rows() int {
	return max(m.height-footerRows, 0)
}

func (m *Model) ensureVisible() {
	rows := m.rows()
	if rows <= 0 || len(m.episodes) == 0 {
		m.offset = 0
		return
	}
	margin := min(scrollMargin, (rows-1)/2)

	if m.pos < m.offset+margin {
		m.offset = m.pos - margin
	}
	if m.pos >= m.offset+rows-margin {
		m.offset = m.pos - rows + margin + 1
	}
	m.offset = max(0, min(m.offset, len(m.episodes)-rows))
}

// VisibleRange returns the [start, end) indices currently on screen.
func (m Model) VisibleRange() (start, end int) {
	rows := m.rows()
	if rows <= 0 {
		return 0, 0
	}
	return m.offset, min(m.offset+rows, len(m.episodes))
}

// View renders the visible episodes followed by a summary line. s decides
// which episode carries the active and playing markers.
func (m Model) View(s session.State) string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	st := styles.T().S()

	lines := make([]string, 0, m.height)
	start, end := m.VisibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(i, s, st))
	}
	for len(lines) < m.rows() {
		lines = append(lines, render.Pad("", m.width))
	}
	lines = append(lines, st.Subtle.Render(render.Fit(m.summary(), m.width)))
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(i int, s session.State, st *styles.Styles) string {
	ep := m.episodes[i]

	marker := markerNone
	style := st.Base
	if i == s.SelectedIndex {
		marker = markerActive
		style = st.Active
		if s.IsPlaying {
			marker = markerPlaying
			style = st.Playing
		}
	}

	var hint string
	if ep.Duration > 0 {
		hint = timefmt.Format(ep.Duration)
	}
	line := marker + render.Row(ep.Label(), hint, max(m.width-len(markerNone), 0))

	if i == m.pos {
		return st.Cursor.Inherit(style).Render(line)
	}
	return style.Render(line)
}

func (m Model) summary() string {
	n := len(m.episodes)
	label := "lessons"
	if n == 1 {
		label = "lesson"
	}
	text := humanize.Comma(int64(n)) + " " + label
	if m.total >= 1 {
		start := time.Unix(0, 0)
		end := start.Add(time.Duration(m.total * float64(time.Second)))
		text += " · " + strings.TrimSpace(humanize.RelTime(start, end, "", ""))
	}
	return text
}
