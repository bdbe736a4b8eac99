// Package helpbindings renders the scrollable key binding reference.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/decoded/internal/keymap"
	"github.com/llehouerou/decoded/internal/ui/render"
	"github.com/llehouerou/decoded/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"playback",
	"shelf",
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
	"shelf":    "Episode Shelf",
}

// chrome is the title, blank line, blank line and footer around the list.
const chrome = 4

// Model holds the state of the help panel.
type Model struct {
	bindings     []keymap.Binding
	scrollOffset int
	width        int
	height       int
}

// New creates a help panel listing every binding.
func New() Model {
	var m Model
	for _, ctx := range categoryOrder {
		m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
	}
	return m
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scrollOffset = min(m.scrollOffset, m.maxScroll())
}

// Offset returns the scroll offset.
func (m Model) Offset() int {
	return m.scrollOffset
}

// Update handles keys while the panel is shown. It reports whether the
// panel asked to close.
func (m *Model) Update(msg tea.Msg) (closed bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		m.scrollOffset = 0
		return true
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return false
}

// View renders the panel.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	st := styles.T().S()

	lines := m.lines()
	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := lines[start:end]

	out := make([]string, 0, m.height)
	out = append(out, st.Title.Render("Help"), "")
	for _, line := range visible {
		out = append(out, line+render.Pad("", max(m.width-lipgloss.Width(line), 0)))
	}
	for len(out) < m.height-1 {
		out = append(out, "")
	}
	out = append(out, st.Subtle.Render(m.footer()))
	return strings.Join(out, "\n")
}

func (m Model) lines() []string {
	st := styles.T().S()

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyLabel(b.Keys)))
	}

	var lines []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines, st.Warning.Bold(true).Render(label))
			current = b.Context
		}
		keys := render.Pad(keyLabel(b.Keys), maxKeyWidth)
		lines = append(lines, st.Active.Render(keys)+"  "+st.Base.Render(b.Description))
	}
	return lines
}

// keyLabel joins keys for display, showing the space bar once as "space".
func keyLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		if !slices.Contains(labels, k) {
			labels = append(labels, k)
		}
	}
	return strings.Join(labels, ", ")
}

func (m Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	return max(m.height-chrome, 1)
}

func (m Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}
