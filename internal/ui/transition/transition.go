// Package transition animates the overlay that covers the screen while the
// theme is swapped.
package transition

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/decoded/internal/theme"
)

// FrameInterval is the delay between animation frames (~30 fps).
const FrameInterval = time.Second / 30

// EntryDoneMsg is sent once when the overlay fully covers the screen.
type EntryDoneMsg struct{}

// ExitDoneMsg is sent once when the overlay has fully withdrawn.
type ExitDoneMsg struct{}

// frameMsg drives the animation. Frames from an earlier run carry an old
// sequence number and are dropped.
type frameMsg struct {
	seq int
	at  time.Time
}

type stage int

const (
	stageIdle stage = iota
	stageEntering
	stageCovered
	stageExiting
)

// Model is the overlay animation. It does not know about the theme
// machine: the app forwards EntryDoneMsg and ExitDoneMsg to it.
type Model struct {
	stage    stage
	dir      theme.Direction
	timings  theme.Timings
	start    time.Time
	progress float64
	seq      int
	now      func() time.Time
}

// New creates an idle overlay.
func New() Model {
	return Model{now: time.Now}
}

// Active reports whether the overlay is on screen.
func (m Model) Active() bool {
	return m.stage != stageIdle
}

// Direction returns the direction of the running animation.
func (m Model) Direction() theme.Direction {
	return m.dir
}

// Progress returns the completion of the current stage in [0, 1].
func (m Model) Progress() float64 {
	return m.progress
}

// Start runs the entry animation for dir.
func (m *Model) Start(dir theme.Direction) tea.Cmd {
	if dir == theme.None {
		return nil
	}
	m.dir = dir
	m.timings = theme.Timing(dir)
	return m.begin(stageEntering)
}

// BeginExit runs the exit animation. It only applies once the entry has
// completed.
func (m *Model) BeginExit() tea.Cmd {
	if m.stage != stageCovered {
		return nil
	}
	return m.begin(stageExiting)
}

func (m *Model) begin(s stage) tea.Cmd {
	m.seq++
	m.stage = s
	m.start = m.now()
	m.progress = 0
	return m.frame()
}

func (m Model) frame() tea.Cmd {
	seq := m.seq
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg{seq: seq, at: t}
	})
}

// Update advances the animation on frame messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	f, ok := msg.(frameMsg)
	if !ok || f.seq != m.seq {
		return nil
	}

	var d time.Duration
	switch m.stage {
	case stageEntering:
		d = m.timings.Enter
	case stageExiting:
		d = m.timings.Exit
	default:
		return nil
	}

	m.progress = 1
	if d > 0 {
		m.progress = max(0, min(float64(f.at.Sub(m.start))/float64(d), 1))
	}
	if m.progress < 1 {
		return m.frame()
	}

	if m.stage == stageEntering {
		m.stage = stageCovered
		return send(EntryDoneMsg{})
	}
	m.stage = stageIdle
	m.dir = theme.None
	return send(ExitDoneMsg{})
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
