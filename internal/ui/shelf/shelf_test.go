package shelf

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/decoded/internal/catalog"
	"github.com/llehouerou/decoded/internal/session"
)

func episodes(n int) []catalog.Episode {
	eps := make([]catalog.Episode, n)
	for i := range eps {
		eps[i] = catalog.Episode{
			ID:       fmt.Sprintf("ep%d", i+1),
			Chapter:  fmt.Sprintf("Chapter %d", i+1),
			Title:    fmt.Sprintf("Lesson %d", i+1),
			AudioSrc: fmt.Sprintf("/audio/%d.mp3", i+1),
			Duration: 600,
		}
	}
	return eps
}

func idle() session.State {
	return session.State{SelectedIndex: session.NoSelection, PlaybackRate: 1}
}

func TestMove_Clamps(t *testing.T) {
	m := New(episodes(5))
	m.SetSize(40, 10)

	m.Move(-3)
	if m.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", m.Cursor())
	}
	m.Move(10)
	if m.Cursor() != 4 {
		t.Errorf("Cursor() = %d, want 4", m.Cursor())
	}
	m.JumpStart()
	if m.Cursor() != 0 {
		t.Errorf("after JumpStart Cursor() = %d, want 0", m.Cursor())
	}
	m.JumpEnd()
	if m.Cursor() != 4 {
		t.Errorf("after JumpEnd Cursor() = %d, want 4", m.Cursor())
	}
}

func TestMove_EmptyShelf(t *testing.T) {
	m := New(nil)
	m.SetSize(40, 10)
	m.Move(1)
	m.JumpEnd()
	if m.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", m.Cursor())
	}
	if start, end := m.VisibleRange(); start != 0 || end != 0 {
		t.Errorf("VisibleRange() = (%d, %d), want (0, 0)", start, end)
	}
}

func TestScroll_KeepsCursorVisible(t *testing.T) {
	tests := []struct {
		name       string
		moves      []int
		wantCursor int
		wantOffset int
	}{
		{"no scroll near top", []int{1}, 1, 0},
		{"scroll with margin", []int{3}, 3, 1},
		{"scroll to end clamps offset", []int{50}, 19, 15},
		{"scroll back up", []int{50, -10}, 9, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(episodes(20))
			m.SetSize(40, 6) // 5 rows + summary

			for _, d := range tt.moves {
				m.Move(d)
			}
			if m.Cursor() != tt.wantCursor {
				t.Errorf("Cursor() = %d, want %d", m.Cursor(), tt.wantCursor)
			}
			if m.Offset() != tt.wantOffset {
				t.Errorf("Offset() = %d, want %d", m.Offset(), tt.wantOffset)
			}
			start, end := m.VisibleRange()
			if m.Cursor() < start || m.Cursor() >= end {
				t.Errorf("cursor %d outside visible range [%d, %d)", m.Cursor(), start, end)
			}
		})
	}
}

func TestFollow(t *testing.T) {
	m := New(episodes(10))
	m.SetSize(40, 6)

	m.Follow(idle())
	if m.Cursor() != 0 {
		t.Errorf("Follow without selection moved cursor to %d", m.Cursor())
	}

	s := idle()
	s.SelectedIndex = 7
	m.Follow(s)
	if m.Cursor() != 7 {
		t.Errorf("Cursor() = %d, want 7", m.Cursor())
	}
}

func TestView_Markers(t *testing.T) {
	m := New(episodes(3))
	m.SetSize(40, 4)

	lines := strings.Split(ansi.Strip(m.View(idle())), "\n")
	for i, line := range lines[:3] {
		if !strings.HasPrefix(line, markerNone) {
			t.Errorf("line %d = %q, want no marker without selection", i, line)
		}
	}

	s := idle()
	s.SelectedIndex = 1
	lines = strings.Split(ansi.Strip(m.View(s)), "\n")
	if !strings.HasPrefix(lines[1], markerActive) {
		t.Errorf("selected line = %q, want active marker", lines[1])
	}

	s.IsPlaying = true
	lines = strings.Split(ansi.Strip(m.View(s)), "\n")
	if !strings.HasPrefix(lines[1], markerPlaying) {
		t.Errorf("selected line = %q, want playing marker", lines[1])
	}
	if strings.HasPrefix(lines[0], markerPlaying) || strings.HasPrefix(lines[2], markerPlaying) {
		t.Error("only the selected episode should carry the playing marker")
	}
}

func TestView_RowContent(t *testing.T) {
	m := New(episodes(2))
	m.SetSize(40, 4)

	lines := strings.Split(ansi.Strip(m.View(idle())), "\n")
	if len(lines) != 4 {
		t.Fatalf("View() has %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "Chapter 1 · Lesson 1") {
		t.Errorf("line 0 = %q, want episode label", lines[0])
	}
	if !strings.HasSuffix(lines[0], "10:00") {
		t.Errorf("line 0 = %q, want duration hint at the end", lines[0])
	}
	if ansi.StringWidth(lines[0]) != 40 {
		t.Errorf("line width = %d, want 40", ansi.StringWidth(lines[0]))
	}
}

func TestView_Summary(t *testing.T) {
	tests := []struct {
		name string
		eps  []catalog.Episode
		want string
	}{
		{"plural with total", episodes(3), "3 lessons · 30 minutes"},
		{"singular", episodes(1), "1 lesson · 10 minutes"},
		{"no hints", []catalog.Episode{{ID: "a", AudioSrc: "/a.mp3"}}, "1 lesson"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.eps)
			m.SetSize(60, 5)
			lines := strings.Split(ansi.Strip(m.View(idle())), "\n")
			got := strings.TrimRight(lines[len(lines)-1], " ")
			if got != tt.want {
				t.Errorf("summary = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestView_ZeroSize(t *testing.T) {
	m := New(episodes(3))
	if got := m.View(idle()); got != "" {
		t.Errorf("View() before SetSize = %q, want empty", got)
	}
}
