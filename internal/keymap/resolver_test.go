//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "shelf"},
		{ActionMoveDown, []string{"j", "down"}, "Move down", "shelf"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"j", ActionMoveDown},
		{"down", ActionMoveDown},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if result := r.Resolve(tt.key); result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_ResolveKey(t *testing.T) {
	r := Default()

	tests := []struct {
		msg  tea.KeyMsg
		want Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionPlayPause},
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionSelect},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}}, ActionToggleTheme},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}, ActionToggleMute},
		{tea.KeyMsg{Type: tea.KeyRight}, ActionSeekForward},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
	}
	for _, tt := range tests {
		if got := r.ResolveKey(tt.msg); got != tt.want {
			t.Errorf("ResolveKey(%q) = %q, want %q", tt.msg.String(), got, tt.want)
		}
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionQuit, []string{"q"}, "Quit again", "shelf"},
	}
	r := NewResolver(bindings)

	keys := r.KeysFor(ActionQuit)
	if !slices.Equal(keys, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v, want deduplicated [q ctrl+c]", keys)
	}
	if keys := r.KeysFor(ActionHelp); keys != nil {
		t.Errorf("KeysFor(unbound) = %v, want nil", keys)
	}
}
