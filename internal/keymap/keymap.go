// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "shelf"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionToggleTheme, []string{"t"}, "Toggle light/dark theme", "global"},
	{ActionToggleMute, []string{"m"}, "Mute ambient sound", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space", "p"}, "Play/pause", "playback"},
	{ActionNextEpisode, []string{"n", "pgdown"}, "Next episode", "playback"},
	{ActionPrevEpisode, []string{"N", "pgup"}, "Previous episode", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "Skip forward", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "Skip back", "playback"},
	{ActionSeekStart, []string{"0"}, "Restart episode", "playback"},
	{ActionCycleRate, []string{"r"}, "Cycle playback speed", "playback"},

	// Shelf
	{ActionMoveUp, []string{"k", "up"}, "Move up", "shelf"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "shelf"},
	{ActionJumpStart, []string{"g", "home"}, "First episode", "shelf"},
	{ActionJumpEnd, []string{"G", "end"}, "Last episode", "shelf"},
	{ActionSelect, []string{"enter"}, "Play episode", "shelf"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
