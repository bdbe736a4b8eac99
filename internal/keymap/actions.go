// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionToggleTheme Action = "toggle_theme"
	ActionToggleMute  Action = "toggle_ambient_mute"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionNextEpisode Action = "next_episode"
	ActionPrevEpisode Action = "prev_episode"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionSeekStart   Action = "seek_start"
	ActionCycleRate   Action = "cycle_rate"

	// Shelf navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select" // enter - play the episode under the cursor
)
