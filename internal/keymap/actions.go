// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionHelp        Action = "help"

	// Tab switching
	ActionTabHome      Action = "tab_home"
	ActionTabDiary     Action = "tab_diary"
	ActionTabGuestbook Action = "tab_guestbook"

	// Playback actions
	ActionPlayPause Action = "play_pause"
	ActionPlay      Action = "play"
	ActionPause     Action = "pause"
	ActionNextTrack Action = "next_track"
	ActionPrevTrack Action = "prev_track"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Generic contextual actions
	ActionSelect Action = "select" // enter - play track / submit form
	ActionDelete Action = "delete" // d/delete - context determines what
	ActionCancel Action = "cancel" // esc - leave the focused input
)
