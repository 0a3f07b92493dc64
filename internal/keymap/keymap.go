package keymap

// Binding maps keys to an action, with a description for the help popup.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "tracklist", "guestbook", "compose"
}

// Bindings contains all key bindings, used for resolution and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", "global"},
	{ActionTabHome, []string{"f1", "1"}, "Home tab", "global"},
	{ActionTabDiary, []string{"f2", "2"}, "Diary tab", "global"},
	{ActionTabGuestbook, []string{"f3", "3"}, "Guestbook tab", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionPlay, []string{"p"}, "Play", "playback"},
	{ActionPause, []string{"P"}, "Pause", "playback"},
	{ActionNextTrack, []string{"pgdown", "n"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"pgup", "b"}, "Previous track", "playback"},

	// Track list
	{ActionMoveUp, []string{"k", "up"}, "Move up", "tracklist"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "tracklist"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "tracklist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "tracklist"},
	{ActionSelect, []string{"enter"}, "Play selected track", "tracklist"},

	// Guestbook
	{ActionMoveUp, []string{"k", "up"}, "Previous entry", "guestbook"},
	{ActionMoveDown, []string{"j", "down"}, "Next entry", "guestbook"},
	{ActionDelete, []string{"d", "delete"}, "Delete entry", "guestbook"},

	// Compose forms
	{ActionSelect, []string{"enter"}, "Submit", "compose"},
	{ActionCancel, []string{"esc"}, "Leave input", "compose"},
	{ActionSwitchFocus, []string{"tab"}, "Next panel", "compose"},
	{ActionQuit, []string{"ctrl+c"}, "Quit", "compose"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Contexts lists binding contexts in help display order.
func Contexts() []string {
	return []string{"global", "playback", "tracklist", "guestbook", "compose"}
}
