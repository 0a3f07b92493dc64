// internal/player/state.go
package player

// State represents the transport state of an engine.
//
//	┌──────────┐      load       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Paused  │◀──┐
//	└──────────┘                 └──────────┘   │
//	                               │      ▲     │ load
//	                          play │      │ pause, ended
//	                               ▼      │     │
//	                             ┌──────────┐   │
//	                             │  Playing │───┘
//	                             └──────────┘
//
// Stopped means no source was ever loaded. Load always lands in Paused;
// playback only starts on an explicit Play. Play and Pause in Stopped are
// ignored, as are repeated Play/Pause in the same state.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a source is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused
}
