// internal/playback/state.go
package playback

// State is a snapshot of the controller's player state.
type State struct {
	Cursor        int
	ActiveTrackID string // empty until a track has been loaded
	IsPlaying     bool   // last state reported by the engine
}

// String returns a short description for logs.
func (s State) String() string {
	status := "paused"
	if s.IsPlaying {
		status = "playing"
	}
	id := s.ActiveTrackID
	if id == "" {
		id = "-"
	}
	return status + " " + id
}
