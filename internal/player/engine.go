// internal/player/engine.go
package player

import "time"

// Engine is the playback capability the playlist controller drives.
//
// Load, Play and Pause are fire-and-forget: their outcome is observed through
// the notifications delivered on Events, never through a return value. A new
// Load supersedes any acquisition still in flight.
type Engine interface {
	Load(source string)
	Play()
	Pause()

	// Loaded reports whether a source has ever been loaded.
	Loaded() bool
	Paused() bool
	Position() time.Duration
	// Duration returns false until the loaded source's metadata resolves.
	Duration() (time.Duration, bool)

	Events() <-chan Event
	Close() error
}

// Verify implementations satisfy Engine at compile time.
var (
	_ Engine = (*Speaker)(nil)
	_ Engine = (*Mock)(nil)
)
