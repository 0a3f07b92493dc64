// Package mpris exposes the BGM player over the MPRIS D-Bus interface so
// desktop media keys drive the same intents as the keyboard.
package mpris

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Intent is a transport request received from the desktop.
type Intent int

const (
	IntentPlay Intent = iota + 1
	IntentPause
	IntentPlayPause
	IntentNext
	IntentPrevious
)

// String returns the intent name for logs.
func (i Intent) String() string {
	switch i {
	case IntentPlay:
		return "play"
	case IntentPause:
		return "pause"
	case IntentPlayPause:
		return "playpause"
	case IntentNext:
		return "next"
	case IntentPrevious:
		return "previous"
	default:
		return "unknown"
	}
}

// IntentMsg carries an Intent into the tea update loop.
type IntentMsg struct {
	Intent Intent
}

// Sender delivers messages to a running tea program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Snapshot is the player state published to D-Bus clients.
type Snapshot struct {
	TrackID  string
	Title    string
	Loaded   bool
	Playing  bool
	Position time.Duration
	Duration time.Duration
	CanPlay  bool // false when the catalog is empty
}

// snapshotStore guards the latest snapshot. The app writes it from the update
// loop while D-Bus handlers read it from their own goroutines.
type snapshotStore struct {
	mu   sync.RWMutex
	snap Snapshot
}

func (s *snapshotStore) set(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

func (s *snapshotStore) get() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
