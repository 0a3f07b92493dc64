// internal/player/mock.go
package player

import "time"

// Call records one transport call made on a Mock.
type Call struct {
	Op     string // "load", "play" or "pause"
	Source string // set for "load"
}

// Mock is a test double for Engine.
//
// It tracks transport state like a real engine but never emits on its own:
// tests decide when notifications fire, using Fire or Emit.
type Mock struct {
	state       State
	source      string
	position    time.Duration
	duration    time.Duration
	hasDuration bool
	calls       []Call
	events      chan Event
	closed      bool
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		events: make(chan Event, eventBufferSize),
	}
}

func (m *Mock) Load(source string) {
	m.calls = append(m.calls, Call{Op: "load", Source: source})
	m.source = source
	m.state = Paused
	m.position = 0
	m.duration = 0
	m.hasDuration = false
}

func (m *Mock) Play() {
	m.calls = append(m.calls, Call{Op: "play"})
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Pause() {
	m.calls = append(m.calls, Call{Op: "pause"})
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Loaded() bool { return m.state != Stopped }

func (m *Mock) Paused() bool { return m.state != Playing }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() (time.Duration, bool) { return m.duration, m.hasDuration }

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) State() State { return m.state }

func (m *Mock) Source() string { return m.source }

func (m *Mock) Closed() bool { return m.closed }

func (m *Mock) Calls() []Call { return m.calls }

// LoadCalls returns the sources passed to Load, in order.
func (m *Mock) LoadCalls() []string {
	var sources []string
	for _, c := range m.calls {
		if c.Op == "load" {
			sources = append(sources, c.Source)
		}
	}
	return sources
}

func (m *Mock) ResetCalls() { m.calls = nil }

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SetDuration marks the duration as resolved.
func (m *Mock) SetDuration(d time.Duration) {
	m.duration = d
	m.hasDuration = true
}

// Fire returns the event the engine would emit for kind, without queueing it.
func (m *Mock) Fire(kind EventKind) Event {
	return Event{Kind: kind, Source: m.source}
}

// Emit queues an event on the Events channel (non-blocking).
func (m *Mock) Emit(kind EventKind) {
	select {
	case m.events <- m.Fire(kind):
	default:
	}
}
