package player

import "time"

const eventBufferSize = 64

// EventKind identifies an engine notification.
type EventKind int

const (
	EventPlay EventKind = iota + 1
	EventPause
	EventEnded
	EventTimeUpdate
	EventMetadataLoaded
)

// String returns the notification name.
func (k EventKind) String() string {
	switch k {
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventEnded:
		return "ended"
	case EventTimeUpdate:
		return "timeupdate"
	case EventMetadataLoaded:
		return "loadedmetadata"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by an engine.
type Event struct {
	Kind   EventKind
	Source string // locator that was loaded when the event fired
}

// emitter delivers events on a buffered channel.
//
// Time updates are lossy: they are dropped when the buffer is full since the
// next tick supersedes them. State events are never dropped; if the buffer is
// full they are handed to a goroutine that waits for room or shutdown.
type emitter struct {
	ch   chan Event
	done chan struct{}
}

func newEmitter() *emitter {
	return &emitter{
		ch:   make(chan Event, eventBufferSize),
		done: make(chan struct{}),
	}
}

func (e *emitter) emit(ev Event) {
	select {
	case e.ch <- ev:
		return
	case <-e.done:
		return
	default:
	}

	if ev.Kind == EventTimeUpdate {
		return
	}

	go func() {
		select {
		case e.ch <- ev:
		case <-e.done:
		}
	}()
}

// close stops pending deliveries. The channel itself stays open so readers
// selecting on it do not spin on a closed channel.
func (e *emitter) close() {
	select {
	case <-e.done:
	default:
		close(e.done)
	}
}

// ticker emits time updates at a fixed interval until stopped.
type ticker struct {
	stop chan struct{}
}

func startTicker(interval time.Duration, fire func()) *ticker {
	t := &ticker{stop: make(chan struct{})}
	go func() {
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-tk.C:
				fire()
			case <-t.stop:
				return
			}
		}
	}()
	return t
}

func (t *ticker) halt() {
	if t == nil {
		return
	}
	select {
	case <-t.stop:
	default:
		close(t.stop)
	}
}
