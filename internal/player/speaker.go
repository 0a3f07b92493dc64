package player

import (
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/sirupsen/logrus"
)

// DefaultTickInterval is how often time updates fire while playing.
const DefaultTickInterval = 250 * time.Millisecond

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Speaker is an Engine that plays local mp3/flac files through the system
// audio device.
//
// Decoding happens on a goroutine so Load returns immediately. Each Load bumps
// a generation counter; results and callbacks from older generations are
// discarded, which is how a new load supersedes one still in flight.
type Speaker struct {
	mu   sync.Mutex
	root string
	tick time.Duration
	log  logrus.FieldLogger

	state  State
	source string
	gen    uint64

	ctrl        *beep.Ctrl
	streamer    beep.StreamSeekCloser
	format      beep.Format
	file        *os.File
	duration    time.Duration
	hasDuration bool

	ticker *ticker
	events *emitter
	closed bool
}

// NewSpeaker creates a speaker engine resolving relative sources against root.
// A non-positive tick uses DefaultTickInterval.
func NewSpeaker(root string, tick time.Duration, log logrus.FieldLogger) *Speaker {
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Speaker{
		root:   root,
		tick:   tick,
		log:    log.WithField("component", "speaker"),
		state:  Stopped,
		events: newEmitter(),
	}
}

// Load releases the current source and starts acquiring a new one.
// Failures are logged and otherwise silent.
func (s *Speaker) Load(source string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.gen++
	gen := s.gen
	s.releaseLocked()
	s.source = source
	s.state = Paused
	s.duration = 0
	s.hasDuration = false
	path := resolve(s.root, source)
	s.mu.Unlock()

	go s.acquire(gen, source, path)
}

func (s *Speaker) acquire(gen uint64, source, path string) {
	streamer, format, f, err := decodeFile(path)
	if err != nil {
		s.log.WithError(err).WithField("source", source).Warn("load failed")
		s.abandon(gen)
		return
	}

	s.mu.Lock()
	if gen != s.gen || s.closed {
		s.mu.Unlock()
		streamer.Close()
		f.Close()
		return
	}

	rate, err := initSpeaker(format.SampleRate)
	if err != nil {
		s.mu.Unlock()
		streamer.Close()
		f.Close()
		s.log.WithError(err).Error("audio device init failed")
		s.abandon(gen)
		return
	}

	var out beep.Streamer = streamer
	if format.SampleRate != rate {
		out = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	s.file = f
	s.streamer = streamer
	s.format = format
	s.duration = format.SampleRate.D(streamer.Len())
	s.hasDuration = true
	s.ctrl = &beep.Ctrl{Streamer: out, Paused: s.state != Playing}

	// The callback runs on the audio goroutine with the speaker lock held,
	// so it must not take s.mu synchronously.
	speaker.Play(beep.Seq(s.ctrl, beep.Callback(func() {
		go s.finished(gen)
	})))
	s.mu.Unlock()

	s.log.WithField("source", source).WithField("duration", s.duration).Debug("source ready")
	s.events.emit(Event{Kind: EventMetadataLoaded, Source: source})
}

// abandon drops a Play that was waiting on a source that never became
// ready, so the display does not show a stalled "pause" at 00:00.
func (s *Speaker) abandon(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.state != Playing {
		s.mu.Unlock()
		return
	}
	s.state = Paused
	s.ticker.halt()
	s.ticker = nil
	source := s.source
	s.mu.Unlock()

	s.events.emit(Event{Kind: EventPause, Source: source})
}

func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return speakerSampleRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, err
	}
	speakerInitialized = true
	speakerSampleRate = rate
	return rate, nil
}

func (s *Speaker) finished(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.state != Playing {
		s.mu.Unlock()
		return
	}
	s.state = Paused
	s.ticker.halt()
	s.ticker = nil
	source := s.source
	s.mu.Unlock()

	s.events.emit(Event{Kind: EventPause, Source: source})
	s.events.emit(Event{Kind: EventEnded, Source: source})
}

// Play starts or resumes playback. Called while the source is still being
// acquired, playback begins as soon as it is ready.
func (s *Speaker) Play() {
	s.mu.Lock()
	if !s.state.CanResume() || s.closed {
		s.mu.Unlock()
		return
	}
	s.state = Playing
	if s.ctrl != nil {
		speaker.Lock()
		s.ctrl.Paused = false
		speaker.Unlock()
	}
	s.ticker = startTicker(s.tick, s.fireTimeUpdate)
	source := s.source
	s.mu.Unlock()

	s.events.emit(Event{Kind: EventPlay, Source: source})
}

// Pause pauses playback.
func (s *Speaker) Pause() {
	s.mu.Lock()
	if !s.state.CanPause() {
		s.mu.Unlock()
		return
	}
	s.state = Paused
	if s.ctrl != nil {
		speaker.Lock()
		s.ctrl.Paused = true
		speaker.Unlock()
	}
	s.ticker.halt()
	s.ticker = nil
	source := s.source
	s.mu.Unlock()

	s.events.emit(Event{Kind: EventPause, Source: source})
}

func (s *Speaker) fireTimeUpdate() {
	s.mu.Lock()
	source := s.source
	s.mu.Unlock()
	s.events.emit(Event{Kind: EventTimeUpdate, Source: source})
}

// Loaded reports whether a source has ever been loaded.
func (s *Speaker) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsActive()
}

// Paused reports whether playback is not running.
func (s *Speaker) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != Playing
}

// State returns the transport state.
func (s *Speaker) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Position returns the current playback position.
func (s *Speaker) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := s.format.SampleRate.D(s.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the length of the loaded source once it is known.
func (s *Speaker) Duration() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration, s.hasDuration
}

// Events returns the notification channel.
func (s *Speaker) Events() <-chan Event {
	return s.events.ch
}

// Close stops playback and releases the audio resources.
func (s *Speaker) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.gen++
	s.releaseLocked()
	s.state = Stopped
	s.mu.Unlock()

	s.events.close()
	return nil
}

// releaseLocked drops the current source. Caller must hold s.mu.
func (s *Speaker) releaseLocked() {
	s.ticker.halt()
	s.ticker = nil

	if s.ctrl != nil {
		speaker.Clear()
		s.ctrl = nil
	}
	if s.streamer != nil {
		s.streamer.Close()
		s.streamer = nil
	}
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
}
