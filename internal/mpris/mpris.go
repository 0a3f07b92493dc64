//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/sirupsen/logrus"
)

// Adapter connects the app to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
	player *playerAdapter
	log    logrus.FieldLogger
}

// New creates an adapter. It does not touch D-Bus until Start.
func New(log logrus.FieldLogger) *Adapter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("component", "mpris")
	p := &playerAdapter{log: log}
	return &Adapter{
		server: server.NewServer("minihome", &rootAdapter{}, p),
		player: p,
		log:    log,
	}
}

// Start begins serving on the session bus and forwards intents to sender.
func (a *Adapter) Start(sender Sender) {
	a.player.setSender(sender)
	go func() {
		if err := a.server.Listen(); err != nil {
			a.log.WithError(err).Warn("mpris server stopped")
		}
	}()
}

// Publish replaces the state reported to D-Bus clients.
func (a *Adapter) Publish(s Snapshot) {
	a.player.state.set(s)
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // the TUI owns its lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Minihome", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/mp3"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	sender Sender
	state  snapshotStore
	log    logrus.FieldLogger
}

func (p *playerAdapter) setSender(s Sender) {
	p.sender = s
}

func (p *playerAdapter) send(i Intent) error {
	if p.sender == nil {
		return nil
	}
	p.log.WithField("intent", i).Debug("media key")
	p.sender.Send(IntentMsg{Intent: i})
	return nil
}

func (p *playerAdapter) Next() error      { return p.send(IntentNext) }
func (p *playerAdapter) Previous() error  { return p.send(IntentPrevious) }
func (p *playerAdapter) Pause() error     { return p.send(IntentPause) }
func (p *playerAdapter) PlayPause() error { return p.send(IntentPlayPause) }
func (p *playerAdapter) Stop() error      { return p.send(IntentPause) }
func (p *playerAdapter) Play() error      { return p.send(IntentPlay) }

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.state.get()), nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.state.get()
	if s.TrackID == "" {
		return types.Metadata{}, nil
	}
	return types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(s.TrackID)),
		Length:  types.Microseconds(s.Duration.Microseconds()),
		Title:   s.Title,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.state.get().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

// The catalog wraps around, so next and previous are available whenever
// anything can play.
func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.state.get().CanPlay, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.state.get().CanPlay, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.state.get().CanPlay, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func playbackStatus(s Snapshot) types.PlaybackStatus {
	switch {
	case !s.Loaded:
		return types.PlaybackStatusStopped
	case s.Playing:
		return types.PlaybackStatusPlaying
	default:
		return types.PlaybackStatusPaused
	}
}

func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
