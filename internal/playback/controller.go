// internal/playback/controller.go
package playback

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/minihome/internal/player"
	"github.com/llehouerou/minihome/internal/playlist"
)

// Controller sequences playback intents against a fixed catalog and a single
// engine, and keeps a Display in sync with what the engine reports.
//
// A Controller is not safe for concurrent use. Every method, including
// HandleEvent, must be called from one goroutine, which the app guarantees by
// routing both user input and engine notifications through its update loop.
type Controller struct {
	catalog *playlist.Catalog
	cursor  *playlist.Cursor
	engine  player.Engine
	display Display
	log     logrus.FieldLogger

	activeID  string
	isPlaying bool
}

// New creates a controller with the cursor on the first track and nothing
// loaded. A nil display discards updates.
func New(catalog *playlist.Catalog, engine player.Engine, display Display, log logrus.FieldLogger) *Controller {
	if display == nil {
		display = NopDisplay{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{
		catalog: catalog,
		cursor:  playlist.NewCursor(catalog),
		engine:  engine,
		display: display,
		log:     log.WithField("component", "playback"),
	}
}

// State returns a snapshot of the player state.
func (c *Controller) State() State {
	return State{
		Cursor:        c.cursor.Index(),
		ActiveTrackID: c.activeID,
		IsPlaying:     c.isPlaying,
	}
}

// Catalog returns the catalog the controller plays from.
func (c *Controller) Catalog() *playlist.Catalog {
	return c.catalog
}

// CurrentTrack returns the track under the cursor, or nil for an empty catalog.
func (c *Controller) CurrentTrack() *playlist.Track {
	return c.cursor.Current()
}

// ActiveTrack returns the track last loaded into the engine, or nil.
func (c *Controller) ActiveTrack() *playlist.Track {
	return c.catalog.ByID(c.activeID)
}

// Play resumes the loaded source. If nothing was ever loaded it starts the
// first track of the catalog; with an empty catalog it does nothing.
func (c *Controller) Play() {
	if c.engine.Loaded() {
		c.engine.Play()
		return
	}
	first := c.catalog.At(0)
	if first == nil {
		c.log.Debug("play: catalog is empty")
		return
	}
	c.loadAndPlay(first.ID)
}

// Pause pauses the loaded source, if any.
func (c *Controller) Pause() {
	if !c.engine.Loaded() {
		return
	}
	c.engine.Pause()
}

// Next advances the cursor, wrapping to the first track, and plays it.
func (c *Controller) Next() {
	if !c.cursor.Next() {
		return
	}
	c.playCursor()
}

// Previous moves the cursor back, wrapping to the last track, and plays it.
func (c *Controller) Previous() {
	if !c.cursor.Previous() {
		return
	}
	c.playCursor()
}

// SelectByID moves the cursor to the first track with the given id and plays
// it. Unknown or empty ids leave everything unchanged.
func (c *Controller) SelectByID(id string) {
	index := c.catalog.IndexOf(id)
	if index < 0 {
		c.log.WithField("track", id).Debug("select: no such track")
		return
	}
	c.cursor.MoveTo(index)
	c.playCursor()
}

func (c *Controller) playCursor() {
	track := c.cursor.Current()
	c.loadAndPlay(track.ID)
	c.display.SetSelected(track.ID)
}

// loadAndPlay records id as active and, if it resolves, points the engine at
// its source and starts playback. The lookup is repeated here rather than
// trusting the caller.
func (c *Controller) loadAndPlay(id string) {
	c.activeID = id
	track := c.catalog.ByID(id)
	if track == nil {
		c.log.WithField("track", id).Warn("load: track not in catalog")
		return
	}
	c.log.WithField("track", id).Debug("load and play")
	c.engine.Load(track.Source)
	c.engine.Play()
	c.display.SetTitle(track.Title)
}

// HandleEvent reacts to an engine notification.
func (c *Controller) HandleEvent(ev player.Event) {
	switch ev.Kind {
	case player.EventPlay, player.EventPause:
		c.onEngineStateChanged()
	case player.EventEnded:
		c.Next()
	case player.EventTimeUpdate:
		c.onProgressTick()
	case player.EventMetadataLoaded:
		c.onDurationResolved()
	}
}

// onEngineStateChanged is the only writer of the play/pause affordance.
func (c *Controller) onEngineStateChanged() {
	c.isPlaying = !c.engine.Paused()
	c.display.SetPlaying(c.isPlaying)
}

func (c *Controller) onProgressTick() {
	pos := c.engine.Position()
	c.display.SetElapsed(FormatClock(pos))
	dur, known := c.engine.Duration()
	if !known {
		return
	}
	if ratio, ok := ProgressRatio(pos, dur); ok {
		c.display.SetProgress(ratio)
	}
}

func (c *Controller) onDurationResolved() {
	dur, known := c.engine.Duration()
	if !known {
		return
	}
	c.display.SetTotal(FormatClock(dur))
}
