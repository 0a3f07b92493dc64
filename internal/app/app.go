// Package app is the root bubbletea model: it owns every widget, routes keys
// and component actions, and pumps engine notifications into the playback
// controller on the update loop.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/minihome/internal/config"
	"github.com/llehouerou/minihome/internal/keymap"
	"github.com/llehouerou/minihome/internal/mpris"
	"github.com/llehouerou/minihome/internal/notify"
	"github.com/llehouerou/minihome/internal/playback"
	"github.com/llehouerou/minihome/internal/player"
	"github.com/llehouerou/minihome/internal/playlist"
	"github.com/llehouerou/minihome/internal/state"
	"github.com/llehouerou/minihome/internal/ui/compose"
	"github.com/llehouerou/minihome/internal/ui/confirm"
	"github.com/llehouerou/minihome/internal/ui/guestbook"
	"github.com/llehouerou/minihome/internal/ui/headerbar"
	"github.com/llehouerou/minihome/internal/ui/helpbindings"
	"github.com/llehouerou/minihome/internal/ui/playerbar"
	"github.com/llehouerou/minihome/internal/visitor"
)

// recentPosts is how many posts each compose form loads at startup.
const recentPosts = 20

// Publisher receives player snapshots after every change. *mpris.Adapter
// satisfies it.
type Publisher interface {
	Publish(s mpris.Snapshot)
}

// Deps are the collaborators the app is built from.
type Deps struct {
	Config    *config.Config
	State     state.Interface
	Engine    player.Engine
	Catalog   *playlist.Catalog
	Publisher Publisher       // optional
	Notifier  notify.Notifier // optional
	Log       logrus.FieldLogger
}

// Model is the root application model containing all state.
type Model struct {
	cfg    *config.Config
	log    logrus.FieldLogger
	state  state.Interface
	engine player.Engine
	ctrl   *playback.Controller
	keys   *keymap.Resolver
	mpris  Publisher

	notifier  notify.Notifier
	announced string // id of the last track announced on the desktop
	notifyID  uint32

	player    *playerbar.Model
	guestbook guestbook.Model
	miniroom  compose.Model
	diary     compose.Model
	confirm   confirm.Model
	help      helpbindings.Model
	showHelp  bool

	visitor visitor.Record
	tab     headerbar.Tab
	focus   FocusTarget
	status  string
	width   int
	height  int
}

// New creates the application model. The player widget is the playback
// controller's display.
func New(d Deps) Model {
	log := d.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	cfg := d.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	bar := playerbar.New(d.Catalog.Tracks())
	m := Model{
		cfg:       cfg,
		log:       log.WithField("component", "app"),
		state:     d.State,
		engine:    d.Engine,
		ctrl:      playback.New(d.Catalog, d.Engine, bar, log),
		keys:      keymap.NewResolver(keymap.Bindings),
		mpris:     d.Publisher,
		notifier:  d.Notifier,
		player:    bar,
		guestbook: guestbook.New(),
		miniroom:  compose.New(state.PostMiniroom),
		diary:     compose.New(state.PostDiary),
		confirm:   confirm.New(),
		help:      helpbindings.New(),
		tab:       headerbar.TabHome,
	}
	m.setFocus(FocusPlayer)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		waitForEngineEvent(m.engine.Events()),
		m.recordVisitCmd(),
		m.loadGuestbookCmd(),
		m.loadPostsCmd(state.PostMiniroom),
		m.loadPostsCmd(state.PostDiary),
	}
	if m.cfg.Player.Autoplay {
		cmds = append(cmds, func() tea.Msg { return autoplayMsg{} })
	}
	return tea.Batch(cmds...)
}

// Controller returns the playback controller.
func (m Model) Controller() *playback.Controller {
	return m.ctrl
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status
}

// publish pushes the player state to the media-key integration, if any.
func (m *Model) publish() {
	if m.mpris == nil {
		return
	}
	st := m.ctrl.State()
	snap := mpris.Snapshot{
		Loaded:   m.engine.Loaded(),
		Playing:  st.IsPlaying,
		Position: m.engine.Position(),
		CanPlay:  !m.ctrl.Catalog().IsEmpty(),
	}
	if t := m.ctrl.ActiveTrack(); t != nil {
		snap.TrackID = t.ID
		snap.Title = t.Title
	}
	if d, ok := m.engine.Duration(); ok {
		snap.Duration = d
	}
	m.mpris.Publish(snap)
}
