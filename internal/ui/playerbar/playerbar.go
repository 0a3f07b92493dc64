// Package playerbar renders the BGM widget: the track list, the now-playing
// line with its play/pause affordance, and the progress bar.
package playerbar

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/minihome/internal/keymap"
	"github.com/llehouerou/minihome/internal/playback"
	"github.com/llehouerou/minihome/internal/playlist"
	"github.com/llehouerou/minihome/internal/ui"
	"github.com/llehouerou/minihome/internal/ui/action"
	"github.com/llehouerou/minihome/internal/ui/cursor"
)

var _ playback.Display = (*Model)(nil)

// Model is the player widget. The playback controller drives it through the
// playback.Display methods; the app routes key actions to HandleAction.
type Model struct {
	ui.Base
	tracks []playlist.Track
	cursor cursor.Cursor

	selectedID string
	title      string
	elapsed    string
	total      string
	progress   float64
	playing    bool
}

// New creates a player widget listing tracks.
func New(tracks []playlist.Track) *Model {
	m := &Model{
		tracks:  tracks,
		cursor:  cursor.New(ui.ScrollMargin),
		elapsed: playback.FormatClock(0),
		total:   playback.FormatClock(0),
	}
	return m
}

func (m *Model) SetTitle(title string) { m.title = title }

func (m *Model) SetElapsed(clock string) { m.elapsed = clock }

func (m *Model) SetTotal(clock string) { m.total = clock }

func (m *Model) SetProgress(ratio float64) { m.progress = ratio }

func (m *Model) SetPlaying(playing bool) { m.playing = playing }

// SetSelected marks id as the selected track and moves the list cursor onto it.
// Unknown ids leave the cursor where it is.
func (m *Model) SetSelected(id string) {
	m.selectedID = id
	for i, t := range m.tracks {
		if t.ID == id {
			m.cursor.Jump(i, len(m.tracks), m.listHeight())
			return
		}
	}
}

// Selected returns the id of the selected track ("" before any selection).
func (m *Model) Selected() string { return m.selectedID }

// Highlighted returns the track under the list cursor, or nil when empty.
func (m *Model) Highlighted() *playlist.Track {
	if len(m.tracks) == 0 {
		return nil
	}
	t := m.tracks[m.cursor.Pos()]
	return &t
}

// Title returns the now-playing title.
func (m *Model) Title() string { return m.title }

// Playing reports the current play/pause affordance.
func (m *Model) Playing() bool { return m.playing }

// HandleAction applies a list action. It returns false for actions the
// widget does not handle.
func (m *Model) HandleAction(a keymap.Action) (tea.Cmd, bool) {
	n, h := len(m.tracks), m.listHeight()
	switch a {
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, n, h)
	case keymap.ActionMoveDown:
		m.cursor.Move(1, n, h)
	case keymap.ActionJumpStart:
		m.cursor.JumpStart()
	case keymap.ActionJumpEnd:
		m.cursor.JumpEnd(n, h)
	case keymap.ActionSelect:
		t := m.Highlighted()
		if t == nil {
			return nil, true
		}
		return action.Cmd(Source, SelectTrack{ID: t.ID}), true
	default:
		return nil, false
	}
	return nil, true
}

// listHeight is the number of track rows that fit: the panel minus its
// border, title row and the two now-playing rows.
func (m *Model) listHeight() int {
	if m.Height() == 0 {
		return len(m.tracks)
	}
	return max(m.ListHeight(ui.BorderHeight+3), 1)
}
