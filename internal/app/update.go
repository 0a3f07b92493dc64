package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/minihome/internal/errmsg"
	"github.com/llehouerou/minihome/internal/mpris"
	"github.com/llehouerou/minihome/internal/player"
	"github.com/llehouerou/minihome/internal/state"
	"github.com/llehouerou/minihome/internal/ui/action"
	"github.com/llehouerou/minihome/internal/ui/compose"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case engineEventMsg:
		m.ctrl.HandleEvent(player.Event(msg))
		cmd := m.synced()
		return m, tea.Batch(waitForEngineEvent(m.engine.Events()), cmd)

	case autoplayMsg:
		m.ctrl.Play()
		cmd := m.synced()
		return m, cmd

	case mpris.IntentMsg:
		cmd := m.applyIntent(msg.Intent)
		return m, cmd

	case notifiedMsg:
		if msg.Err != nil {
			m.log.WithError(msg.Err).Debug("now playing notification")
			return m, nil
		}
		m.notifyID = msg.ID
		return m, nil

	case visitRecordedMsg:
		if msg.Err != nil {
			m.fail(errmsg.OpVisitorCount, msg.Err)
			return m, nil
		}
		m.visitor = msg.Record
		return m, nil

	case guestbookLoadedMsg:
		if msg.Err != nil {
			m.fail(errmsg.OpGuestbookLoad, msg.Err)
			return m, nil
		}
		m.guestbook.SetEntries(msg.Entries)
		return m, nil

	case guestbookDeletedMsg:
		return m.handleGuestbookDeleted(msg)

	case postsLoadedMsg:
		if msg.Err != nil {
			m.log.WithError(msg.Err).WithField("kind", msg.Kind).Error(string(errmsg.OpPostsLoad))
			m.status = errmsg.FormatWith(errmsg.OpPostsLoad, string(msg.Kind), msg.Err)
			return m, nil
		}
		m.form(msg.Kind).SetPosts(msg.Posts)
		return m, nil

	case postAddedMsg:
		return m.handlePostAdded(msg)

	case action.Msg:
		return m.handleUIAction(msg)

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd
	}

	// Cursor blink and similar messages belong to the focused input.
	if f := m.focusedForm(); f != nil {
		cmd := f.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleGuestbookDeleted(msg guestbookDeletedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.Err, state.ErrNotFound) {
		// Already gone from the store; drop the stale row.
		m.guestbook.Remove(msg.ID)
		m.status = "entry was already deleted"
		return m, nil
	}
	if msg.Err != nil {
		m.fail(errmsg.OpGuestbookDelete, msg.Err)
		return m, nil
	}
	m.guestbook.Remove(msg.ID)
	m.status = "entry deleted"
	return m, nil
}

func (m Model) handlePostAdded(msg postAddedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		op := errmsg.OpCommentPost
		if msg.Kind == state.PostDiary {
			op = errmsg.OpDiaryPost
		}
		m.fail(op, msg.Err)
		return m, nil
	}
	m.form(msg.Kind).Added(msg.Post)
	m.status = compose.RegisteredStatus(msg.Kind)
	return m, nil
}

// fail logs err and shows it on the status line.
func (m *Model) fail(op errmsg.Op, err error) {
	m.log.WithError(err).Error(string(op))
	m.status = errmsg.Format(op, err)
}

// applyIntent runs a transport request from outside the keyboard.
func (m *Model) applyIntent(i mpris.Intent) tea.Cmd {
	switch i {
	case mpris.IntentPlay:
		m.ctrl.Play()
	case mpris.IntentPause:
		m.ctrl.Pause()
	case mpris.IntentPlayPause:
		m.togglePlayback()
	case mpris.IntentNext:
		m.ctrl.Next()
	case mpris.IntentPrevious:
		m.ctrl.Previous()
	default:
		return nil
	}
	return m.synced()
}

// togglePlayback plays when the engine is paused or never loaded, and pauses
// otherwise.
func (m *Model) togglePlayback() {
	if !m.engine.Loaded() || m.engine.Paused() {
		m.ctrl.Play()
		return
	}
	m.ctrl.Pause()
}
