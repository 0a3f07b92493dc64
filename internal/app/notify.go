package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/minihome/internal/notify"
)

// synced runs after every controller call: it publishes the player snapshot
// and announces a track change on the desktop.
func (m *Model) synced() tea.Cmd {
	m.publish()
	return m.nowPlayingCmd()
}

// nowPlayingCmd returns nil unless the active track changed since the last
// announcement. Notify talks to D-Bus, so it runs off the update loop.
func (m *Model) nowPlayingCmd() tea.Cmd {
	t := m.ctrl.ActiveTrack()
	if m.notifier == nil || t == nil || t.ID == m.announced {
		return nil
	}
	m.announced = t.ID

	n := notify.NowPlaying(t.Title, m.cfg.Owner, m.notifyID, m.cfg.NotificationTimeout())
	notifier := m.notifier
	return func() tea.Msg {
		id, err := notifier.Notify(n)
		return notifiedMsg{ID: id, Err: err}
	}
}

// DismissNowPlaying closes the last now-playing bubble. Call it once the
// program has exited.
func (m Model) DismissNowPlaying() {
	if m.notifier == nil || m.notifyID == 0 {
		return
	}
	if err := m.notifier.Close(m.notifyID); err != nil {
		m.log.WithError(err).Debug("dismiss now playing notification")
	}
}
