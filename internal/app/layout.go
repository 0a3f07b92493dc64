package app

import (
	"github.com/llehouerou/minihome/internal/ui"
	"github.com/llehouerou/minihome/internal/ui/headerbar"
)

const (
	// minSideBySideWidth is the narrowest terminal that places the player
	// beside the tab panels instead of above them.
	minSideBySideWidth = 72
	statusHeight       = 1
	minPlayerWidth     = 30
	maxPlayerWidth     = 48
)

// sideBySide reports whether the player sits to the right of the tab panels.
func (m Model) sideBySide() bool {
	return m.width >= minSideBySideWidth
}

// bodyHeight is the space between the header and the status line.
func (m Model) bodyHeight() int {
	return max(m.height-headerbar.Height-statusHeight, 0)
}

// playerHeight fits every track plus the now-playing rows.
func (m Model) playerHeight() int {
	return ui.BorderHeight + 3 + max(m.ctrl.Catalog().Len(), 1)
}

func playerWidth(total int) int {
	return min(max(total*2/5, minPlayerWidth), maxPlayerWidth)
}

// layout sizes every panel for the current terminal and tab.
func (m *Model) layout() {
	bodyH := m.bodyHeight()
	panelW := m.width
	panelH := bodyH

	if m.sideBySide() {
		pw := playerWidth(m.width)
		m.player.SetSize(pw, min(m.playerHeight(), bodyH))
		panelW = m.width - pw
	} else {
		ph := min(m.playerHeight(), bodyH/2)
		m.player.SetSize(m.width, ph)
		panelH = bodyH - ph
	}

	switch m.tab {
	case headerbar.TabHome:
		top := panelH - panelH/2
		m.guestbook.SetSize(panelW, top)
		m.miniroom.SetSize(panelW, panelH-top)
	case headerbar.TabDiary:
		m.diary.SetSize(panelW, panelH)
	case headerbar.TabGuestbook:
		m.guestbook.SetSize(panelW, panelH)
	}

	if m.confirm.Active() {
		m.confirm.SetSize(m.width, m.height)
	}
	m.help.SetSize(m.width, m.height)
}
