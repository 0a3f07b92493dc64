package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/minihome/internal/ui/headerbar"
	"github.com/llehouerou/minihome/internal/ui/popup"
	"github.com/llehouerou/minihome/internal/ui/render"
	"github.com/llehouerou/minihome/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	// Can't render before we know terminal size
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := headerbar.Render(m.cfg.Owner, m.visitor, m.tab, m.width)
	view := header + "\n" + m.renderBody()
	view = enforceHeight(view, m.height-statusHeight) + "\n" + m.renderStatus()

	return m.renderOverlay(view)
}

// renderBody lays the tab panels out with the player.
func (m Model) renderBody() string {
	var panels string
	switch m.tab {
	case headerbar.TabHome:
		panels = lipgloss.JoinVertical(lipgloss.Left, m.guestbook.View(), m.miniroom.View())
	case headerbar.TabDiary:
		panels = m.diary.View()
	case headerbar.TabGuestbook:
		panels = m.guestbook.View()
	}

	if m.sideBySide() {
		return lipgloss.JoinHorizontal(lipgloss.Top, panels, m.player.View())
	}
	return m.player.View() + "\n" + panels
}

func (m Model) renderStatus() string {
	t := styles.T().S()
	hint := t.Subtle.Render("? help")
	return render.Row(t.Muted.Render(render.Truncate(m.status, max(m.width-8, 0))), hint, m.width)
}

// renderOverlay composes the active popup over the base view.
func (m Model) renderOverlay(base string) string {
	switch {
	case m.confirm.Active():
		content := m.confirm.View()
		return popup.Compose(base, popup.RenderBordered(content, m.width, m.height, popup.SizeAuto), m.width, m.height)
	case m.showHelp:
		content := m.help.View()
		return popup.Compose(base, popup.RenderBordered(content, m.width, m.height, popup.SizeHelp), m.width, m.height)
	}
	return base
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	if len(lines) == targetHeight {
		return view
	}
	if len(lines) < targetHeight {
		for len(lines) < targetHeight {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:max(targetHeight, 0)]
	}
	return strings.Join(lines, "\n")
}
