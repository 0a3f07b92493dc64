package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/minihome/internal/ui/action"
	"github.com/llehouerou/minihome/internal/ui/compose"
	"github.com/llehouerou/minihome/internal/ui/confirm"
	"github.com/llehouerou/minihome/internal/ui/guestbook"
	"github.com/llehouerou/minihome/internal/ui/helpbindings"
	"github.com/llehouerou/minihome/internal/ui/playerbar"
)

// handleUIAction routes action messages to component-specific handlers.
func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case playerbar.Source:
		return m.handlePlayerBarAction(msg.Action)
	case guestbook.Source:
		return m.handleGuestbookAction(msg.Action)
	case confirm.Source:
		return m.handleConfirmAction(msg.Action)
	case compose.Source:
		return m.handleComposeAction(msg.Action)
	case helpbindings.Source:
		if _, ok := msg.Action.(helpbindings.Close); ok {
			m.showHelp = false
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handlePlayerBarAction(a action.Action) (tea.Model, tea.Cmd) {
	sel, ok := a.(playerbar.SelectTrack)
	if !ok {
		return m, nil
	}
	m.ctrl.SelectByID(sel.ID)
	cmd := m.synced()
	return m, cmd
}

func (m Model) handleGuestbookAction(a action.Action) (tea.Model, tea.Cmd) {
	req, ok := a.(guestbook.DeleteRequest)
	if !ok {
		return m, nil
	}
	m.confirm.Show(
		"Delete entry",
		fmt.Sprintf("Delete the message from %s?", req.Author),
		req.ID,
		m.width, m.height,
	)
	return m, nil
}

func (m Model) handleConfirmAction(a action.Action) (tea.Model, tea.Cmd) {
	res, ok := a.(confirm.Result)
	if !ok || !res.Confirmed {
		return m, nil
	}
	id, ok := res.Context.(int64)
	if !ok {
		return m, nil
	}
	return m, m.deleteGuestbookCmd(id)
}

func (m Model) handleComposeAction(a action.Action) (tea.Model, tea.Cmd) {
	switch a := a.(type) {
	case compose.Submitted:
		return m, m.addPostCmd(a.Kind, a.Body)
	case compose.Rejected:
		m.status = a.Status
	}
	return m, nil
}
