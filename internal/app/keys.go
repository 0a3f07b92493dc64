package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/minihome/internal/keymap"
	"github.com/llehouerou/minihome/internal/ui/headerbar"
)

// handleKey routes a key press. Popups take every key while shown; a focused
// form only reacts to compose bindings and types everything else.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.Active() {
		_, cmd := m.confirm.Update(msg)
		return cmd
	}
	if m.showHelp {
		_, cmd := m.help.Update(msg)
		return cmd
	}
	if f := m.focusedForm(); f != nil {
		return m.handleComposeKey(msg)
	}

	a := m.keys.Resolve(msg.String())
	if a == "" {
		return nil
	}
	if cmd, ok := m.handleGlobalAction(a); ok {
		return cmd
	}
	if cmd, ok := m.handlePlaybackAction(a); ok {
		return cmd
	}
	return m.handlePanelAction(a)
}

func (m *Model) handleComposeKey(msg tea.KeyMsg) tea.Cmd {
	f := m.focusedForm()
	switch m.keys.ResolveIn(msg.String(), "compose") {
	case keymap.ActionSelect:
		return f.Submit()
	case keymap.ActionCancel:
		return m.setFocus(FocusPlayer)
	case keymap.ActionSwitchFocus:
		return m.cycleFocus()
	case keymap.ActionQuit:
		return tea.Quit
	default:
		return f.Update(msg)
	}
}

func (m *Model) handleGlobalAction(a keymap.Action) (tea.Cmd, bool) {
	switch a {
	case keymap.ActionQuit:
		return tea.Quit, true
	case keymap.ActionSwitchFocus:
		return m.cycleFocus(), true
	case keymap.ActionHelp:
		m.help.SetContexts(keymap.Contexts())
		m.help.SetSize(m.width, m.height)
		m.showHelp = true
		return nil, true
	case keymap.ActionTabHome:
		return m.setTab(headerbar.TabHome), true
	case keymap.ActionTabDiary:
		return m.setTab(headerbar.TabDiary), true
	case keymap.ActionTabGuestbook:
		return m.setTab(headerbar.TabGuestbook), true
	}
	return nil, false
}

// handlePlaybackAction applies transport keys regardless of focus.
func (m *Model) handlePlaybackAction(a keymap.Action) (tea.Cmd, bool) {
	switch a {
	case keymap.ActionPlayPause:
		m.togglePlayback()
	case keymap.ActionPlay:
		m.ctrl.Play()
	case keymap.ActionPause:
		m.ctrl.Pause()
	case keymap.ActionNextTrack:
		m.ctrl.Next()
	case keymap.ActionPrevTrack:
		m.ctrl.Previous()
	default:
		return nil, false
	}
	return m.synced(), true
}

// handlePanelAction sends list actions to the focused panel.
func (m *Model) handlePanelAction(a keymap.Action) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FocusPlayer:
		cmd, _ = m.player.HandleAction(a)
	case FocusGuestbook:
		cmd, _ = m.guestbook.HandleAction(a)
	}
	return cmd
}
