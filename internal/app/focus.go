package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/minihome/internal/state"
	"github.com/llehouerou/minihome/internal/ui/compose"
	"github.com/llehouerou/minihome/internal/ui/headerbar"
)

// FocusTarget identifies which panel receives key input.
type FocusTarget int

const (
	FocusPlayer FocusTarget = iota
	FocusGuestbook
	FocusMiniroom
	FocusDiary
)

// focusRing lists the panels shown on tab in tab-key order.
func focusRing(tab headerbar.Tab) []FocusTarget {
	switch tab {
	case headerbar.TabDiary:
		return []FocusTarget{FocusDiary, FocusPlayer}
	case headerbar.TabGuestbook:
		return []FocusTarget{FocusGuestbook, FocusPlayer}
	default:
		return []FocusTarget{FocusGuestbook, FocusMiniroom, FocusPlayer}
	}
}

// setFocus moves focus to f. Focusing a form returns its cursor blink command.
func (m *Model) setFocus(f FocusTarget) tea.Cmd {
	m.focus = f
	m.player.SetFocused(f == FocusPlayer)
	m.guestbook.SetFocused(f == FocusGuestbook)

	var cmd tea.Cmd
	for _, form := range []struct {
		target FocusTarget
		model  *compose.Model
	}{
		{FocusMiniroom, &m.miniroom},
		{FocusDiary, &m.diary},
	} {
		if form.target == f {
			cmd = form.model.Focus()
		} else {
			form.model.Blur()
		}
	}
	return cmd
}

// cycleFocus moves focus to the next panel of the active tab.
func (m *Model) cycleFocus() tea.Cmd {
	ring := focusRing(m.tab)
	next := ring[0]
	for i, f := range ring {
		if f == m.focus {
			next = ring[(i+1)%len(ring)]
			break
		}
	}
	return m.setFocus(next)
}

// setTab activates tab. The player keeps focus across tabs; any other focus
// moves to the first panel of the new tab.
func (m *Model) setTab(tab headerbar.Tab) tea.Cmd {
	m.tab = tab
	m.layout()
	if m.focus == FocusPlayer {
		return nil
	}
	return m.setFocus(focusRing(tab)[0])
}

// focusedForm returns the compose form holding focus, or nil.
func (m *Model) focusedForm() *compose.Model {
	switch m.focus {
	case FocusMiniroom:
		return &m.miniroom
	case FocusDiary:
		return &m.diary
	default:
		return nil
	}
}

// form returns the compose form for kind.
func (m *Model) form(kind state.PostKind) *compose.Model {
	if kind == state.PostDiary {
		return &m.diary
	}
	return &m.miniroom
}
