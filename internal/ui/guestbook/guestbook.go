// Package guestbook renders the visitor guestbook and turns the delete key
// into a confirmation request.
package guestbook

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/minihome/internal/icons"
	"github.com/llehouerou/minihome/internal/keymap"
	"github.com/llehouerou/minihome/internal/state"
	"github.com/llehouerou/minihome/internal/ui"
	"github.com/llehouerou/minihome/internal/ui/action"
	"github.com/llehouerou/minihome/internal/ui/cursor"
	"github.com/llehouerou/minihome/internal/ui/render"
	"github.com/llehouerou/minihome/internal/ui/styles"
)

// rowsPerEntry is the author line plus one message line.
const rowsPerEntry = 2

// Model is the guestbook panel.
type Model struct {
	ui.Base
	entries []state.GuestbookEntry
	cursor  cursor.Cursor
	now     func() time.Time
}

// New creates an empty guestbook panel.
func New() Model {
	return Model{cursor: cursor.New(0), now: time.Now}
}

// SetEntries replaces the entries, keeping the cursor in range.
func (m *Model) SetEntries(entries []state.GuestbookEntry) {
	m.entries = entries
	m.cursor.ClampToBounds(len(entries))
}

// Entries returns the entries currently shown.
func (m Model) Entries() []state.GuestbookEntry {
	return m.entries
}

// Remove drops the entry with id after it was deleted from the store.
func (m *Model) Remove(id int64) {
	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i:i], m.entries[i+1:]...)
			break
		}
	}
	m.cursor.ClampToBounds(len(m.entries))
}

// Highlighted returns the entry under the cursor, or nil when empty.
func (m Model) Highlighted() *state.GuestbookEntry {
	if len(m.entries) == 0 {
		return nil
	}
	e := m.entries[m.cursor.Pos()]
	return &e
}

// HandleAction applies a guestbook action. It returns false for actions the
// panel does not handle.
func (m *Model) HandleAction(a keymap.Action) (tea.Cmd, bool) {
	n, h := len(m.entries), m.visibleEntries()
	switch a {
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, n, h)
	case keymap.ActionMoveDown:
		m.cursor.Move(1, n, h)
	case keymap.ActionJumpStart:
		m.cursor.JumpStart()
	case keymap.ActionJumpEnd:
		m.cursor.JumpEnd(n, h)
	case keymap.ActionDelete:
		e := m.Highlighted()
		if e == nil {
			return nil, true
		}
		return action.Cmd(Source, DeleteRequest{ID: e.ID, Author: e.Author}), true
	default:
		return nil, false
	}
	return nil, true
}

func (m Model) visibleEntries() int {
	if m.Height() == 0 {
		return len(m.entries)
	}
	return max(m.ListHeight(ui.PanelOverhead)/rowsPerEntry, 1)
}

// View renders the panel at the model's size.
func (m Model) View() string {
	w := m.Width()
	if w < 10 {
		return ""
	}
	inner := w - ui.BorderHeight
	t := styles.T().S()

	title := fmt.Sprintf("%s (%d)", icons.FormatGuestbook("Guestbook"), len(m.entries))
	lines := []string{styles.PanelTitle(title, m.IsFocused()), t.Subtle.Render(render.Separator(inner))}

	if len(m.entries) == 0 {
		lines = append(lines, t.Subtle.Render("no messages yet"))
	}

	start, end := m.cursor.VisibleRange(len(m.entries), m.visibleEntries())
	for i := start; i < end; i++ {
		e := m.entries[i]
		header := render.Row(
			t.Accent.Render(render.Truncate(e.Author, inner/2)),
			t.Subtle.Render(humanize.RelTime(e.CreatedAt, m.now(), "ago", "from now")),
			inner,
		)
		body := render.TruncateAndPad("  "+e.Message, inner)
		if i == m.cursor.Pos() && m.IsFocused() {
			header = t.Cursor.Render(render.Pad(strings.TrimRight(header, " "), inner))
			body = t.Cursor.Render(body)
		} else {
			body = t.Base.Render(body)
		}
		lines = append(lines, header, body)
	}

	return styles.PanelStyle(m.IsFocused()).Width(inner).Render(strings.Join(lines, "\n"))
}
