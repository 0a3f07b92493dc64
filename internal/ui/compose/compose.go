// Package compose provides the single-line miniroom comment and diary forms.
package compose

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/minihome/internal/icons"
	"github.com/llehouerou/minihome/internal/state"
	"github.com/llehouerou/minihome/internal/ui"
	"github.com/llehouerou/minihome/internal/ui/action"
	"github.com/llehouerou/minihome/internal/ui/render"
	"github.com/llehouerou/minihome/internal/ui/styles"
)

const charLimit = 300

type copyText struct {
	title       string
	icon        func(string) string
	placeholder string
	empty       string
	registered  string
}

var texts = map[state.PostKind]copyText{
	state.PostMiniroom: {
		title:       "Miniroom",
		icon:        icons.FormatMiniroom,
		placeholder: "leave a comment on the miniroom",
		empty:       "please enter a comment",
		registered:  "comment registered!",
	},
	state.PostDiary: {
		title:       "Diary",
		icon:        icons.FormatDiary,
		placeholder: "what happened today?",
		empty:       "please enter diary content",
		registered:  "diary registered!",
	},
}

// EmptyStatus is the status shown when kind is submitted with no content.
func EmptyStatus(kind state.PostKind) string { return texts[kind].empty }

// RegisteredStatus is the status shown after a kind post is stored.
func RegisteredStatus(kind state.PostKind) string { return texts[kind].registered }

// Model is a form with its recent posts listed above the input.
type Model struct {
	ui.Base
	kind  state.PostKind
	input textinput.Model
	posts []state.Post
	now   func() time.Time
}

// New creates a form for kind.
func New(kind state.PostKind) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = charLimit
	return Model{kind: kind, input: in, now: time.Now}
}

// Kind returns the post kind this form writes.
func (m Model) Kind() state.PostKind { return m.kind }

// Value returns the raw input text.
func (m Model) Value() string { return m.input.Value() }

// SetValue replaces the input text.
func (m *Model) SetValue(s string) { m.input.SetValue(s) }

// SetPosts replaces the listed posts (newest first).
func (m *Model) SetPosts(posts []state.Post) { m.posts = posts }

// Posts returns the listed posts.
func (m Model) Posts() []state.Post { return m.posts }

// Focus focuses the text input and returns the cursor blink command.
func (m *Model) Focus() tea.Cmd {
	m.SetFocused(true)
	return m.input.Focus()
}

// Blur removes focus from the text input.
func (m *Model) Blur() {
	m.SetFocused(false)
	m.input.Blur()
}

// Update forwards editing messages to the text input.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// Submit validates the input. Blank input yields Rejected and keeps the text;
// otherwise Submitted carries the trimmed body. The input is cleared by Added
// once the post is stored.
func (m *Model) Submit() tea.Cmd {
	body := strings.TrimSpace(m.input.Value())
	if body == "" {
		return action.Cmd(Source, Rejected{Kind: m.kind, Status: EmptyStatus(m.kind)})
	}
	return action.Cmd(Source, Submitted{Kind: m.kind, Body: body})
}

// Added records a stored post and clears the input.
func (m *Model) Added(p state.Post) {
	m.posts = append([]state.Post{p}, m.posts...)
	m.input.Reset()
}

// View renders the panel at the model's size.
func (m Model) View() string {
	w := m.Width()
	if w < 10 {
		return ""
	}
	inner := w - ui.BorderHeight
	t := styles.T().S()

	c := texts[m.kind]
	title := fmt.Sprintf("%s (%d)", c.icon(c.title), len(m.posts))
	lines := []string{styles.PanelTitle(title, m.IsFocused())}

	room := max(m.Height()-ui.PanelOverhead-1, 0)
	for _, p := range m.posts[:min(room, len(m.posts))] {
		lines = append(lines, render.Row(
			t.Base.Render(render.Truncate(p.Body, inner-16)),
			t.Subtle.Render(humanize.RelTime(p.CreatedAt, m.now(), "ago", "from now")),
			inner,
		))
	}

	lines = append(lines, t.Subtle.Render(render.Separator(inner)))
	if m.input.Value() == "" && !m.input.Focused() {
		lines = append(lines, t.Subtle.Render(m.input.Prompt+texts[m.kind].placeholder))
	} else {
		m.input.Width = max(inner-3, 1)
		lines = append(lines, m.input.View())
	}

	return styles.PanelStyle(m.IsFocused()).Width(inner).Render(strings.Join(lines, "\n"))
}
