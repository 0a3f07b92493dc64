package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/minihome/internal/icons"
	"github.com/llehouerou/minihome/internal/ui"
	"github.com/llehouerou/minihome/internal/ui/render"
	"github.com/llehouerou/minihome/internal/ui/styles"
)

const (
	playButton  = "▶ play"
	pauseButton = "❚❚ pause"
	noTitle     = "BGM"
)

// View renders the widget inside a panel of the model's size.
func (m *Model) View() string {
	w := m.Width()
	if w < 10 {
		return ""
	}
	inner := w - ui.BorderHeight
	t := styles.T().S()

	lines := []string{styles.PanelTitle(icons.FormatMusic("BGM"), m.IsFocused())}

	start, end := m.cursor.VisibleRange(len(m.tracks), m.listHeight())
	for i := start; i < end; i++ {
		lines = append(lines, m.renderTrack(i, inner))
	}
	if len(m.tracks) == 0 {
		lines = append(lines, t.Subtle.Render("no tracks"))
	}

	title := m.title
	if title == "" {
		title = noTitle
	}
	button := playButton
	if m.playing {
		button = pauseButton
	}
	lines = append(lines,
		render.Row(t.Playing.Render(render.Truncate(title, max(inner-lipgloss.Width(button)-1, 1))), t.Accent.Render(button), inner),
		t.Muted.Render(RenderProgressBar(m.elapsed, m.total, m.progress, inner)),
	)

	return styles.PanelStyle(m.IsFocused()).Width(inner).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderTrack(i, width int) string {
	tr := m.tracks[i]
	marker := "  "
	if tr.ID == m.selectedID {
		marker = icons.Selected()
	}
	text := render.TruncateAndPad(marker+tr.Title, width)

	t := styles.T().S()
	switch {
	case i == m.cursor.Pos() && m.IsFocused():
		return t.Cursor.Render(text)
	case tr.ID == m.selectedID:
		return t.Playing.Render(text)
	default:
		return t.Base.Render(text)
	}
}
