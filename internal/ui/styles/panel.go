package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns a rounded panel style, highlighted when focused.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// PanelTitle renders a panel heading, e.g. "Guestbook (3)".
func PanelTitle(title string, focused bool) string {
	if focused {
		return lipgloss.NewStyle().Foreground(T().Primary).Bold(true).Render(title)
	}
	return T().S().Title.Render(title)
}
