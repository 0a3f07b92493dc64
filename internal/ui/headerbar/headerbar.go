// Package headerbar renders the homepage title, the visitor counter and the
// tab menu.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/minihome/internal/ui/render"
	"github.com/llehouerou/minihome/internal/ui/styles"
	"github.com/llehouerou/minihome/internal/visitor"
)

// Height is the fixed height of the header bar (title row + tab row).
const Height = 2

// Tab identifies a homepage tab. Exactly one is active at a time.
type Tab int

const (
	TabHome Tab = iota
	TabDiary
	TabGuestbook
)

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "home"
	case TabDiary:
		return "diary"
	case TabGuestbook:
		return "guestbook"
	default:
		return "unknown"
	}
}

// tab represents a header bar tab.
type tab struct {
	key  string
	name string
	tab  Tab
}

var tabs = []tab{
	{"F1", "Home", TabHome},
	{"F2", "Diary", TabDiary},
	{"F3", "Guestbook", TabGuestbook},
}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	for i, t := range tabs {
		out[i] = t.tab
	}
	return out
}

func activeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true).Underline(true)
}

func inactiveKeyStyle() lipgloss.Style { return styles.T().S().Subtle }

func inactiveNameStyle() lipgloss.Style { return styles.T().S().Muted }

// Render returns the two header rows for the given width.
func Render(owner string, counter visitor.Record, active Tab, width int) string {
	if width < 20 {
		return ""
	}

	title := styles.BrandTitle(render.Truncate(owner+"'s minihome", width/2))
	count := styles.T().S().Accent.Render(counter.String())
	top := render.Row(title, count, width)

	return top + "\n" + renderTabs(active, width)
}

func renderTabs(active Tab, width int) string {
	parts := make([]string, 0, len(tabs))
	separator := styles.T().S().Subtle.Render(" │ ")

	for _, t := range tabs {
		if t.tab == active {
			parts = append(parts, activeStyle().Render(t.key+" "+t.name))
			continue
		}
		parts = append(parts, inactiveKeyStyle().Render(t.key)+" "+inactiveNameStyle().Render(t.name))
	}

	content := strings.Join(parts, separator)

	// Center the content
	if contentWidth := lipgloss.Width(content); contentWidth < width {
		content = strings.Repeat(" ", (width-contentWidth)/2) + content
	}

	return content
}
