package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/minihome/internal/ui"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// RenderProgressBar renders a block-style progress bar between the two clocks.
// Format: 01:23  ▓▓▓▓▓░░░░░  04:56
// ratio is expected in [0, 1]; out-of-range values are clamped.
func RenderProgressBar(elapsed, total string, ratio float64, width int) string {
	fixedWidth := lipgloss.Width(elapsed) + 2 + 2 + lipgloss.Width(total)
	barWidth := width - fixedWidth

	if barWidth < ui.MinProgressBarWidth {
		// Too narrow for bar, just show times
		return elapsed + " / " + total
	}

	ratio = min(max(ratio, 0), 1)
	filled := min(int(float64(barWidth)*ratio), barWidth)

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)

	return elapsed + "  " + bar + "  " + total
}
