package trackmap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trackshift.klederson.com/internal/palette"
)

var styleLegend = lipgloss.NewStyle().Foreground(colorOutline)

// RenderSpeedLegend draws the speed gradient as a centred colour bar.
func RenderSpeedLegend(width int, g palette.Gradient) string {
	const steps = 16
	var bar strings.Builder
	for i := 0; i < steps; i++ {
		c := g.At(float64(i), 0, steps-1)
		bar.WriteString(lipgloss.NewStyle().Foreground(c.Color()).Render("█"))
	}
	legend := styleLegend.Render("SLOW ") + bar.String() + styleLegend.Render(" FAST")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
