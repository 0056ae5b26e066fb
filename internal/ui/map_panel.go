package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderMapPanel wraps the track canvas with a border. The first row is
// reserved for the pause banner, the last for the legend. The canvas itself
// is rendered by the trackmap package.
func RenderMapPanel(width, height int, canvas, legend string, showPause bool) string {
	innerW := width - 2
	lines := strings.Split(canvas, "\n")

	// centre the canvas horizontally
	if cw := lipgloss.Width(lines[0]); cw < innerW {
		pad := strings.Repeat(" ", (innerW-cw)/2)
		for i := range lines {
			lines[i] = pad + lines[i]
		}
	}
	bannerRow := ""
	if showPause {
		banner := PauseBanner()
		pad := (innerW - lipgloss.Width(banner)) / 2
		if pad < 0 {
			pad = 0
		}
		bannerRow = strings.Repeat(" ", pad) + banner
	}
	lines = append([]string{bannerRow}, lines...)

	content := strings.Join(lines, "\n")
	if legend != "" {
		content += "\n" + legend
	}
	return StylePanelBorder.Width(innerW).Height(height - 2).MaxHeight(height).Render(content)
}

// PauseBanner is the blinking PAUSE label.
func PauseBanner() string {
	return StylePause.Render("PAUSE")
}
