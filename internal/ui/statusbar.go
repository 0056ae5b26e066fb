package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar with the replay state.
func RenderStatusBar(width int, paused bool, rate float64, info string) string {
	status := StyleStatusPlaying.Render("[PLAY]")
	if paused {
		status = StyleStatusPaused.Render("[PAUSE]")
	}

	text := fmt.Sprintf(" x%.1f  %s", rate, info)
	content := status + StyleStatusBar.Render(text)

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
