package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trackshift.klederson.com/internal/config"
)

// KeyHint is one entry of the menu bar and controls box.
type KeyHint struct {
	Key    string
	Action string
}

// RaceKeys and LapKeys list the controls of each replay.
var (
	RaceKeys = []KeyHint{
		{"Space", "PAUSE"},
		{"Left/Right", "SKIP"},
		{"Up/Down", "SPEED"},
		{"R", "RESET"},
		{"Q", "QUIT"},
	}
	LapKeys = []KeyHint{
		{"Space", "PAUSE"},
		{"Left/Right", "LAP"},
		{"Up/Down", "SPEED"},
		{"R", "RESET"},
		{"Q", "QUIT"},
	}
)

// RenderMenuBar renders the top bar: app name, replay mode and event.
func RenderMenuBar(width int, mode, event string, paused bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	left := StyleMenuKey.Render(title) + "  " + StyleMenuLabel.Render(mode)

	status := StyleStatusPlaying.Render("REPLAY")
	if paused {
		status = StyleStatusPaused.Render("PAUSED")
	}
	right := status + "  " + StyleMenuLabel.Render(event) + " "

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
