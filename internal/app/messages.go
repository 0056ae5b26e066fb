package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trackshift.klederson.com/internal/config"
)

// TickMsg triggers a frame update: clock advance, then standings.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
