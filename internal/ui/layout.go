package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the map panel and side panel horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, mapPanel, sidePanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, mapPanel, sidePanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// Split divides the terminal width between the map and the side panel.
func Split(width int) (mapW, sideW int) {
	mapW = width * 3 / 4
	if mapW < 30 {
		mapW = 30
	}
	sideW = width - mapW
	if sideW < 24 {
		sideW = 24
		mapW = width - sideW
	}
	return mapW, sideW
}
