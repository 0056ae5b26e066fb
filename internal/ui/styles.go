package ui

import "github.com/charmbracelet/lipgloss"

// Retro color palette
var (
	ColorBackground  = lipgloss.Color("#05050F")
	ColorYellow      = lipgloss.Color("#FFFF64")
	ColorCyan        = lipgloss.Color("#64FFFF")
	ColorMagenta     = lipgloss.Color("#FF64FF")
	ColorWhite       = lipgloss.Color("#DCDCDC")
	ColorDim         = lipgloss.Color("#78788C")
	ColorPanelBg     = lipgloss.Color("#0F0A1E")
	ColorPanelBorder = lipgloss.Color("#643296")
	ColorControlEdge = lipgloss.Color("#502864")
	ColorTrack       = lipgloss.Color("#3C3C50")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorPanelBg).
			Foreground(ColorCyan).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorWhite)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorPanelBg).
			Foreground(ColorDim).
			Padding(0, 1)

	StyleStatusPlaying = lipgloss.NewStyle().
				Foreground(ColorCyan).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorYellow).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPanelBorder)

	StyleControlsBorder = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorControlEdge).
				Padding(0, 1)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true).
			Padding(0, 1)

	StyleEvent = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	StyleRate = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorPanelBorder)

	StyleLead = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	StyleGap = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleControlsTitle = lipgloss.NewStyle().
				Foreground(ColorCyan).
				Bold(true)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorWhite)

	StylePause = lipgloss.NewStyle().
			Background(ColorPanelBorder).
			Foreground(ColorYellow).
			Bold(true).
			Padding(0, 2)

	StyleProgressFill = lipgloss.NewStyle().
				Foreground(ColorCyan)

	StyleProgressEmpty = lipgloss.NewStyle().
				Foreground(ColorTrack)
)
