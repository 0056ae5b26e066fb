package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trackshift.klederson.com/internal/palette"
)

// LapInfo is what the lap side panel shows.
type LapInfo struct {
	Driver       string
	Event        string
	Lap          int
	Laps         int
	Duration     *float64
	Speed        float64
	SpeedColor   palette.RGB
	Progress     float64 // [0, 1)
	Rate         float64
	SpeedHistory []float64
}

// FormatLapTime renders a lap time as HH:MM:SS, or N/A when unknown.
func FormatLapTime(d *float64) string {
	if d == nil || math.IsNaN(*d) || *d < 0 {
		return "N/A"
	}
	s := int(*d)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
}

// RenderLapPanel renders the single driver side panel.
func RenderLapPanel(info LapInfo, width, height int) string {
	innerW := width - 4
	if innerW < 16 {
		innerW = 16
	}

	sep := StyleSeparator.Render(strings.Repeat("-", innerW))
	speedSty := lipgloss.NewStyle().Foreground(info.SpeedColor.Color()).Bold(true)
	pct := int(info.Progress * 100)

	lines := []string{
		StylePanelTitle.Render(info.Driver),
		StyleEvent.Render(info.Event),
		sep,
		" " + StyleLabel.Render("LAP"),
		" " + StyleValue.Render(fmt.Sprintf("%d/%d", info.Lap, info.Laps)),
		" " + StyleLabel.Render("TIME"),
		" " + StyleValue.Render(FormatLapTime(info.Duration)),
		" " + StyleLabel.Render("SPEED"),
		" " + speedSty.Render(fmt.Sprintf("%d", int(info.Speed))) + " " + StyleLabel.Render("KM/H"),
		"",
		" " + renderProgressBar(info.Progress, innerW-2),
		" " + StyleValue.Render(fmt.Sprintf("%d%%", pct)),
		" " + StyleLabel.Render("ANIM"),
		" " + StyleRate.Render(fmt.Sprintf("x%.1f", info.Rate)),
	}

	if len(info.SpeedHistory) > 0 {
		lines = append(lines, "", " "+StyleLabel.Render("SPEED TRACE"))
		spark := renderSparkline(info.SpeedHistory, innerW-2)
		lines = append(lines, " "+lipgloss.NewStyle().Foreground(ColorCyan).Render(spark))
	}

	innerH := height - 2
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}
	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

func renderProgressBar(progress float64, width int) string {
	if width < 4 {
		width = 4
	}
	progress = math.Max(0, math.Min(1, progress))
	filled := int(progress * float64(width))

	return StyleProgressFill.Render(strings.Repeat("█", filled)) +
		StyleProgressEmpty.Render(strings.Repeat("░", width-filled))
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 || width < 1 {
		return ""
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	// Take last `width` values
	if len(values) > width {
		values = values[len(values)-width:]
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	rng := maxV - minV
	if rng < 1 {
		rng = 1
	}

	var sb strings.Builder
	for _, v := range values {
		idx := int((v - minV) / rng * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
