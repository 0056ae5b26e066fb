package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trackshift.klederson.com/internal/race"
)

// FormatGap renders a distance gap to the leader: "LEAD" for the leader,
// metres below one kilometre, kilometres above.
func FormatGap(position int, gap float64) string {
	if position == 0 {
		return "LEAD"
	}
	if gap < 1000 {
		return fmt.Sprintf("+%.0fm", gap)
	}
	return fmt.Sprintf("+%.1fk", gap/1000)
}

// FormatRaceTime renders seconds as MM:SS.
func FormatRaceTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// RaceInfo is what the race side panel shows.
type RaceInfo struct {
	Event     string
	Time      float64
	Rate      float64
	Standings []race.Standing
	Drivers   int
}

// RenderRacePanel renders the race side panel: title, event, race time,
// replay rate and the leaderboard. The leaderboard fills the remaining rows.
func RenderRacePanel(info RaceInfo, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2

	sep := StyleSeparator.Render(strings.Repeat("-", innerW))
	lines := []string{
		StylePanelTitle.Render("RACE"),
		StyleEvent.Render(info.Event),
		sep,
		" " + StyleLabel.Render("TIME"),
		" " + StyleValue.Render(FormatRaceTime(info.Time)),
		" " + StyleLabel.Render("SPEED"),
		" " + StyleRate.Render(fmt.Sprintf("x%.1f", info.Rate)),
		sep,
		" " + StyleLabel.Render(fmt.Sprintf("LEADERBOARD %d/%d", len(info.Standings), info.Drivers)),
	}

	space := innerH - len(lines)
	for i, s := range info.Standings {
		if i >= space {
			break
		}
		lines = append(lines, renderStanding(i, s, innerW))
	}
	if len(info.Standings) == 0 && space > 0 {
		lines = append(lines, StyleHelp.Render(" no cars on track"))
	}

	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

func renderStanding(i int, s race.Standing, maxW int) string {
	pos := StyleLabel.Render(fmt.Sprintf("%2d", i+1))
	dot := lipgloss.NewStyle().Foreground(s.Color.Color()).Render("●")
	code := StyleValue.Render(fmt.Sprintf("%-3s", s.Driver.Code))
	lap := StyleLabel.Render(fmt.Sprintf("L%-2d", s.Lap))

	gapSty := StyleGap
	if i == 0 {
		gapSty = StyleLead
	}
	gap := gapSty.Render(fmt.Sprintf("%7s", FormatGap(i, s.Gap)))

	line := fmt.Sprintf(" %s %s %s %s %s", pos, dot, code, lap, gap)
	if lipgloss.Width(line) > maxW {
		line = fmt.Sprintf(" %s %s %s %s", pos, dot, code, gap)
	}
	return line
}
