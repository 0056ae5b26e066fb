package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trackshift.klederson.com/internal/config"
	"trackshift.klederson.com/internal/geometry"
	"trackshift.klederson.com/internal/race"
	"trackshift.klederson.com/internal/replay"
	"trackshift.klederson.com/internal/telemetry"
	"trackshift.klederson.com/internal/trackmap"
	"trackshift.klederson.com/internal/ui"
)

// raceShared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type raceShared struct {
	clock *replay.Clock
	blink *trackmap.Blinker
	last  time.Time
}

// RaceModel is the Bubble Tea model of the multi-driver race replay.
type RaceModel struct {
	width  int
	height int

	data    *telemetry.Race
	outline []geometry.Point
	shared  *raceShared

	// Resolved on every tick
	standings []race.Standing
}

// NewRace creates a race replay over data, which must come from
// telemetry.AssembleRace.
func NewRace(data *telemetry.Race) RaceModel {
	m := RaceModel{
		data:    data,
		outline: lapOutline(data.Timelines[0]),
		shared: &raceShared{
			clock: replay.NewClock(data.MaxTime),
			blink: trackmap.NewBlinker(config.PauseBlink, time.Now()),
		},
	}
	m.resolve()
	return m
}

// lapOutline returns the samples of the first lap of t, which trace the
// circuit once.
func lapOutline(t *telemetry.Timeline) []geometry.Point {
	var out []geometry.Point
	for _, s := range t.Samples {
		if s.Lap != t.Samples[0].Lap {
			break
		}
		out = append(out, geometry.Point{X: s.X, Y: s.Y})
	}
	return out
}

func (m RaceModel) Init() tea.Cmd {
	return tickCmd()
}

func (m RaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.advance(time.Time(msg))
		return m, tickCmd()
	}

	return m, nil
}

func (m *RaceModel) advance(now time.Time) {
	s := m.shared
	if !s.last.IsZero() {
		s.clock.Advance(now.Sub(s.last))
	}
	s.last = now
	s.blink.Update(now)
	m.resolve()
}

func (m *RaceModel) resolve() {
	m.standings = race.Resolve(m.data.Timelines, m.data.AvgLapDistance, m.shared.clock.Elapsed())
}

func (m RaceModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	clock := m.shared.clock

	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case " ", "space":
		clock.TogglePause()

	case "left":
		clock.Seek(-config.RaceSeekStep)

	case "right":
		clock.Seek(config.RaceSeekStep)

	case "up":
		clock.Faster()

	case "down":
		clock.Slower()

	case "r", "R":
		clock.Reset()
	}

	m.resolve()
	return m, nil
}

// Standings returns the ranking of the last frame.
func (m RaceModel) Standings() []race.Standing {
	return m.standings
}

// Clock exposes the replay clock.
func (m RaceModel) Clock() *replay.Clock {
	return m.shared.clock
}

func (m RaceModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}
	clock := m.shared.clock
	event := m.data.Session.ShortName()

	bodyH := max(m.height-2, 8)
	mapW, sideW := ui.Split(m.width)

	canvas := trackmap.NewCanvas(max(mapW-2, 1), max(bodyH-4, 1), m.data.Params)
	canvas.DrawOutline(m.outline, 1)
	canvas.DrawCars(m.cars())
	showPause := clock.Paused() && m.shared.blink.Visible()
	mapPanel := ui.RenderMapPanel(mapW, bodyH, canvas.Render(true), "", showPause)

	controls := ui.RenderControls(ui.RaceKeys)
	sidePanel := ui.RenderRacePanel(ui.RaceInfo{
		Event:     event,
		Time:      clock.Elapsed(),
		Rate:      clock.Rate(),
		Standings: m.standings,
		Drivers:   len(m.data.Timelines),
	}, sideW, bodyH-lipgloss.Height(controls))
	side := lipgloss.JoinVertical(lipgloss.Left, sidePanel, controls)

	menuBar := ui.RenderMenuBar(m.width, "RACE REPLAY", m.data.Session.DisplayName(), clock.Paused())
	statusBar := ui.RenderStatusBar(m.width, clock.Paused(), clock.Rate(),
		fmt.Sprintf("%s / %s  cars %d/%d  avg lap %.0fm",
			ui.FormatRaceTime(clock.Elapsed()), ui.FormatRaceTime(clock.MaxTime()),
			len(m.standings), len(m.data.Timelines), m.data.AvgLapDistance))

	return ui.ComposeLayout(menuBar, mapPanel, side, statusBar)
}

// cars lists the resolved drivers, leader first so it gets first pick of
// label space.
func (m RaceModel) cars() []trackmap.Car {
	out := make([]trackmap.Car, len(m.standings))
	for i, s := range m.standings {
		out[i] = trackmap.Car{X: s.X, Y: s.Y, Label: s.Driver.Code, Color: s.Color}
	}
	return out
}
