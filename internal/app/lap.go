package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trackshift.klederson.com/internal/config"
	"trackshift.klederson.com/internal/palette"
	"trackshift.klederson.com/internal/provider"
	"trackshift.klederson.com/internal/replay"
	"trackshift.klederson.com/internal/telemetry"
	"trackshift.klederson.com/internal/trackmap"
	"trackshift.klederson.com/internal/ui"
)

const speedHistoryLen = 120

type lapShared struct {
	clock  *replay.LapClock
	blink  *trackmap.Blinker
	speeds *SpeedRing
	last   time.Time
}

// LapModel is the Bubble Tea model of the single driver lap replay.
type LapModel struct {
	width  int
	height int

	session provider.Session
	set     *telemetry.LapSet
	shared  *lapShared

	// Sample index of the current frame
	frame int
}

// NewLap creates a lap replay over set, which must hold at least one lap.
func NewLap(session provider.Session, set *telemetry.LapSet) LapModel {
	return LapModel{
		session: session,
		set:     set,
		shared: &lapShared{
			clock:  replay.NewLapClock(len(set.Laps)),
			blink:  trackmap.NewBlinker(config.PauseBlink, time.Now()),
			speeds: NewSpeedRing(speedHistoryLen),
		},
	}
}

func (m LapModel) Init() tea.Cmd {
	return tickCmd()
}

func (m LapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m *LapModel) advance(now time.Time) {
	s := m.shared
	if !s.last.IsZero() {
		s.clock.Advance(now.Sub(s.last))
	}
	s.last = now
	s.blink.Update(now)

	lap := m.Lap()
	m.frame = s.clock.FrameIndex(len(lap.Samples))
	if !s.clock.Paused() {
		s.speeds.Push(lap.Samples[m.frame].Speed)
	}
}

func (m LapModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.shared

	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case " ", "space":
		s.clock.TogglePause()

	case "left":
		s.clock.Prev()
		s.speeds.Reset()

	case "right":
		s.clock.Next()
		s.speeds.Reset()

	case "up":
		s.clock.Faster()

	case "down":
		s.clock.Slower()

	case "r", "R":
		s.clock.Reset()
		s.speeds.Reset()
	}

	m.frame = s.clock.FrameIndex(len(m.Lap().Samples))
	return m, nil
}

// Lap returns the lap being replayed.
func (m LapModel) Lap() telemetry.ReplayLap {
	return m.set.Laps[m.shared.clock.Lap()]
}

// Frame returns the sample index of the current frame.
func (m LapModel) Frame() int {
	return m.frame
}

// Clock exposes the replay clock.
func (m LapModel) Clock() *replay.LapClock {
	return m.shared.clock
}

// trail returns up to config.TrailLength samples before the current one,
// coloured by speed.
func (m LapModel) trail() []trackmap.TrailPoint {
	lap := m.Lap()
	start := max(0, m.frame-config.TrailLength)
	out := make([]trackmap.TrailPoint, 0, m.frame-start)
	for _, s := range lap.Samples[start:m.frame] {
		out = append(out, trackmap.TrailPoint{
			X:     s.X,
			Y:     s.Y,
			Color: palette.SpeedGradient.At(s.Speed, lap.MinSpeed, lap.MaxSpeed),
		})
	}
	return out
}

func (m LapModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}
	clock := m.shared.clock
	lap := m.Lap()
	cur := lap.Samples[m.frame]
	carColor := palette.SpeedGradient.At(cur.Speed, lap.MinSpeed, lap.MaxSpeed)

	bodyH := max(m.height-2, 8)
	mapW, sideW := ui.Split(m.width)

	canvas := trackmap.NewCanvas(max(mapW-2, 1), max(bodyH-4, 1), m.set.Params)
	canvas.DrawOutline(m.set.Outline, config.OutlineStride)
	canvas.DrawTrail(m.trail())
	canvas.DrawCars([]trackmap.Car{{X: cur.X, Y: cur.Y, Label: m.set.Driver.Code, Color: carColor}})
	showPause := clock.Paused() && m.shared.blink.Visible()
	legend := trackmap.RenderSpeedLegend(mapW-2, palette.SpeedGradient)
	mapPanel := ui.RenderMapPanel(mapW, bodyH, canvas.Render(true), legend, showPause)

	controls := ui.RenderControls(ui.LapKeys)
	sidePanel := ui.RenderLapPanel(ui.LapInfo{
		Driver:       m.set.Driver.Code,
		Event:        m.session.ShortName(),
		Lap:          lap.Number,
		Laps:         len(m.set.Laps),
		Duration:     lap.Duration,
		Speed:        cur.Speed,
		SpeedColor:   carColor,
		Progress:     clock.Progress(len(lap.Samples)),
		Rate:         clock.Rate(),
		SpeedHistory: m.shared.speeds.Values(),
	}, sideW, bodyH-lipgloss.Height(controls))
	side := lipgloss.JoinVertical(lipgloss.Left, sidePanel, controls)

	menuBar := ui.RenderMenuBar(m.width, "LAP REPLAY "+m.set.Driver.Code, m.session.DisplayName(), clock.Paused())
	statusBar := ui.RenderStatusBar(m.width, clock.Paused(), clock.Rate(),
		fmt.Sprintf("lap %d/%d  sample %d/%d", clock.Lap()+1, len(m.set.Laps), m.frame+1, len(lap.Samples)))

	return ui.ComposeLayout(menuBar, mapPanel, side, statusBar)
}
