package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackshift.klederson.com/internal/provider"
	"trackshift.klederson.com/internal/telemetry"
)

// circleLap runs n samples around a square track.
func circleLap(number int, duration float64, n int) provider.Lap {
	l := provider.Lap{Number: number, Duration: provider.Seconds(duration)}
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n)
		var x, y float64
		switch {
		case f < 0.25:
			x, y = f*4*1000, 0
		case f < 0.5:
			x, y = 1000, (f-0.25)*4*800
		case f < 0.75:
			x, y = 1000-(f-0.5)*4*1000, 800
		default:
			x, y = 0, 800-(f-0.75)*4*800
		}
		l.Position = append(l.Position, provider.PositionSample{X: x, Y: y})
		l.Car = append(l.Car, provider.CarSample{Speed: 150 + 100*f, Distance: 3600 * f})
	}
	return l
}

func testRace(t *testing.T) *telemetry.Race {
	t.Helper()
	ver := telemetry.BuildTimeline(provider.Driver{Number: 1, Code: "VER"}, []provider.Lap{
		circleLap(1, 80, 80), circleLap(2, 80, 80), circleLap(3, 80, 80),
	})
	ham := telemetry.BuildTimeline(provider.Driver{Number: 44, Code: "HAM"}, []provider.Lap{
		circleLap(1, 82, 82), circleLap(2, 82, 82),
	})
	r, err := telemetry.AssembleRace(provider.Session{EventName: "Monaco Grand Prix"}, []*telemetry.Timeline{ham, ver})
	require.NoError(t, err)
	return r
}

func key(s string) tea.KeyMsg {
	switch s {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestRaceModelKeys(t *testing.T) {
	m := NewRace(testRace(t))
	clock := m.Clock()
	assert.Equal(t, 5.0, clock.Rate())

	send(m, key("right"), key("right"))
	assert.InDelta(t, 20, clock.Elapsed(), 1e-9)

	send(m, key("left"), key("left"), key("left"))
	assert.Zero(t, clock.Elapsed(), "seek clamps at start")

	send(m, key("up"), key("up"))
	assert.Equal(t, 7.0, clock.Rate())
	send(m, key("down"))
	assert.Equal(t, 6.0, clock.Rate())

	send(m, key("space"))
	assert.True(t, clock.Paused())

	send(m, key("right"), key("r"))
	assert.Zero(t, clock.Elapsed())

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRaceModelTicks(t *testing.T) {
	m := NewRace(testRace(t))
	start := time.Date(2024, 5, 26, 13, 0, 0, 0, time.UTC)

	var model tea.Model = m
	model = send(model, TickMsg(start), TickMsg(start.Add(2*time.Second)))
	rm := model.(RaceModel)

	assert.InDelta(t, 10, rm.Clock().Elapsed(), 1e-9)
	standings := rm.Standings()
	require.Len(t, standings, 2)
	assert.Equal(t, "VER", standings[0].Driver.Code)
	assert.Zero(t, standings[0].Gap)
	assert.Greater(t, standings[1].Gap, 0.0)
}

func TestRaceModelDropsFinishedDrivers(t *testing.T) {
	m := NewRace(testRace(t))
	send(m, key("up"), key("up"))

	// HAM finishes at 164s, VER at 240s
	var model tea.Model = m
	for i := 0; i < 20; i++ {
		model = send(model, key("right"))
	}
	rm := model.(RaceModel)
	assert.InDelta(t, 200, rm.Clock().Elapsed(), 1e-9)
	require.Len(t, rm.Standings(), 1)
	assert.Equal(t, "VER", rm.Standings()[0].Driver.Code)
}

func TestRaceModelView(t *testing.T) {
	m := NewRace(testRace(t))
	assert.Contains(t, m.View(), "Initializing")

	model := send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := model.View()
	for _, want := range []string{"TRACKSHIFT", "RACE", "MONACO", "LEAD", "CONTROLS", "SKIP - Left/Right"} {
		assert.Contains(t, view, want)
	}
}

func testLapSet(t *testing.T) *telemetry.LapSet {
	t.Helper()
	noTime := circleLap(2, 0, 50)
	noTime.Duration = nil
	set, err := telemetry.BuildLapSet(provider.Driver{Number: 44, Code: "HAM"}, []provider.Lap{
		circleLap(1, 90, 100), noTime, circleLap(3, 88, 100),
	})
	require.NoError(t, err)
	return set
}

func TestLapModel(t *testing.T) {
	m := NewLap(provider.Session{EventName: "British Grand Prix"}, testLapSet(t))
	start := time.Date(2024, 7, 7, 15, 0, 0, 0, time.UTC)

	var model tea.Model = m
	model = send(model, TickMsg(start), TickMsg(start.Add(time.Second)))
	lm := model.(LapModel)

	// rate 2: 2s of the 10s lap playback
	assert.Equal(t, 20, lm.Frame())
	assert.Equal(t, 1, lm.Lap().Number)
	assert.Len(t, lm.trail(), 20)

	model = send(model, key("left"))
	lm = model.(LapModel)
	assert.Equal(t, 3, lm.Lap().Number, "previous wraps to the last lap")
	assert.Zero(t, lm.Frame())

	model = send(model, key("right"), key("right"))
	lm = model.(LapModel)
	assert.Equal(t, 2, lm.Lap().Number)
	assert.Nil(t, lm.Lap().Duration)

	send(model, key("up"), key("up"), key("down"))
	assert.Equal(t, 2.5, lm.Clock().Rate())
}

func TestLapModelView(t *testing.T) {
	m := NewLap(provider.Session{EventName: "British Grand Prix"}, testLapSet(t))
	model := send(m, tea.WindowSizeMsg{Width: 120, Height: 40}, key("space"))

	view := model.View()
	for _, want := range []string{"HAM", "BRITISH", "1/3", "00:01:30", "KM/H", "ANIM", "LAP - Left/Right"} {
		assert.Contains(t, view, want)
	}
}

func TestSpeedRing(t *testing.T) {
	r := NewSpeedRing(3)
	assert.Nil(t, r.Values())

	for _, v := range []float64{1, 2, 3, 4} {
		r.Push(v)
	}
	assert.Equal(t, []float64{2, 3, 4}, r.Values())
	assert.Equal(t, 3, r.Len())

	r.Reset()
	assert.Zero(t, r.Len())
}
