package openf1

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"

	"trackshift.klederson.com/internal/provider"
)

// ErrNoLapStart marks laps the API reports without a start timestamp.
var ErrNoLapStart = errors.New("lap start time unknown")

// lapWindow is the half-open interval [start, end) covered by one lap.
// A zero end means open ended.
type lapWindow struct {
	start time.Time
	end   time.Time
	err   error
}

// lapWindows bounds each lap by its own start and the next lap's start,
// falling back to start + duration for the last lap.
func lapWindows(laps []lap) []lapWindow {
	out := make([]lapWindow, len(laps))
	for i, l := range laps {
		if l.DateStart == nil {
			out[i].err = ErrNoLapStart
			continue
		}
		start, err := parseDate(*l.DateStart)
		if err != nil {
			out[i].err = errors.Wrap(err, "parsing lap start")
			continue
		}
		out[i].start = start
		if l.LapDuration != nil && *l.LapDuration > 0 {
			out[i].end = start.Add(time.Duration(*l.LapDuration * float64(time.Second)))
		}
		if i+1 < len(laps) && laps[i+1].DateStart != nil {
			if next, err := parseDate(*laps[i+1].DateStart); err == nil && next.After(start) {
				out[i].end = next
			}
		}
	}
	return out
}

// within returns the sub-slice of series stamped inside w.
func within[T any](series []stamped[T], w lapWindow) []stamped[T] {
	from := sort.Search(len(series), func(i int) bool { return !series[i].at.Before(w.start) })
	to := len(series)
	if !w.end.IsZero() {
		to = sort.Search(len(series), func(i int) bool { return !series[i].at.Before(w.end) })
	}
	if to < from {
		return nil
	}
	return series[from:to]
}

func slicePositions(series []stamped[location], w lapWindow) []provider.PositionSample {
	in := within(series, w)
	out := make([]provider.PositionSample, len(in))
	for i, s := range in {
		out[i] = provider.PositionSample{X: s.v.X, Y: s.v.Y}
	}
	return out
}

func sliceCar(series []stamped[carData], w lapWindow) []stamped[carData] {
	return within(series, w)
}

// integrate derives the in-lap distance from speed using the trapezoid rule
// over the sample timestamps. Speeds are km/h, distances metres.
func integrate(series []stamped[carData]) []provider.CarSample {
	out := make([]provider.CarSample, len(series))
	dist := 0.0
	for i, s := range series {
		if i > 0 {
			dt := s.at.Sub(series[i-1].at).Seconds()
			avg := (s.v.Speed + series[i-1].v.Speed) / 2 / 3.6
			if step := avg * dt; !math.IsNaN(step) && step > 0 {
				dist += step
			}
		}
		out[i] = provider.CarSample{Speed: s.v.Speed, Distance: dist}
	}
	return out
}
