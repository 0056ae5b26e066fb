package telemetry

import (
	"math"

	"trackshift.klederson.com/internal/palette"
	"trackshift.klederson.com/internal/provider"
)

// Sample is one point of a driver's replay timeline.
type Sample struct {
	Time     float64 // seconds
	X, Y     float64
	Speed    float64 // km/h
	Lap      int     // 1-based
	Distance float64 // metres since the start of Lap
}

// SkipReason tells why a lap did not make it into a timeline.
type SkipReason int

const (
	Included SkipReason = iota
	SkipTelemetryError
	SkipMissingDuration
	SkipNoSamples
)

func (r SkipReason) String() string {
	switch r {
	case Included:
		return "included"
	case SkipTelemetryError:
		return "telemetry error"
	case SkipMissingDuration:
		return "missing duration"
	case SkipNoSamples:
		return "no samples"
	default:
		return "unknown"
	}
}

// LapOutcome records what happened to one provider lap.
type LapOutcome struct {
	Lap      int
	Reason   SkipReason
	Samples  int
	Duration float64
	Length   float64
	Err      error
}

// Skipped reports whether the lap was left out.
func (o LapOutcome) Skipped() bool {
	return o.Reason != Included
}

// Timeline is the time-ordered sample sequence of one driver.
type Timeline struct {
	Driver     provider.Driver
	Color      palette.RGB
	Samples    []Sample
	TotalTime  float64
	LapLengths []float64
	Outcomes   []LapOutcome
}

// Empty reports whether no lap was included.
func (t *Timeline) Empty() bool {
	return len(t.Samples) == 0
}

// Included returns the number of laps that contributed samples.
func (t *Timeline) Included() int {
	return len(t.LapLengths)
}

// JoinLap pairs position and car samples by index. Samples present in only
// one series are dropped.
func JoinLap(lap provider.Lap) []Sample {
	n := min(len(lap.Position), len(lap.Car))
	if n == 0 {
		return nil
	}
	out := make([]Sample, n)
	for i := 0; i < n; i++ {
		out[i] = Sample{
			X:        lap.Position[i].X,
			Y:        lap.Position[i].Y,
			Speed:    lap.Car[i].Speed,
			Lap:      lap.Number,
			Distance: lap.Car[i].Distance,
		}
	}
	return out
}

func validDuration(d *float64) (float64, bool) {
	if d == nil {
		return 0, false
	}
	v := *d
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

func lapNumber(lap provider.Lap, index int) int {
	if lap.Number < 1 {
		return index + 1
	}
	return lap.Number
}

// BuildTimeline concatenates the driver's laps in provider order. Sample
// times are spread evenly over each lap's duration, offset by the durations
// of the laps included before it.
func BuildTimeline(d provider.Driver, laps []provider.Lap) *Timeline {
	t := &Timeline{
		Driver: d,
		Color:  palette.ColorFor(d.Code, d.TeamColour),
	}

	cumulative := 0.0
	for i, lap := range laps {
		lap.Number = lapNumber(lap, i)
		outcome := LapOutcome{Lap: lap.Number}

		if lap.Err != nil {
			outcome.Reason = SkipTelemetryError
			outcome.Err = lap.Err
			t.Outcomes = append(t.Outcomes, outcome)
			continue
		}

		duration, ok := validDuration(lap.Duration)
		if !ok {
			outcome.Reason = SkipMissingDuration
			t.Outcomes = append(t.Outcomes, outcome)
			continue
		}
		outcome.Duration = duration

		samples := JoinLap(lap)
		if len(samples) == 0 {
			outcome.Reason = SkipNoSamples
			t.Outcomes = append(t.Outcomes, outcome)
			continue
		}

		count := float64(len(samples))
		length := 0.0
		for j := range samples {
			samples[j].Time = cumulative + float64(j)*duration/count
			length = math.Max(length, samples[j].Distance)
		}

		t.Samples = append(t.Samples, samples...)
		t.LapLengths = append(t.LapLengths, length)
		cumulative += duration

		outcome.Samples = len(samples)
		outcome.Length = length
		t.Outcomes = append(t.Outcomes, outcome)
	}
	t.TotalTime = cumulative

	return t
}
