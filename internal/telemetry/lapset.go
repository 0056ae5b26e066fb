package telemetry

import (
	"math"

	"github.com/pkg/errors"

	"trackshift.klederson.com/internal/geometry"
	"trackshift.klederson.com/internal/provider"
)

// ErrNoLaps is returned when a driver has no lap with samples.
var ErrNoLaps = errors.New("driver has no laps with telemetry")

// ReplayLap is one lap of the single driver replay. Sample times are
// lap-elapsed seconds, or zero when the lap time is unknown.
type ReplayLap struct {
	Number   int
	Duration *float64
	Samples  []Sample
	MinSpeed float64
	MaxSpeed float64
}

// LapSet holds every replayable lap of one driver plus the shared track
// outline and normalization.
type LapSet struct {
	Driver   provider.Driver
	Laps     []ReplayLap
	Outcomes []LapOutcome
	Outline  []geometry.Point
	Params   geometry.Params
}

// BuildLapSet keeps laps whose telemetry loaded and joined to at least one
// sample. Unlike race timelines, a missing lap time does not drop the lap.
func BuildLapSet(d provider.Driver, laps []provider.Lap) (*LapSet, error) {
	set := &LapSet{Driver: d}

	for i, lap := range laps {
		lap.Number = lapNumber(lap, i)
		outcome := LapOutcome{Lap: lap.Number}

		if lap.Err != nil {
			outcome.Reason = SkipTelemetryError
			outcome.Err = lap.Err
			set.Outcomes = append(set.Outcomes, outcome)
			continue
		}
		samples := JoinLap(lap)
		if len(samples) == 0 {
			outcome.Reason = SkipNoSamples
			set.Outcomes = append(set.Outcomes, outcome)
			continue
		}

		rl := ReplayLap{
			Number:   lap.Number,
			Samples:  samples,
			MinSpeed: math.Inf(1),
			MaxSpeed: math.Inf(-1),
		}
		duration, known := validDuration(lap.Duration)
		if known {
			rl.Duration = provider.Seconds(duration)
			outcome.Duration = duration
		}
		for j := range samples {
			if known {
				samples[j].Time = float64(j) * duration / float64(len(samples))
			}
			rl.MinSpeed = math.Min(rl.MinSpeed, samples[j].Speed)
			rl.MaxSpeed = math.Max(rl.MaxSpeed, samples[j].Speed)
			outcome.Length = math.Max(outcome.Length, samples[j].Distance)
			set.Outline = append(set.Outline, geometry.Point{X: samples[j].X, Y: samples[j].Y})
		}
		outcome.Samples = len(samples)

		set.Laps = append(set.Laps, rl)
		set.Outcomes = append(set.Outcomes, outcome)
	}

	if len(set.Laps) == 0 {
		return nil, ErrNoLaps
	}

	params, err := geometry.Fit(set.Outline, Viewport)
	if err != nil {
		return nil, errors.Wrap(err, "fitting track")
	}
	set.Params = params
	return set, nil
}
