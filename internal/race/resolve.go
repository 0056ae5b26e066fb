package race

import (
	"math"
	"sort"

	"trackshift.klederson.com/internal/config"
	"trackshift.klederson.com/internal/palette"
	"trackshift.klederson.com/internal/provider"
	"trackshift.klederson.com/internal/telemetry"
)

// Standing is one driver's resolved position at a race instant.
type Standing struct {
	Driver        provider.Driver
	Color         palette.RGB
	X, Y          float64
	Speed         float64
	Lap           int
	Distance      float64
	TotalDistance float64
	Gap           float64 // metres behind the leader
	Time          float64 // time of the sample used
}

// Nearest returns the index of the sample closest in time to t. Ties go to
// the earlier sample. It returns -1 for an empty slice.
func Nearest(samples []telemetry.Sample, t float64) int {
	n := len(samples)
	if n == 0 {
		return -1
	}
	// first sample with Time >= t
	i := sort.Search(n, func(i int) bool { return samples[i].Time >= t })
	if i == n {
		return first(samples, n-1)
	}
	if i == 0 {
		return 0
	}
	if t-samples[i-1].Time <= samples[i].Time-t {
		return first(samples, i-1)
	}
	return i
}

// first walks back over samples sharing the time at i.
func first(samples []telemetry.Sample, i int) int {
	for i > 0 && samples[i-1].Time == samples[i].Time {
		i--
	}
	return i
}

// Resolve ranks every driver with a sample within the staleness threshold
// of raceTime by total race distance, furthest first.
func Resolve(timelines []*telemetry.Timeline, avgLapDistance, raceTime float64) []Standing {
	out := make([]Standing, 0, len(timelines))
	for _, tl := range timelines {
		i := Nearest(tl.Samples, raceTime)
		if i < 0 {
			continue
		}
		s := tl.Samples[i]
		if math.Abs(s.Time-raceTime) > config.StalenessThreshold {
			continue
		}
		out = append(out, Standing{
			Driver:        tl.Driver,
			Color:         tl.Color,
			X:             s.X,
			Y:             s.Y,
			Speed:         s.Speed,
			Lap:           s.Lap,
			Distance:      s.Distance,
			TotalDistance: float64(s.Lap-1)*avgLapDistance + s.Distance,
			Time:          s.Time,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalDistance > out[j].TotalDistance
	})
	if len(out) > 0 {
		leader := out[0].TotalDistance
		for i := range out {
			out[i].Gap = leader - out[i].TotalDistance
		}
	}
	return out
}
