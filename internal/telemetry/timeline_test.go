package telemetry

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackshift.klederson.com/internal/palette"
	"trackshift.klederson.com/internal/provider"
)

// lap builds a lap with n samples running along a diagonal.
func lap(number int, duration *float64, n int, length float64) provider.Lap {
	l := provider.Lap{Number: number, Duration: duration}
	for i := 0; i < n; i++ {
		f := float64(i) / float64(max(n-1, 1))
		l.Position = append(l.Position, provider.PositionSample{X: 100 * f, Y: 50 * f})
		l.Car = append(l.Car, provider.CarSample{Speed: 100 + 200*f, Distance: length * f})
	}
	return l
}

var ham = provider.Driver{Number: 44, Code: "HAM"}

func TestBuildTimelineTotalTime(t *testing.T) {
	laps := []provider.Lap{
		lap(1, provider.Seconds(90), 10, 5000),
		lap(2, provider.Seconds(85.5), 12, 5010),
		lap(3, nil, 10, 5000),
		lap(4, provider.Seconds(88), 8, 4990),
	}
	tl := BuildTimeline(ham, laps)

	assert.InDelta(t, 90+85.5+88, tl.TotalTime, 1e-9)
	assert.Equal(t, 3, tl.Included())
	assert.Len(t, tl.Samples, 30)
	assert.Equal(t, []float64{5000, 5010, 4990}, tl.LapLengths)
	assert.Equal(t, palette.ColorFor("HAM", ""), tl.Color)

	for i := 1; i < len(tl.Samples); i++ {
		assert.LessOrEqual(t, tl.Samples[i-1].Time, tl.Samples[i].Time, "sample %d", i)
	}
}

func TestBuildTimelineSampleTimes(t *testing.T) {
	tl := BuildTimeline(ham, []provider.Lap{
		lap(1, provider.Seconds(10), 4, 100),
		lap(2, provider.Seconds(20), 4, 100),
	})
	require.Len(t, tl.Samples, 8)

	times := make([]float64, 0, len(tl.Samples))
	for _, s := range tl.Samples {
		times = append(times, s.Time)
	}
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10, 15, 20, 25}, times)
	assert.Equal(t, 1, tl.Samples[3].Lap)
	assert.Equal(t, 2, tl.Samples[4].Lap)
}

func TestBuildTimelineSkipReasons(t *testing.T) {
	broken := lap(2, provider.Seconds(90), 10, 5000)
	broken.Err = errors.New("timeout")

	empty := lap(5, provider.Seconds(90), 10, 5000)
	empty.Car = nil

	laps := []provider.Lap{
		lap(1, provider.Seconds(90), 10, 5000),
		broken,
		lap(3, nil, 10, 5000),
		lap(4, provider.Seconds(math.NaN()), 10, 5000),
		empty,
		lap(6, provider.Seconds(0), 10, 5000),
	}
	tl := BuildTimeline(ham, laps)

	reasons := make([]SkipReason, 0, len(tl.Outcomes))
	for _, o := range tl.Outcomes {
		reasons = append(reasons, o.Reason)
	}
	assert.Equal(t, []SkipReason{
		Included,
		SkipTelemetryError,
		SkipMissingDuration,
		SkipMissingDuration,
		SkipNoSamples,
		SkipMissingDuration,
	}, reasons)
	assert.ErrorContains(t, tl.Outcomes[1].Err, "timeout")
	assert.InDelta(t, 90, tl.TotalTime, 1e-9)
}

func TestJoinLapInnerJoin(t *testing.T) {
	l := lap(1, provider.Seconds(60), 6, 300)
	l.Car = l.Car[:4]

	samples := JoinLap(l)
	require.Len(t, samples, 4)
	assert.Equal(t, l.Position[3].X, samples[3].X)
	assert.Equal(t, l.Car[3].Distance, samples[3].Distance)
}

func TestBuildTimelineNumbersLapsWithoutNumber(t *testing.T) {
	tl := BuildTimeline(ham, []provider.Lap{
		lap(0, provider.Seconds(10), 2, 10),
		lap(0, provider.Seconds(10), 2, 10),
	})
	assert.Equal(t, 1, tl.Samples[0].Lap)
	assert.Equal(t, 2, tl.Samples[2].Lap)
}

func TestSkipReasonString(t *testing.T) {
	assert.Equal(t, "included", Included.String())
	assert.Equal(t, "missing duration", SkipMissingDuration.String())
	assert.Equal(t, "unknown", SkipReason(42).String())
}
