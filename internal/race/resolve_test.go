package race

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackshift.klederson.com/internal/provider"
	"trackshift.klederson.com/internal/telemetry"
)

func samples(times ...float64) []telemetry.Sample {
	out := make([]telemetry.Sample, len(times))
	for i, t := range times {
		out[i] = telemetry.Sample{Time: t, Lap: 1}
	}
	return out
}

func TestNearest(t *testing.T) {
	s := samples(0, 1, 2, 2, 4, 10)

	tests := []struct {
		name string
		t    float64
		want int
	}{
		{"before start", -3, 0},
		{"exact", 1, 1},
		{"closer to lower", 1.2, 1},
		{"closer to upper", 1.8, 2},
		{"duplicate times pick earliest", 2, 2},
		{"tie between neighbours picks earlier", 3, 2},
		{"tie at midpoint", 7, 4},
		{"after end", 42, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nearest(s, tt.t))
		})
	}

	assert.Equal(t, -1, Nearest(nil, 3))
	assert.Equal(t, 0, Nearest(samples(5, 5, 5), 9))
}

func timeline(code string, ss ...telemetry.Sample) *telemetry.Timeline {
	return &telemetry.Timeline{Driver: provider.Driver{Code: code}, Samples: ss}
}

func TestResolveGap(t *testing.T) {
	a := timeline("A",
		telemetry.Sample{Time: 0, Lap: 1, Distance: 0},
		telemetry.Sample{Time: 50, Lap: 2, Distance: 10},
	)
	b := timeline("B",
		telemetry.Sample{Time: 0, Lap: 1, Distance: 0},
		telemetry.Sample{Time: 50, Lap: 1, Distance: 95},
	)

	got := Resolve([]*telemetry.Timeline{b, a}, 100, 50)
	require.Len(t, got, 2)

	assert.Equal(t, "A", got[0].Driver.Code)
	assert.InDelta(t, 110, got[0].TotalDistance, 1e-9)
	assert.Zero(t, got[0].Gap)

	assert.Equal(t, "B", got[1].Driver.Code)
	assert.InDelta(t, 95, got[1].TotalDistance, 1e-9)
	assert.InDelta(t, 15, got[1].Gap, 1e-9)
}

func TestResolveOmitsStaleDrivers(t *testing.T) {
	finished := timeline("FIN", telemetry.Sample{Time: 0, Lap: 1}, telemetry.Sample{Time: 10, Lap: 1, Distance: 50})
	running := timeline("RUN", telemetry.Sample{Time: 0, Lap: 1}, telemetry.Sample{Time: 20, Lap: 1, Distance: 80})
	empty := timeline("NIL")

	got := Resolve([]*telemetry.Timeline{finished, running, empty}, 100, 15)
	assert.Len(t, got, 2, "both within 5s at t=15")

	got = Resolve([]*telemetry.Timeline{finished, running, empty}, 100, 15.5)
	require.Len(t, got, 1)
	assert.Equal(t, "RUN", got[0].Driver.Code)

	for _, s := range got {
		assert.LessOrEqual(t, s.Time-15.5, 5.0)
	}

	assert.Empty(t, Resolve([]*telemetry.Timeline{finished}, 100, 100))
}

func TestResolveOrdering(t *testing.T) {
	var timelines []*telemetry.Timeline
	for i, d := range []float64{30, 80, 80, 10, 55} {
		timelines = append(timelines, timeline(string(rune('A'+i)),
			telemetry.Sample{Time: 0, Lap: 3, Distance: d}))
	}

	got := Resolve(timelines, 1000, 1)
	require.Len(t, got, 5)

	codes := make([]string, 0, len(got))
	for i, s := range got {
		codes = append(codes, s.Driver.Code)
		assert.GreaterOrEqual(t, s.Gap, 0.0)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].TotalDistance, s.TotalDistance)
		}
	}
	assert.Equal(t, []string{"B", "C", "E", "A", "D"}, codes)
	assert.Zero(t, got[0].Gap)
}
