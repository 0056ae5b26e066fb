package telemetry

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"trackshift.klederson.com/internal/config"
	"trackshift.klederson.com/internal/geometry"
	"trackshift.klederson.com/internal/log"
	"trackshift.klederson.com/internal/provider"
)

// ErrNoRaceData is returned when no driver has a single usable lap.
var ErrNoRaceData = errors.New("no driver has usable telemetry")

// Viewport is the native canvas every track is fitted to.
var Viewport = geometry.Viewport{
	Width:  config.CanvasWidth,
	Height: config.CanvasHeight,
	Margin: config.CanvasMargin,
}

// Race is everything the race replay needs, computed once before the frame
// loop starts and read-only afterwards.
type Race struct {
	Session        provider.Session
	Timelines      []*Timeline
	Excluded       []*Timeline
	AvgLapDistance float64
	MaxTime        float64
	Params         geometry.Params
}

// AssembleRace drops drivers without samples, derives the average lap
// distance and race length, and fits the track to the canvas using the
// coordinates of every remaining driver.
func AssembleRace(session provider.Session, timelines []*Timeline) (*Race, error) {
	kept, excluded := lo.FilterReject(timelines, func(t *Timeline, _ int) bool {
		return !t.Empty()
	})
	for _, t := range excluded {
		log.Logger.Warn("driver excluded, no usable laps",
			zap.String("driver", t.Driver.Code),
			zap.Int("laps", len(t.Outcomes)))
	}
	if len(kept) == 0 {
		return nil, ErrNoRaceData
	}

	lengths := lo.FlatMap(kept, func(t *Timeline, _ int) []float64 {
		return t.LapLengths
	})

	params, err := geometry.Fit(points(kept), Viewport)
	if err != nil {
		return nil, errors.Wrap(err, "fitting track")
	}

	return &Race{
		Session:        session,
		Timelines:      kept,
		Excluded:       excluded,
		AvgLapDistance: lo.Mean(lengths),
		MaxTime: lo.MaxBy(kept, func(a, b *Timeline) bool {
			return a.TotalTime > b.TotalTime
		}).TotalTime,
		Params: params,
	}, nil
}

func points(timelines []*Timeline) []geometry.Point {
	var out []geometry.Point
	for _, t := range timelines {
		for _, s := range t.Samples {
			out = append(out, geometry.Point{X: s.X, Y: s.Y})
		}
	}
	return out
}
