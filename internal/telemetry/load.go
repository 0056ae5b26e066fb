package telemetry

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"trackshift.klederson.com/internal/log"
	"trackshift.klederson.com/internal/provider"
)

// LoadRace fetches every requested driver and assembles the race.
func LoadRace(ctx context.Context, p provider.Provider, codes []string) (*Race, error) {
	session, err := p.Session(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading session")
	}
	log.Logger.Info("session loaded",
		zap.String("event", session.DisplayName()),
		zap.String("session", session.Name))

	drivers, err := p.Drivers(ctx, codes)
	if err != nil {
		return nil, errors.Wrap(err, "loading drivers")
	}

	timelines := make([]*Timeline, 0, len(drivers))
	for _, d := range drivers {
		t, err := LoadTimeline(ctx, p, d)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			log.Logger.Warn("failed to load driver",
				zap.String("driver", d.Code),
				zap.Error(err))
			t = failedTimeline(d, err)
		}
		timelines = append(timelines, t)
	}

	race, err := AssembleRace(session, timelines)
	if err != nil {
		return nil, err
	}
	log.Logger.Info("race assembled",
		zap.Int("drivers", len(race.Timelines)),
		zap.Float64("avgLapDistance", race.AvgLapDistance),
		zap.Float64("duration", race.MaxTime))
	return race, nil
}

// LoadTimeline fetches one driver's laps and builds the timeline, logging
// every skipped lap.
func LoadTimeline(ctx context.Context, p provider.Provider, d provider.Driver) (*Timeline, error) {
	laps, err := p.Laps(ctx, d)
	if err != nil {
		return nil, errors.Wrapf(err, "loading laps of %s", d.Code)
	}
	t := BuildTimeline(d, laps)
	logOutcomes(d, t.Outcomes)
	log.Logger.Info("driver loaded",
		zap.String("driver", d.Code),
		zap.Int("laps", t.Included()),
		zap.Int("points", len(t.Samples)),
		zap.Float64("seconds", t.TotalTime))
	return t, nil
}

// failedTimeline is the empty timeline of a driver whose laps could not be
// fetched. AssembleRace excludes it like any other driver without samples.
func failedTimeline(d provider.Driver, err error) *Timeline {
	t := BuildTimeline(d, nil)
	t.Outcomes = []LapOutcome{{Reason: SkipTelemetryError, Err: err}}
	return t
}

// LoadLapSet fetches the laps of a single driver for the lap replay.
func LoadLapSet(ctx context.Context, p provider.Provider, code string) (provider.Session, *LapSet, error) {
	session, err := p.Session(ctx)
	if err != nil {
		return provider.Session{}, nil, errors.Wrap(err, "loading session")
	}
	drivers, err := p.Drivers(ctx, []string{code})
	if err != nil {
		return session, nil, errors.Wrap(err, "loading drivers")
	}
	if len(drivers) == 0 {
		return session, nil, errors.Errorf("driver %s not in session", code)
	}

	laps, err := p.Laps(ctx, drivers[0])
	if err != nil {
		return session, nil, errors.Wrapf(err, "loading laps of %s", code)
	}
	set, err := BuildLapSet(drivers[0], laps)
	if err != nil {
		return session, nil, errors.Wrapf(err, "driver %s", code)
	}
	logOutcomes(drivers[0], set.Outcomes)
	log.Logger.Info("laps loaded",
		zap.String("driver", code),
		zap.Int("laps", len(set.Laps)),
		zap.Int("points", len(set.Outline)))
	return session, set, nil
}

func logOutcomes(d provider.Driver, outcomes []LapOutcome) {
	for _, o := range outcomes {
		if !o.Skipped() {
			continue
		}
		fields := []zap.Field{
			zap.String("driver", d.Code),
			zap.Int("lap", o.Lap),
			zap.Stringer("reason", o.Reason),
		}
		if o.Err != nil {
			fields = append(fields, zap.Error(o.Err))
		}
		log.Logger.Debug("lap skipped", fields...)
	}
}
