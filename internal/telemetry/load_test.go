package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackshift.klederson.com/internal/provider"
)

type stubProvider struct {
	session provider.Session
	drivers []provider.Driver
	laps    map[string][]provider.Lap
	lapErrs map[string]error
	err     error
}

func (s *stubProvider) Session(context.Context) (provider.Session, error) {
	return s.session, s.err
}

func (s *stubProvider) Drivers(_ context.Context, codes []string) ([]provider.Driver, error) {
	var out []provider.Driver
	for _, c := range codes {
		for _, d := range s.drivers {
			if d.Code == c {
				out = append(out, d)
			}
		}
	}
	return out, nil
}

func (s *stubProvider) Laps(_ context.Context, d provider.Driver) ([]provider.Lap, error) {
	if err := s.lapErrs[d.Code]; err != nil {
		return nil, err
	}
	return s.laps[d.Code], nil
}

func newStub() *stubProvider {
	return &stubProvider{
		session: provider.Session{Name: "Race", EventName: "Italian Grand Prix"},
		drivers: []provider.Driver{ham, {Number: 1, Code: "VER"}},
		laps: map[string][]provider.Lap{
			"HAM": {lap(1, provider.Seconds(80), 10, 100)},
			"VER": {lap(1, nil, 10, 100)},
		},
	}
}

func TestLoadRace(t *testing.T) {
	race, err := LoadRace(context.Background(), newStub(), []string{"HAM", "VER", "XXX"})
	require.NoError(t, err)

	assert.Equal(t, "Italian Grand Prix", race.Session.DisplayName())
	require.Len(t, race.Timelines, 1)
	assert.Equal(t, "HAM", race.Timelines[0].Driver.Code)
	assert.Len(t, race.Excluded, 1)
}

func TestLoadRaceExcludesDriverWhoseLapsFail(t *testing.T) {
	stub := newStub()
	stub.laps["VER"] = stub.laps["HAM"]
	stub.lapErrs = map[string]error{"VER": context.DeadlineExceeded}

	race, err := LoadRace(context.Background(), stub, []string{"HAM", "VER"})
	require.NoError(t, err)

	require.Len(t, race.Timelines, 1)
	assert.Equal(t, "HAM", race.Timelines[0].Driver.Code)
	require.Len(t, race.Excluded, 1)
	excluded := race.Excluded[0]
	assert.Equal(t, "VER", excluded.Driver.Code)
	require.Len(t, excluded.Outcomes, 1)
	assert.Equal(t, SkipTelemetryError, excluded.Outcomes[0].Reason)
	assert.ErrorIs(t, excluded.Outcomes[0].Err, context.DeadlineExceeded)
}

func TestLoadRaceFailsWhenEveryDriverFails(t *testing.T) {
	stub := newStub()
	stub.lapErrs = map[string]error{"HAM": assert.AnError, "VER": assert.AnError}

	_, err := LoadRace(context.Background(), stub, []string{"HAM", "VER"})
	assert.ErrorIs(t, err, ErrNoRaceData)
}

func TestLoadRaceStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stub := newStub()
	stub.lapErrs = map[string]error{"HAM": context.Canceled}

	_, err := LoadRace(ctx, stub, []string{"HAM", "VER"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadRaceSessionFailure(t *testing.T) {
	stub := newStub()
	stub.err = assert.AnError

	_, err := LoadRace(context.Background(), stub, []string{"HAM"})
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "loading session")
}

func TestLoadLapSet(t *testing.T) {
	session, set, err := LoadLapSet(context.Background(), newStub(), "HAM")
	require.NoError(t, err)
	assert.Equal(t, "ITALIAN", session.ShortName())
	assert.Len(t, set.Laps, 1)

	_, _, err = LoadLapSet(context.Background(), newStub(), "ALO")
	assert.ErrorContains(t, err, "not in session")
}
