package openf1

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"trackshift.klederson.com/internal/log"
	"trackshift.klederson.com/internal/provider"
)

// ErrSessionNotFound is returned when no session matches the selection.
var ErrSessionNotFound = errors.New("session not found")

// Provider implements provider.Provider on top of the OpenF1 API.
type Provider struct {
	client  *Client
	year    int
	event   string
	session string

	resolved *provider.Session
}

var _ provider.Provider = (*Provider)(nil)

// NewProvider selects the session named session (e.g. "Race") of the event
// whose location, country or circuit matches event in the given year.
func NewProvider(client *Client, year int, event, session string) *Provider {
	return &Provider{client: client, year: year, event: event, session: session}
}

func (p *Provider) Session(ctx context.Context) (provider.Session, error) {
	if p.resolved != nil {
		return *p.resolved, nil
	}

	q := url.Values{
		"year":         {strconv.Itoa(p.year)},
		"session_name": {p.session},
	}
	var sessions []session
	if err := p.client.get(ctx, "sessions", q, &sessions); err != nil {
		return provider.Session{}, err
	}

	s, ok := lo.Find(sessions, func(s session) bool {
		return matchesEvent(s, p.event)
	})
	if !ok {
		return provider.Session{}, errors.Wrapf(ErrSessionNotFound, "%d %s %s", p.year, p.event, p.session)
	}

	out := provider.Session{
		Key:      s.SessionKey,
		Name:     s.SessionName,
		Location: s.Location,
		Year:     s.Year,
	}

	var meetings []meeting
	err := p.client.get(ctx, "meetings", url.Values{"meeting_key": {strconv.Itoa(s.MeetingKey)}}, &meetings)
	if err != nil {
		log.Logger.Warn("meeting lookup failed", zap.Int("meeting", s.MeetingKey), zap.Error(err))
	} else if len(meetings) > 0 {
		out.EventName = meetings[0].MeetingName
	}

	p.resolved = &out
	return out, nil
}

func matchesEvent(s session, event string) bool {
	event = strings.ToLower(strings.TrimSpace(event))
	if event == "" {
		return true
	}
	for _, name := range []string{s.Location, s.CountryName, s.CircuitShortName} {
		if name != "" && strings.Contains(strings.ToLower(name), event) {
			return true
		}
	}
	return false
}

func (p *Provider) Drivers(ctx context.Context, codes []string) ([]provider.Driver, error) {
	s, err := p.Session(ctx)
	if err != nil {
		return nil, err
	}

	var drivers []driver
	q := url.Values{"session_key": {strconv.Itoa(s.Key)}}
	if err := p.client.get(ctx, "drivers", q, &drivers); err != nil {
		return nil, err
	}
	byCode := lo.KeyBy(drivers, func(d driver) string {
		return strings.ToUpper(d.NameAcronym)
	})

	out := make([]provider.Driver, 0, len(codes))
	for _, code := range codes {
		d, ok := byCode[strings.ToUpper(code)]
		if !ok {
			log.Logger.Warn("driver not in session", zap.String("driver", code))
			continue
		}
		out = append(out, provider.Driver{
			Number:     d.DriverNumber,
			Code:       strings.ToUpper(d.NameAcronym),
			FullName:   d.FullName,
			TeamColour: d.TeamColour,
		})
	}
	return out, nil
}

func (p *Provider) Laps(ctx context.Context, d provider.Driver) ([]provider.Lap, error) {
	s, err := p.Session(ctx)
	if err != nil {
		return nil, err
	}
	q := url.Values{
		"session_key":   {strconv.Itoa(s.Key)},
		"driver_number": {strconv.Itoa(d.Number)},
	}

	var laps []lap
	if err := p.client.get(ctx, "laps", q, &laps); err != nil {
		return nil, err
	}
	sort.SliceStable(laps, func(i, j int) bool { return laps[i].LapNumber < laps[j].LapNumber })

	pos, posErr := p.positions(ctx, q)
	car, carErr := p.carData(ctx, q)
	seriesErr := posErr
	if seriesErr == nil {
		seriesErr = carErr
	}

	windows := lapWindows(laps)
	out := make([]provider.Lap, len(laps))
	for i, l := range laps {
		out[i] = provider.Lap{Number: l.LapNumber, Duration: l.LapDuration}
		switch {
		case seriesErr != nil:
			out[i].Err = seriesErr
		case windows[i].err != nil:
			out[i].Err = windows[i].err
		default:
			out[i].Position = slicePositions(pos, windows[i])
			out[i].Car = integrate(sliceCar(car, windows[i]))
		}
	}
	return out, nil
}

type stamped[T any] struct {
	at time.Time
	v  T
}

func (p *Provider) positions(ctx context.Context, q url.Values) ([]stamped[location], error) {
	var raw []location
	if err := p.client.get(ctx, "location", q, &raw); err != nil {
		return nil, err
	}
	return stamp(raw, func(l location) string { return l.Date })
}

func (p *Provider) carData(ctx context.Context, q url.Values) ([]stamped[carData], error) {
	var raw []carData
	if err := p.client.get(ctx, "car_data", q, &raw); err != nil {
		return nil, err
	}
	return stamp(raw, func(c carData) string { return c.Date })
}

func stamp[T any](raw []T, date func(T) string) ([]stamped[T], error) {
	out := make([]stamped[T], 0, len(raw))
	for _, r := range raw {
		at, err := parseDate(date(r))
		if err != nil {
			return nil, errors.Wrap(err, "parsing sample date")
		}
		out = append(out, stamped[T]{at: at, v: r})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].at.Before(out[j].at) })
	return out, nil
}
