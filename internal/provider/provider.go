package provider

import (
	"context"
	"strings"
)

// Provider is a read-only source of session, driver and lap telemetry.
type Provider interface {
	// Session describes the selected event session.
	Session(ctx context.Context) (Session, error)
	// Drivers resolves driver codes (e.g. "HAM") to drivers of the session.
	// Unknown codes are skipped.
	Drivers(ctx context.Context, codes []string) ([]Driver, error)
	// Laps returns the driver's laps in lap order. A lap whose telemetry could
	// not be loaded carries Err instead of series.
	Laps(ctx context.Context, d Driver) ([]Lap, error)
}

// Session describes one session of a race weekend.
type Session struct {
	Key       int
	Name      string // e.g. "Race"
	EventName string // e.g. "Monaco Grand Prix"
	Location  string // e.g. "Monaco"
	Year      int
}

// DisplayName returns the event name, falling back to the location and
// finally to "RACE".
func (s Session) DisplayName() string {
	if s.EventName != "" {
		return s.EventName
	}
	if s.Location != "" {
		return s.Location
	}
	return "RACE"
}

// ShortName is the first word of DisplayName, upper-cased and capped at
// eight characters, as shown in the side panel.
func (s Session) ShortName() string {
	name := s.DisplayName()
	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	if r := []rune(name); len(r) > 8 {
		name = string(r[:8])
	}
	return strings.ToUpper(name)
}

// Driver identifies a car in a session.
type Driver struct {
	Number     int
	Code       string // three letter acronym
	FullName   string
	TeamColour string // hex without '#', may be empty
}

// PositionSample is one point of the position series.
type PositionSample struct {
	X, Y float64
}

// CarSample is one point of the car data series.
type CarSample struct {
	Speed    float64 // km/h
	Distance float64 // metres since the start of the lap
}

// Lap holds one lap of a driver.
type Lap struct {
	Number   int
	Duration *float64 // seconds; nil when the provider has no lap time
	Position []PositionSample
	Car      []CarSample
	Err      error
}

// Seconds returns a lap duration pointer.
func Seconds(v float64) *float64 {
	return &v
}
