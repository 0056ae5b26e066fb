package demo

import (
	"context"
	"math"
	"math/rand"
	"strings"

	"trackshift.klederson.com/internal/provider"
)

var driverTemplates = []struct {
	Number   int
	Code     string
	FullName string
	Team     string
	Pace     float64 // seconds off the reference lap
	Laps     int     // laps completed; zero means full distance
}{
	{1, "VER", "Max VERSTAPPEN", "3671C6", 0.0, 0},
	{44, "HAM", "Lewis HAMILTON", "6CD3BF", 0.35, 0},
	{16, "LEC", "Charles LECLERC", "F91536", 0.25, 0},
	{4, "NOR", "Lando NORRIS", "F58020", 0.45, 0},
	{55, "SAI", "Carlos SAINZ", "F91536", 0.5, 0},
	{11, "PER", "Sergio PEREZ", "3671C6", 0.6, 12},
	{63, "RUS", "George RUSSELL", "6CD3BF", 0.55, 0},
	{14, "ALO", "Fernando ALONSO", "358C75", 0.7, 0},
}

const (
	referenceLap = 82.0 // seconds
	sampleRate   = 4.0  // samples per second
	outlineSteps = 720
)

// Provider serves a synthetic race on a generated circuit, for running
// without network access.
type Provider struct {
	laps    int
	seed    int64
	outline []point
	cumul   []float64
}

type point struct{ x, y float64 }

var _ provider.Provider = (*Provider)(nil)

// New returns a demo race of laps laps. The same seed always yields the
// same race.
func New(laps int, seed int64) *Provider {
	p := &Provider{laps: laps, seed: seed}
	p.outline, p.cumul = circuit()
	return p
}

func (p *Provider) Session(context.Context) (provider.Session, error) {
	return provider.Session{
		Key:       1,
		Name:      "Race",
		EventName: "Demo Grand Prix",
		Location:  "Nowhere",
		Year:      2024,
	}, nil
}

func (p *Provider) Drivers(_ context.Context, codes []string) ([]provider.Driver, error) {
	var out []provider.Driver
	for _, code := range codes {
		for _, t := range driverTemplates {
			if strings.EqualFold(t.Code, code) {
				out = append(out, provider.Driver{
					Number:     t.Number,
					Code:       t.Code,
					FullName:   t.FullName,
					TeamColour: t.Team,
				})
			}
		}
	}
	return out, nil
}

func (p *Provider) Laps(_ context.Context, d provider.Driver) ([]provider.Lap, error) {
	pace, laps := 1.0, p.laps
	for _, t := range driverTemplates {
		if t.Number == d.Number {
			pace = t.Pace
			if t.Laps > 0 && t.Laps < laps {
				laps = t.Laps
			}
		}
	}
	rng := rand.New(rand.NewSource(p.seed + int64(d.Number)))
	length := p.cumul[len(p.cumul)-1]

	out := make([]provider.Lap, laps)
	for i := range out {
		duration := referenceLap + pace + rng.Float64()*1.2
		if i == 0 {
			duration += 6 // standing start
		}
		lap := provider.Lap{Number: i + 1, Duration: provider.Seconds(duration)}

		n := int(duration * sampleRate)
		avg := length / duration * 3.6
		for j := 0; j < n; j++ {
			f := float64(j) / float64(n)
			pt, straight := p.at(f * length)
			lap.Position = append(lap.Position, provider.PositionSample{X: pt.x, Y: pt.y})
			lap.Car = append(lap.Car, provider.CarSample{
				Speed:    avg * (0.8 + 0.35*straight) * (0.98 + rng.Float64()*0.04),
				Distance: f * length,
			})
		}

		// timing loop glitch, like a pit lap without a recorded time
		if i > 0 && rng.Float64() < 0.04 {
			lap.Duration = nil
		}
		out[i] = lap
	}
	return out, nil
}

// circuit builds a closed, kidney shaped track and its cumulative length.
func circuit() ([]point, []float64) {
	pts := make([]point, outlineSteps+1)
	cumul := make([]float64, outlineSteps+1)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / outlineSteps
		pts[i] = point{
			x: 4200*math.Cos(th) + 900*math.Cos(2*th) - 300*math.Sin(3*th),
			y: 2600*math.Sin(th) + 700*math.Sin(2*th) + 250*math.Cos(3*th),
		}
		if i > 0 {
			cumul[i] = cumul[i-1] + math.Hypot(pts[i].x-pts[i-1].x, pts[i].y-pts[i-1].y)
		}
	}
	return pts, cumul
}

// at returns the point s metres along the track and how straight the track
// is there, from 0 (hairpin) to 1 (straight).
func (p *Provider) at(s float64) (point, float64) {
	i := 1
	for i < len(p.cumul)-1 && p.cumul[i] < s {
		i++
	}
	a, b := p.outline[i-1], p.outline[i]
	seg := p.cumul[i] - p.cumul[i-1]
	f := 0.0
	if seg > 0 {
		f = (s - p.cumul[i-1]) / seg
	}
	pt := point{a.x + (b.x-a.x)*f, a.y + (b.y-a.y)*f}

	next := p.outline[(i+1)%len(p.outline)]
	turn := math.Abs(angle(b.x-a.x, b.y-a.y, next.x-b.x, next.y-b.y))
	straight := 1 - math.Min(1, turn/0.05)
	return pt, straight
}

func angle(ax, ay, bx, by float64) float64 {
	return math.Atan2(ax*by-ay*bx, ax*bx+ay*by)
}
