package replay

import (
	"math"
	"time"

	"trackshift.klederson.com/internal/config"
)

// Clock is the race replay clock. Elapsed is in race seconds.
type Clock struct {
	elapsed float64
	maxTime float64
	rate    float64
	paused  bool
}

// NewClock returns a running clock over [0, maxTime].
func NewClock(maxTime float64) *Clock {
	return &Clock{maxTime: maxTime, rate: config.RaceInitialRate}
}

func (c *Clock) Elapsed() float64 { return c.elapsed }
func (c *Clock) MaxTime() float64 { return c.maxTime }
func (c *Clock) Rate() float64    { return c.rate }
func (c *Clock) Paused() bool     { return c.paused }

// Advance moves the clock by wall time scaled by the rate, looping back to
// the start once the end of the race is reached.
func (c *Clock) Advance(wall time.Duration) {
	if c.paused {
		return
	}
	c.elapsed += wall.Seconds() * c.rate
	if c.elapsed >= c.maxTime {
		c.elapsed = 0
	}
}

// Seek jumps by delta seconds, clamped to the race.
func (c *Clock) Seek(delta float64) {
	c.elapsed = clamp(c.elapsed+delta, 0, c.maxTime)
}

func (c *Clock) SetRate(rate float64) {
	c.rate = clamp(rate, config.RaceMinRate, config.RaceMaxRate)
}

func (c *Clock) Faster() { c.SetRate(c.rate + config.RaceRateStep) }
func (c *Clock) Slower() { c.SetRate(c.rate - config.RaceRateStep) }

func (c *Clock) TogglePause() { c.paused = !c.paused }

// Reset rewinds to the start. Rate and pause state are kept.
func (c *Clock) Reset() { c.elapsed = 0 }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
