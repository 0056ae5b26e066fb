package replay

import (
	"time"

	"trackshift.klederson.com/internal/config"
)

// LapClock drives the single driver replay. Every lap plays back over the
// same fixed span of replay time, independent of its real duration.
type LapClock struct {
	elapsed float64
	rate    float64
	paused  bool
	lap     int
	laps    int
}

// NewLapClock starts at the first of laps laps.
func NewLapClock(laps int) *LapClock {
	return &LapClock{rate: config.LapInitialRate, laps: laps}
}

func (c *LapClock) Elapsed() float64 { return c.elapsed }
func (c *LapClock) Rate() float64    { return c.rate }
func (c *LapClock) Paused() bool     { return c.paused }

// Lap is the zero-based index of the current lap.
func (c *LapClock) Lap() int { return c.lap }

func (c *LapClock) Advance(wall time.Duration) {
	if c.paused {
		return
	}
	c.elapsed += wall.Seconds() * c.rate
}

// FrameIndex maps the elapsed time onto a sample index of a lap with n
// samples, looping every config.LapPlayback seconds.
func (c *LapClock) FrameIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return int(c.elapsed*float64(n)/config.LapPlayback) % n
}

// Progress is the fraction of the current lap already played.
func (c *LapClock) Progress(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(c.FrameIndex(n)) / float64(n)
}

func (c *LapClock) Next() {
	if c.laps == 0 {
		return
	}
	c.lap = (c.lap + 1) % c.laps
	c.elapsed = 0
}

func (c *LapClock) Prev() {
	if c.laps == 0 {
		return
	}
	c.lap = (c.lap - 1 + c.laps) % c.laps
	c.elapsed = 0
}

func (c *LapClock) SetRate(rate float64) {
	c.rate = clamp(rate, config.LapMinRate, config.LapMaxRate)
}

func (c *LapClock) Faster() { c.SetRate(c.rate + config.LapRateStep) }
func (c *LapClock) Slower() { c.SetRate(c.rate - config.LapRateStep) }

func (c *LapClock) TogglePause() { c.paused = !c.paused }

// Reset restarts the current lap.
func (c *LapClock) Reset() { c.elapsed = 0 }
