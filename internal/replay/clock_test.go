package replay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// one wall second at rate 1 is one replay second
const wallToReplay = 1.0

func TestClockAdvanceScalesByRate(t *testing.T) {
	c := NewClock(100)
	c.SetRate(2.0)

	c.Advance(500 * time.Millisecond)
	assert.InDelta(t, 1.0*wallToReplay, c.Elapsed(), 1e-9)

	c.Advance(250 * time.Millisecond)
	assert.InDelta(t, 1.5*wallToReplay, c.Elapsed(), 1e-9)
}

func TestClockPaused(t *testing.T) {
	c := NewClock(100)
	c.TogglePause()
	c.Advance(time.Second)
	assert.Zero(t, c.Elapsed())
	assert.True(t, c.Paused())

	c.TogglePause()
	c.Advance(time.Second)
	assert.InDelta(t, 5.0, c.Elapsed(), 1e-9)
}

func TestClockWrapsAtEnd(t *testing.T) {
	c := NewClock(100)
	c.SetRate(1)
	c.Seek(100 - 0.01)

	c.Advance(100 * time.Millisecond)
	assert.Zero(t, c.Elapsed())
}

func TestClockSeekClamps(t *testing.T) {
	c := NewClock(100)

	c.Seek(-10)
	assert.Zero(t, c.Elapsed())

	c.Seek(95)
	c.Seek(10)
	assert.InDelta(t, 100, c.Elapsed(), 1e-9, "manual seek does not wrap")

	c.Reset()
	assert.Zero(t, c.Elapsed())
}

func TestClockRateBounds(t *testing.T) {
	c := NewClock(100)
	assert.Equal(t, 5.0, c.Rate())

	for i := 0; i < 30; i++ {
		c.Faster()
	}
	assert.Equal(t, 20.0, c.Rate())

	for i := 0; i < 30; i++ {
		c.Slower()
	}
	assert.Equal(t, 0.5, c.Rate())

	c.Faster()
	assert.Equal(t, 1.5, c.Rate())
}

func TestLapClockFrameIndex(t *testing.T) {
	c := NewLapClock(3)
	assert.Equal(t, 2.0, c.Rate())

	c.Advance(time.Second) // 2s of a 10s lap
	assert.Equal(t, 20, c.FrameIndex(100))
	assert.InDelta(t, 0.2, c.Progress(100), 1e-9)

	c.Advance(4 * time.Second) // 10s, loops
	assert.Equal(t, 0, c.FrameIndex(100))

	assert.Equal(t, 0, c.FrameIndex(0))
}

func TestLapClockNavigation(t *testing.T) {
	c := NewLapClock(3)
	c.Advance(time.Second)

	c.Prev()
	assert.Equal(t, 2, c.Lap())
	assert.Zero(t, c.Elapsed())

	c.Next()
	c.Next()
	assert.Equal(t, 1, c.Lap())

	c.Advance(time.Second)
	c.Reset()
	assert.Zero(t, c.Elapsed())
	assert.Equal(t, 1, c.Lap())
}

func TestLapClockRateBounds(t *testing.T) {
	c := NewLapClock(1)
	for i := 0; i < 40; i++ {
		c.Faster()
	}
	assert.Equal(t, 10.0, c.Rate())
	for i := 0; i < 40; i++ {
		c.Slower()
	}
	assert.Equal(t, 0.5, c.Rate())
}
