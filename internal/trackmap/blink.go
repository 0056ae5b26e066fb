package trackmap

import "time"

// Blinker toggles on and off every Period, measured from StartTime.
type Blinker struct {
	Period    time.Duration
	StartTime time.Time
	on        bool
}

// NewBlinker starts visible at now.
func NewBlinker(period time.Duration, now time.Time) *Blinker {
	return &Blinker{Period: period, StartTime: now, on: true}
}

// Update recomputes the phase for now.
func (b *Blinker) Update(now time.Time) {
	if b.Period <= 0 {
		b.on = true
		return
	}
	b.on = (now.Sub(b.StartTime)/b.Period)%2 == 0
}

// Visible reports whether the blinking element is shown.
func (b *Blinker) Visible() bool {
	return b.on
}
