package app

// SpeedRing is a circular buffer of recent speeds for the speed trace.
type SpeedRing struct {
	buf   []float64
	pos   int
	count int
}

// NewSpeedRing creates a buffer holding up to capacity values.
func NewSpeedRing(capacity int) *SpeedRing {
	return &SpeedRing{
		buf: make([]float64, capacity),
	}
}

// Push adds a value, overwriting the oldest once full.
func (r *SpeedRing) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored values in chronological order.
func (r *SpeedRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// Reset empties the buffer.
func (r *SpeedRing) Reset() {
	r.pos = 0
	r.count = 0
}

func (r *SpeedRing) Len() int {
	return r.count
}
