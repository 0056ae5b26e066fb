package palette

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Color converts to a lipgloss terminal colour.
func (c RGB) Color() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Gradient is an ordered list of colour stops.
type Gradient []RGB

// SpeedGradient runs from slow (blue) through green and yellow to fast (pink).
var SpeedGradient = Gradient{
	{50, 100, 255},
	{0, 255, 150},
	{255, 255, 50},
	{255, 100, 150},
}

// At maps speed within [min, max] onto the gradient using piecewise linear
// interpolation between the two bracketing stops. Channels are truncated to
// integers. A degenerate range yields the first stop.
func (g Gradient) At(speed, min, max float64) RGB {
	if len(g) == 0 {
		return RGB{}
	}
	if max <= min || len(g) == 1 {
		return g[0]
	}

	normalized := (speed - min) / (max - min)
	if math.IsNaN(normalized) {
		normalized = 0
	}
	normalized = math.Max(0, math.Min(1, normalized))

	idx := normalized * float64(len(g)-1)
	idx1 := int(idx)
	idx2 := idx1 + 1
	if idx2 > len(g)-1 {
		idx2 = len(g) - 1
	}
	blend := idx - float64(idx1)

	c1, c2 := g[idx1], g[idx2]
	return RGB{
		R: lerp(c1.R, c2.R, blend),
		G: lerp(c1.G, c2.G, blend),
		B: lerp(c1.B, c2.B, blend),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
