package geometry

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrNoPoints is returned by Fit when there is nothing to fit.
	ErrNoPoints = errors.New("no track coordinates to fit")
	// ErrDegenerateGeometry is returned when one axis has zero extent or a
	// coordinate is not finite; a scale derived from it would be NaN or Inf.
	ErrDegenerateGeometry = errors.New("degenerate track geometry")
)

// Point is a raw track coordinate as reported by the provider.
type Point struct {
	X, Y float64
}

// Viewport is the display area the track is fitted into.
type Viewport struct {
	Width  float64
	Height float64
	Margin float64
}

// Params maps raw coordinates into a viewport. It is computed once by Fit
// and passed by value afterwards.
type Params struct {
	XMin    float64
	YMin    float64
	Scale   float64
	XOffset float64
	YOffset float64
}

// Fit derives the uniform scale and centering offsets that place every
// point inside the viewport minus its margin, preserving aspect ratio.
func Fit(points []Point, vp Viewport) (Params, error) {
	if len(points) == 0 {
		return Params{}, ErrNoPoints
	}

	xMin, xMax := points[0].X, points[0].X
	yMin, yMax := points[0].Y, points[0].Y
	for _, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return Params{}, ErrDegenerateGeometry
		}
		xMin = math.Min(xMin, p.X)
		xMax = math.Max(xMax, p.X)
		yMin = math.Min(yMin, p.Y)
		yMax = math.Max(yMax, p.Y)
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange <= 0 || yRange <= 0 {
		return Params{}, ErrDegenerateGeometry
	}

	scale := math.Min((vp.Width-2*vp.Margin)/xRange, (vp.Height-2*vp.Margin)/yRange)
	if !finite(scale) || scale <= 0 {
		return Params{}, ErrDegenerateGeometry
	}

	return Params{
		XMin:    xMin,
		YMin:    yMin,
		Scale:   scale,
		XOffset: (vp.Width - xRange*scale) / 2,
		YOffset: (vp.Height - yRange*scale) / 2,
	}, nil
}

// Apply transforms a raw coordinate into integer viewport coordinates.
// Points that were not part of the fitted set may land outside the
// viewport; callers clip.
func (p Params) Apply(x, y float64) (int, int) {
	return truncate((x-p.XMin)*p.Scale + p.XOffset), truncate((y-p.YMin)*p.Scale + p.YOffset)
}

// truncate drops the fractional part, absorbing float noise just below an
// integer so that fitted points never fall one pixel short of the margin.
func truncate(v float64) int {
	return int(math.Trunc(v + 1e-9))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
