package trackmap

import (
	"math"

	"trackshift.klederson.com/internal/config"
)

// Grid maps the native canvas onto terminal cells. Cells are about twice as
// tall as they are wide, so rows are squeezed by config.AspectRatio to keep
// the track's proportions.
type Grid struct {
	Cols int
	Rows int
}

// rowsPerCol is the number of rows needed per column for an undistorted
// canvas.
const rowsPerCol = config.CanvasHeight / config.CanvasWidth * config.AspectRatio

// FitGrid returns the largest undistorted grid that fits width x height.
func FitGrid(width, height int) Grid {
	if width < 1 || height < 1 {
		return Grid{}
	}
	cols := width
	rows := int(math.Round(float64(cols) * rowsPerCol))
	if rows > height {
		rows = height
		cols = int(math.Round(float64(rows) / rowsPerCol))
	}
	return Grid{Cols: max(cols, 1), Rows: max(rows, 1)}
}

// Cell converts canvas pixel coordinates to a cell. ok is false when the
// point falls outside the grid.
func (g Grid) Cell(px, py int) (col, row int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	col = int(float64(px) * float64(g.Cols) / config.CanvasWidth)
	row = int(float64(py) * float64(g.Rows) / config.CanvasHeight)
	ok = col < g.Cols && row < g.Rows
	return col, row, ok
}

// SegmentChar picks the character that best follows a line heading from
// one cell to the next.
func SegmentChar(dCol, dRow int) rune {
	if dCol == 0 && dRow == 0 {
		return '.'
	}
	angle := math.Atan2(float64(dCol), -float64(dRow)/config.AspectRatio)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	// 8 sectors, 0=up, clockwise
	switch int(math.Round(angle/(math.Pi/4))) % 8 {
	case 0, 4:
		return '|'
	case 1, 5:
		return '/'
	case 2, 6:
		return '-'
	default:
		return '\\'
	}
}
