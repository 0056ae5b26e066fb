package trackmap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trackshift.klederson.com/internal/geometry"
	"trackshift.klederson.com/internal/palette"
)

// Layer orders what wins when two things land on the same cell.
type Layer int

const (
	LayerEmpty Layer = iota
	LayerOutline
	LayerTrail
	LayerLabel
	LayerCar
)

var (
	colorOutline = lipgloss.Color("#50506E")
	styleOutline = lipgloss.NewStyle().Foreground(colorOutline)
)

type cell struct {
	ch    rune
	color lipgloss.Color
	bold  bool
	layer Layer
}

// Canvas is a character grid the track, trails and cars are drawn on.
type Canvas struct {
	grid   Grid
	params geometry.Params
	cells  []cell
}

// NewCanvas returns an empty canvas filling width x height cells, using
// params to place raw track coordinates.
func NewCanvas(width, height int, params geometry.Params) *Canvas {
	g := FitGrid(width, height)
	return &Canvas{
		grid:   g,
		params: params,
		cells:  make([]cell, g.Cols*g.Rows),
	}
}

func (c *Canvas) Grid() Grid { return c.grid }

// Locate maps a raw track coordinate to a cell. Off-grid points are
// reported with ok == false so callers can clip them.
func (c *Canvas) Locate(x, y float64) (col, row int, ok bool) {
	px, py := c.params.Apply(x, y)
	return c.grid.Cell(px, py)
}

// Set writes ch at (col, row) unless the cell already holds a higher layer.
func (c *Canvas) Set(col, row int, ch rune, color lipgloss.Color, bold bool, layer Layer) bool {
	if col < 0 || row < 0 || col >= c.grid.Cols || row >= c.grid.Rows {
		return false
	}
	i := row*c.grid.Cols + col
	if c.cells[i].layer > layer {
		return false
	}
	c.cells[i] = cell{ch: ch, color: color, bold: bold, layer: layer}
	return true
}

// DrawOutline draws every stride-th point of the track as a line segment
// character following the direction to the next drawn point.
func (c *Canvas) DrawOutline(points []geometry.Point, stride int) {
	if stride < 1 {
		stride = 1
	}
	type pos struct{ col, row int }
	var cells []pos
	for i := 0; i < len(points); i += stride {
		col, row, ok := c.Locate(points[i].X, points[i].Y)
		if !ok {
			continue
		}
		if n := len(cells); n > 0 && cells[n-1].col == col && cells[n-1].row == row {
			continue
		}
		cells = append(cells, pos{col, row})
	}
	for i, p := range cells {
		ch := '.'
		if i+1 < len(cells) {
			ch = SegmentChar(cells[i+1].col-p.col, cells[i+1].row-p.row)
		}
		c.Set(p.col, p.row, ch, colorOutline, false, LayerOutline)
	}
}

// TrailPoint is one sample of a speed coloured trail.
type TrailPoint struct {
	X, Y  float64
	Color palette.RGB
}

// DrawTrail draws points oldest first so the newest sample wins a shared cell.
func (c *Canvas) DrawTrail(trail []TrailPoint) {
	for _, p := range trail {
		col, row, ok := c.Locate(p.X, p.Y)
		if !ok {
			continue
		}
		c.Set(col, row, '•', p.Color.Color(), false, LayerTrail)
	}
}

// Render returns the canvas as styled text. With scanlines on, every other
// row is drawn faint like an old CRT.
func (c *Canvas) Render(scanlines bool) string {
	var sb strings.Builder
	for row := 0; row < c.grid.Rows; row++ {
		faint := scanlines && row%2 == 1
		for col := 0; col < c.grid.Cols; col++ {
			sb.WriteString(renderCell(c.cells[row*c.grid.Cols+col], faint))
		}
		if row < c.grid.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderCell(cl cell, faint bool) string {
	if cl.layer == LayerEmpty {
		return " "
	}
	var s lipgloss.Style
	if cl.layer == LayerOutline {
		s = styleOutline
	} else {
		s = lipgloss.NewStyle().Foreground(cl.color).Bold(cl.bold)
	}
	return s.Faint(faint).Render(string(cl.ch))
}

// Plain returns the canvas characters without styling, one line per row.
func (c *Canvas) Plain() string {
	var sb strings.Builder
	for row := 0; row < c.grid.Rows; row++ {
		for col := 0; col < c.grid.Cols; col++ {
			ch := c.cells[row*c.grid.Cols+col].ch
			if ch == 0 {
				ch = ' '
			}
			sb.WriteRune(ch)
		}
		if row < c.grid.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
