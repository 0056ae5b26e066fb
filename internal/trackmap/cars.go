package trackmap

import "trackshift.klederson.com/internal/palette"

const maxLabelLen = 3

// Car is a driver marker with a text label.
type Car struct {
	X, Y  float64
	Label string
	Color palette.RGB
}

type carPos struct {
	col, row int
	car      Car
	label    string
	labelCol int
	labelRow int
}

// DrawCars places each car and its label. Labels go right of the car,
// flip left at the edge and move a row down or up when they would overlap
// an earlier label; a label with nowhere to go is dropped. Cars off the
// grid are clipped. Earlier cars get first pick, so pass the leader first.
func (c *Canvas) DrawCars(cars []Car) {
	for _, cp := range c.placeCars(cars) {
		color := cp.car.Color.Color()
		c.Set(cp.col, cp.row, '●', color, true, LayerCar)
		for i, ch := range cp.label {
			c.Set(cp.labelCol+i, cp.labelRow, ch, color, true, LayerLabel)
		}
	}
}

func (c *Canvas) placeCars(cars []Car) []carPos {
	width := c.grid.Cols
	cps := make([]carPos, 0, len(cars))

	type segment struct{ start, end int }
	occupied := make(map[int][]segment)
	collides := func(row, start, end int) bool {
		for _, seg := range occupied[row] {
			if start < seg.end && end > seg.start {
				return true
			}
		}
		return false
	}

	for _, car := range cars {
		col, row, ok := c.Locate(car.X, car.Y)
		if !ok {
			continue
		}

		label := car.Label
		if len(label) > maxLabelLen {
			label = label[:maxLabelLen]
		}

		lc := col + 2
		if lc+len(label) >= width {
			lc = col - len(label) - 1
		}
		if lc < 0 {
			lc = 0
		}

		lr := row
		placed := false
		for _, r := range []int{row, row + 1, row - 1} {
			if r < 0 || r >= c.grid.Rows {
				continue
			}
			if !collides(r, lc, lc+len(label)) {
				lr = r
				placed = true
				break
			}
		}
		if !placed {
			label = ""
		}

		cps = append(cps, carPos{
			col:      col,
			row:      row,
			car:      car,
			label:    label,
			labelCol: lc,
			labelRow: lr,
		})

		occupied[row] = append(occupied[row], segment{col, col + 1})
		if label != "" {
			occupied[lr] = append(occupied[lr], segment{lc, lc + len(label)})
		}
	}
	return cps
}
