package engine

import "math"

// Fixed-point scale factor: 1 cell = 1000 units.
// Velocities like 0.2 are exact in this representation, so repeated gravity
// steps do not drift.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// FromFloat converts a real value in cells to the nearest fixed-point value.
func FromFloat(v float64) Fixed {
	return Fixed(math.Round(v * Scale))
}

// Trunc converts fixed-point to whole cells, rounding toward zero.
func (f Fixed) Trunc() int {
	return int(f) / Scale
}

// Floor converts fixed-point to the cell containing it.
func (f Fixed) Floor() int {
	c := int(f) / Scale
	if f < 0 && int(f)%Scale != 0 {
		c--
	}
	return c
}

// Float returns the value in cells.
func (f Fixed) Float() float64 {
	return float64(f) / Scale
}
