// Package hex provides axial-coordinate math for hexagonal grids.
// It is pure and stateless: no I/O, no allocation beyond returned slices.
package hex

import "fmt"

// Coord is a hex address in axial coordinates.
// The third cube coordinate is implicit: S = -Q - R.
type Coord struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// C is a convenience constructor for Coord.
func C(q, r int) Coord {
	return Coord{Q: q, R: r}
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{Q: c.Q + other.Q, R: c.R + other.R}
}

// Sub returns c - other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{Q: c.Q - other.Q, R: c.R - other.R}
}

// String returns "(q,r)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// Less orders coordinates by Q, then R.
func (c Coord) Less(other Coord) bool {
	if c.Q != other.Q {
		return c.Q < other.Q
	}
	return c.R < other.R
}

// Directions are the six neighbor offsets, starting east and going
// counter-clockwise. Search code relies on this order for tie-breaking.
var Directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent coordinates in Directions order.
func Neighbors(c Coord) [6]Coord {
	var out [6]Coord
	for i, d := range Directions {
		out[i] = c.Add(d)
	}
	return out
}

// Distance returns the hex distance between a and b.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.Q + a.R - b.Q - b.R)
	return max(dq, dr, ds)
}

// InRange reports whether c lies within radius steps of center.
func InRange(c, center Coord, radius int) bool {
	return Distance(c, center) <= radius
}

// Range returns every coordinate within radius of center.
// The order is deterministic: Q ascending, then R ascending.
// A negative radius yields an empty slice.
func Range(center Coord, radius int) []Coord {
	if radius < 0 {
		return nil
	}
	out := make([]Coord, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			out = append(out, Coord{Q: center.Q + q, R: center.R + r})
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
