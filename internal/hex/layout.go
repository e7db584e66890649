package hex

import "math"

var sqrt3 = math.Sqrt(3)

// Point is a position in screen space.
type Point struct {
	X, Y float64
}

// Layout projects axial coordinates onto a plane.
// Size is the hex radius in pixels (or terminal cells); Origin is where
// coordinate (0,0) lands.
type Layout struct {
	Size   float64
	Origin Point
}

// NewLayout creates a layout with the given hex size and origin.
func NewLayout(size float64, origin Point) Layout {
	return Layout{Size: size, Origin: origin}
}

// Pixel returns the center of c.
func (l Layout) Pixel(c Coord) Point {
	q := float64(c.Q)
	r := float64(c.R)
	x := l.Size * 1.5 * q
	y := l.Size * (sqrt3/2*q + sqrt3*r)
	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// FromPixel returns the hex containing p.
func (l Layout) FromPixel(p Point) Coord {
	x := p.X - l.Origin.X
	y := p.Y - l.Origin.Y
	q := (2.0 / 3.0 * x) / l.Size
	r := (-1.0/3.0*x + sqrt3/3.0*y) / l.Size
	return Round(q, r)
}

// Round snaps fractional axial coordinates to the nearest hex.
// The cube component with the largest rounding error is rebuilt from the
// other two so that q+r+s stays zero.
func Round(q, r float64) Coord {
	s := -q - r

	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}

	return Coord{Q: int(rq), R: int(rr)}
}
