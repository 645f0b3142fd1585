package geom

import "math"

// Geometry is anything a scene record can draw. Vertices are in local
// coordinates; the record's transform places them.
type Geometry interface {
	Vertices() []Point
	// Closed reports whether the outline returns to the first vertex and
	// the interior is filled.
	Closed() bool
}

// Line is an open two-point stroke.
type Line struct {
	A, B  Point
	Width float64
}

func (l Line) Vertices() []Point { return []Point{l.A, l.B} }
func (l Line) Closed() bool      { return false }

// Polygon is a closed, filled outline.
type Polygon struct {
	Points []Point
}

func (p Polygon) Vertices() []Point { return p.Points }
func (p Polygon) Closed() bool      { return true }

// NewPolygon copies pts so later appends to the source slice cannot leak in.
func NewPolygon(pts []Point) Polygon {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return Polygon{Points: cp}
}

// Circle approximates a circle centred on the origin with Steps segments.
type Circle struct {
	Radius float64
	Steps  int
}

func (c Circle) Vertices() []Point {
	steps := c.Steps
	if steps < 3 {
		steps = 3
	}
	pts := make([]Point, steps)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = Point{c.Radius * math.Cos(a), c.Radius * math.Sin(a)}
	}
	return pts
}

func (c Circle) Closed() bool { return true }
