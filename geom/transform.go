// Package geom holds the small geometry vocabulary the turtle engine speaks:
// points, affine transforms and the drawable shapes stored in scene records.
package geom

import (
	"math"

	"github.com/fogleman/gg"
)

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Transform places something on the plane: scaled first, then rotated
// counter-clockwise by Rotation radians, then moved to (X, Y).
// It is kept decomposed so headings read back exactly as they were set.
type Transform struct {
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// Identity returns the transform that leaves points untouched.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

func (t Transform) Position() Point {
	return Point{t.X, t.Y}
}

// At returns t moved to p, keeping rotation and scale.
func (t Transform) At(p Point) Transform {
	t.X, t.Y = p.X, p.Y
	return t
}

// Rotated returns t turned by rad radians counter-clockwise.
func (t Transform) Rotated(rad float64) Transform {
	t.Rotation += rad
	return t
}

// WithRotation returns t with its rotation replaced.
func (t Transform) WithRotation(rad float64) Transform {
	t.Rotation = rad
	return t
}

func (t Transform) Scaled(sx, sy float64) Transform {
	t.ScaleX *= sx
	t.ScaleY *= sy
	return t
}

// Advanced returns t moved dist units along its heading. Scale does not
// stretch the distance travelled.
func (t Transform) Advanced(dist float64) Transform {
	t.X += dist * math.Cos(t.Rotation)
	t.Y += dist * math.Sin(t.Rotation)
	return t
}

// Matrix composes the transform into a gg.Matrix (scale, then rotate, then translate).
func (t Transform) Matrix() gg.Matrix {
	return gg.Scale(t.ScaleX, t.ScaleY).
		Multiply(gg.Rotate(t.Rotation)).
		Multiply(gg.Translate(t.X, t.Y))
}

// Then returns the matrix that applies t first and outer afterwards.
func (t Transform) Then(outer gg.Matrix) gg.Matrix {
	return t.Matrix().Multiply(outer)
}

// Apply maps a local point into the parent frame.
func (t Transform) Apply(p Point) Point {
	x, y := t.Matrix().TransformPoint(p.X, p.Y)
	return Point{x, y}
}

// Translation strips rotation and scale, leaving only the anchor point.
// Text records are drawn with this so they stay axis-aligned.
func (t Transform) Translation() Transform {
	return Identity().At(t.Position())
}

// Equal reports whether two transforms place things identically within eps.
func (t Transform) Equal(o Transform, eps float64) bool {
	return math.Abs(t.X-o.X) <= eps &&
		math.Abs(t.Y-o.Y) <= eps &&
		math.Abs(AngleDelta(t.Rotation, o.Rotation)) <= eps &&
		math.Abs(t.ScaleX-o.ScaleX) <= eps &&
		math.Abs(t.ScaleY-o.ScaleY) <= eps
}

// AngleDelta returns the signed shortest rotation from a to b, in (-π, π].
func AngleDelta(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// Lerp blends a toward b: position and scale linearly, rotation along the
// shortest arc.
func Lerp(a, b Transform, progress float64) Transform {
	if progress <= 0 {
		return a
	}
	if progress >= 1 {
		return b
	}
	return Transform{
		X:        a.X + (b.X-a.X)*progress,
		Y:        a.Y + (b.Y-a.Y)*progress,
		Rotation: a.Rotation + AngleDelta(a.Rotation, b.Rotation)*progress,
		ScaleX:   a.ScaleX + (b.ScaleX-a.ScaleX)*progress,
		ScaleY:   a.ScaleY + (b.ScaleY-a.ScaleY)*progress,
	}
}

func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
