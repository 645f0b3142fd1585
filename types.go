package turtle

import (
	"image/color"
	"time"

	"turtle/geom"
	"turtle/scene"
)

// PenState is one snapshot of a turtle's attributes. The top of a turtle's
// state stack is the live state; everything below it is undo history.
type PenState struct {
	Transform geom.Transform
	Speed     float64
	Tracing   bool
	// Radians selects the angle unit for headings and turns.
	Radians   bool
	Width     float64
	Filling   bool
	PenColor  color.Color
	FillColor color.Color

	// Cursor is shared with the shape registry and with every stamp made from it.
	Cursor     geom.Geometry
	CursorName string

	// Stamp is the id the next stamp will receive.
	Stamp   int
	Visible bool
	// Tilt rotates the cursor relative to the heading, in radians.
	Tilt float64

	// ObjectsBefore is how many scene records the turtle owned when this
	// state was pushed. Undo removes everything past it.
	ObjectsBefore int
	// FillBefore is the fill accumulator length at push time.
	FillBefore int
	// FillStart indexes the accumulator vertex where the pending fill begins.
	FillStart int
	// FillAnchor is the record the pending fill polygon is inserted after.
	FillAnchor *scene.Object
	// FillObjects indexes the turtle's first record drawn while filling.
	// The polygon goes beneath it when FillAnchor has left the log.
	FillObjects int
}

func defaultPenState(cursor geom.Geometry, cursorName string) PenState {
	return PenState{
		Transform:  geom.Identity(),
		Speed:      SpeedNormal,
		Tracing:    true,
		Width:      1,
		PenColor:   color.Black,
		FillColor:  color.Black,
		Cursor:     cursor,
		CursorName: cursorName,
		Visible:    true,
	}
}

// KeyFunc runs when a bound key is pressed or released.
type KeyFunc func()

// MouseFunc receives the click position in world coordinates.
type MouseFunc func(x, y float64)

// TimerFunc runs each time its interval elapses.
type TimerFunc func()

type timerBinding struct {
	fn       TimerFunc
	interval time.Duration
	last     time.Time
}
