package turtle

import (
	"image/color"
	"math"
	"slices"

	"github.com/fogleman/gg"

	"turtle/geom"
	"turtle/scene"
	"turtle/shape"
)

// Turtle is a cursor with a pen. It draws by appending records to its
// screen's log and remembers which records are its own so it can undo them
// or clear its stamps. A Turtle must only be driven from the goroutine that
// runs its screen's update loop.
type Turtle struct {
	screen *Screen

	states  []PenState
	undoCap int

	// objects lists the records this turtle added, oldest first.
	objects []*scene.Object

	fillAccum []geom.Point

	// travel is the in-flight segment while an animation runs.
	travel        [2]geom.Point
	traveling     bool
	travelTracing bool
}

// NewTurtle creates a turtle at the origin and attaches it to s.
func NewTurtle(s *Screen) *Turtle {
	t := &Turtle{
		screen:  s,
		undoCap: s.cfg.UndoBuffer,
	}
	t.states = []PenState{t.initialState()}
	s.Add(t)
	t.updateParent(false, false)
	return t
}

func (t *Turtle) initialState() PenState {
	cursor, _ := t.screen.shapes.Lookup(shape.Default)
	st := defaultPenState(cursor, shape.Default)
	if t.screen.cfg.Speed != nil {
		st.Speed = float64(*t.screen.cfg.Speed)
	}
	st.Transform = st.Transform.WithRotation(t.homeRotation())
	return st
}

func (t *Turtle) state() *PenState {
	return &t.states[len(t.states)-1]
}

// Screen returns the screen this turtle draws on.
func (t *Turtle) Screen() *Screen {
	return t.screen
}

// Motion

func (t *Turtle) Forward(dist float64) {
	t.pushState()
	t.travelTo(t.state().Transform.Advanced(dist))
}

func (t *Turtle) Backward(dist float64) {
	t.pushState()
	t.travelTo(t.state().Transform.Advanced(-dist))
}

// Right turns clockwise on screen, in the current angle unit.
func (t *Turtle) Right(angle float64) {
	t.pushState()
	t.travelTo(t.state().Transform.Rotated(-t.toRadians(angle)))
}

// Left turns counter-clockwise on screen, in the current angle unit.
func (t *Turtle) Left(angle float64) {
	t.pushState()
	t.travelTo(t.state().Transform.Rotated(t.toRadians(angle)))
}

func (t *Turtle) GoTo(x, y float64) {
	t.pushState()
	t.travelTo(t.state().Transform.At(geom.Point{X: x, Y: y}))
}

func (t *Turtle) SetX(x float64) {
	t.pushState()
	tr := t.state().Transform
	t.travelTo(tr.At(geom.Point{X: x, Y: tr.Y}))
}

func (t *Turtle) SetY(y float64) {
	t.pushState()
	tr := t.state().Transform
	t.travelTo(tr.At(geom.Point{X: tr.X, Y: y}))
}

// SetHeading points the turtle at angle, read according to the screen mode.
func (t *Turtle) SetHeading(angle float64) {
	t.pushState()
	t.travelTo(t.state().Transform.WithRotation(t.headingToRotation(t.toRadians(angle))))
}

// Home returns to the origin facing the mode's zero heading.
func (t *Turtle) Home() {
	t.pushState()
	tr := t.state().Transform.At(geom.Point{}).WithRotation(t.homeRotation())
	t.travelTo(tr)
}

func (t *Turtle) Position() geom.Point {
	return t.state().Transform.Position()
}

func (t *Turtle) XCor() float64 { return t.state().Transform.X }
func (t *Turtle) YCor() float64 { return t.state().Transform.Y }

// Heading returns the current heading in the current angle unit,
// normalized to one full turn.
func (t *Turtle) Heading() float64 {
	rad := t.rotationToHeading(t.state().Transform.Rotation)
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return t.fromRadians(rad)
}

// Distance returns how far (x, y) is from the turtle.
func (t *Turtle) Distance(x, y float64) float64 {
	return t.Position().Distance(geom.Point{X: x, Y: y})
}

// Towards returns the heading that would point the turtle at (x, y).
func (t *Turtle) Towards(x, y float64) float64 {
	p := t.Position()
	rad := t.rotationToHeading(math.Atan2(y-p.Y, x-p.X))
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return t.fromRadians(rad)
}

// Drawing

// Circle puts a filled circle of the given radius at the turtle.
func (t *Turtle) Circle(radius float64, steps int, c color.Color) {
	t.pushState()
	tr := t.state().Transform
	t.addObject(scene.NewGeometry(geom.Circle{Radius: radius, Steps: steps}, c, geom.Identity().At(tr.Position())))
	t.updateParent(false, true)
}

// Dot is a small circle of diameter size.
func (t *Turtle) Dot(c color.Color, size float64) {
	t.Circle(size/2, 16, c)
}

// Fill starts or finishes a filled polygon. Finishing inserts the polygon
// where the log ended when filling started, beneath everything drawn since.
func (t *Turtle) Fill(on bool) {
	if on {
		t.pushState()
		st := t.state()
		st.Filling = true
		st.FillStart = len(t.fillAccum)
		st.FillAnchor = t.screen.log.Last()
		st.FillObjects = len(t.objects)
		t.fillAccum = append(t.fillAccum, st.Transform.Position())
		return
	}
	if !t.state().Filling {
		return
	}
	t.pushState()
	st := t.state()
	st.Filling = false
	pts := t.fillAccum[st.FillStart:]
	if len(pts) >= 3 {
		t.insertFill(scene.NewGeometry(geom.NewPolygon(pts), st.FillColor, geom.Identity()), st)
	}
	st.FillAnchor = nil
	t.updateParent(false, true)
}

// insertFill places the finished polygon where the log ended when the fill
// began. If the anchor record has since been removed, the polygon goes
// beneath the first record this turtle drew while filling, or to the front
// of the log when there is none.
func (t *Turtle) insertFill(obj *scene.Object, st *PenState) {
	log := &t.screen.log
	switch {
	case st.FillAnchor == nil:
		log.InsertAfter(nil, obj)
	case log.Index(st.FillAnchor) >= 0:
		log.InsertAfter(st.FillAnchor, obj)
	default:
		var first *scene.Object
		if st.FillObjects < len(t.objects) {
			first = t.objects[st.FillObjects]
		}
		log.InsertBefore(first, obj)
	}
	t.objects = append(t.objects, obj)
}

func (t *Turtle) BeginFill() { t.Fill(true) }
func (t *Turtle) EndFill()   { t.Fill(false) }

func (t *Turtle) Filling() bool {
	return t.state().Filling
}

// Write puts text at the turtle in the fill color. Text never rotates.
func (t *Turtle) Write(text string) {
	t.pushState()
	st := t.state()
	t.addObject(scene.NewText(text, st.FillColor, st.Transform))
	t.updateParent(false, true)
}

// Stamp leaves a copy of the cursor on the canvas and returns its id.
// Ids start at 0 and grow by one per stamp.
func (t *Turtle) Stamp() int {
	t.pushState()
	st := t.state()
	id := st.Stamp
	st.Stamp++
	t.addObject(scene.NewStamp(st.Cursor, st.FillColor, st.PenColor, st.Width, t.cursorTransform(), id))
	t.updateParent(false, true)
	return id
}

// ClearStamp removes the stamp with the given id, if this turtle made it.
func (t *Turtle) ClearStamp(id int) {
	for i, obj := range t.objects {
		if obj.IsStamp() && obj.StampID == id {
			t.forget(i)
			t.updateParent(false, true)
			return
		}
	}
	Logger().Debug("clearstamp: no such stamp", "id", id)
}

// ClearStamps removes stamps with an id below maxID, or all of them when
// maxID is negative.
func (t *Turtle) ClearStamps(maxID int) {
	removed := false
	for i := len(t.objects) - 1; i >= 0; i-- {
		obj := t.objects[i]
		if obj.IsStamp() && (maxID < 0 || obj.StampID < maxID) {
			t.forget(i)
			removed = true
		}
	}
	if removed {
		t.updateParent(false, true)
	}
}

// Objects returns the records this turtle has drawn, oldest first.
func (t *Turtle) Objects() []*scene.Object {
	return slices.Clone(t.objects)
}

// Attributes

// SetShape switches to a registered cursor shape. Unknown names are ignored.
func (t *Turtle) SetShape(name string) {
	g, ok := t.screen.shapes.Lookup(name)
	if !ok {
		Logger().Debug("shape: not registered", "name", name)
		return
	}
	t.pushState()
	st := t.state()
	st.Cursor = g
	st.CursorName = name
	t.updateParent(false, false)
}

// SetShapeGeometry uses g as the cursor. g is shared, not copied.
func (t *Turtle) SetShapeGeometry(g geom.Geometry) {
	t.pushState()
	st := t.state()
	st.Cursor = g
	st.CursorName = ""
	t.updateParent(false, false)
}

// Shape returns the cursor's registry name, empty for a custom geometry.
func (t *Turtle) Shape() string {
	return t.state().CursorName
}

func (t *Turtle) Cursor() geom.Geometry {
	return t.state().Cursor
}

// ShapeSize stretches the cursor and future stamps. Travel distances are unaffected.
func (t *Turtle) ShapeSize(sx, sy float64) {
	t.pushState()
	st := t.state()
	st.Transform.ScaleX = sx
	st.Transform.ScaleY = sy
	t.updateParent(false, false)
}

// SetSpeed sets the animation speed, 1 (slowest) to 10 (fastest);
// 0 turns animation off.
func (t *Turtle) SetSpeed(speed float64) {
	t.pushState()
	t.state().Speed = speed
}

func (t *Turtle) Speed() float64 {
	return t.state().Speed
}

// Tilt rotates the cursor by angle on top of its current tilt, without
// changing the heading.
func (t *Turtle) Tilt(angle float64) {
	t.pushState()
	t.state().Tilt += t.toRadians(angle)
	t.updateParent(false, false)
}

func (t *Turtle) SetTiltAngle(angle float64) {
	t.pushState()
	t.state().Tilt = t.toRadians(angle)
	t.updateParent(false, false)
}

func (t *Turtle) TiltAngle() float64 {
	return t.fromRadians(t.state().Tilt)
}

func (t *Turtle) SetShowTurtle(show bool) {
	t.pushState()
	t.state().Visible = show
	t.updateParent(false, false)
}

func (t *Turtle) ShowTurtle() { t.SetShowTurtle(true) }
func (t *Turtle) HideTurtle() { t.SetShowTurtle(false) }

func (t *Turtle) IsVisible() bool {
	return t.state().Visible
}

// SetPenState puts the pen down (true) or lifts it.
func (t *Turtle) SetPenState(down bool) {
	t.pushState()
	t.state().Tracing = down
}

func (t *Turtle) PenUp()   { t.SetPenState(false) }
func (t *Turtle) PenDown() { t.SetPenState(true) }

func (t *Turtle) IsDown() bool {
	return t.state().Tracing
}

func (t *Turtle) SetPenColor(c color.Color) {
	t.pushState()
	t.state().PenColor = c
}

func (t *Turtle) PenColor() color.Color {
	return t.state().PenColor
}

func (t *Turtle) SetFillColor(c color.Color) {
	t.pushState()
	t.state().FillColor = c
}

func (t *Turtle) FillColor() color.Color {
	return t.state().FillColor
}

// SetColor sets pen and fill color in one undoable step.
func (t *Turtle) SetColor(pen, fill color.Color) {
	t.pushState()
	st := t.state()
	st.PenColor = pen
	st.FillColor = fill
}

func (t *Turtle) SetWidth(pixels float64) {
	t.pushState()
	t.state().Width = pixels
}

func (t *Turtle) Width() float64 {
	return t.state().Width
}

// Degrees makes angles read and write in degrees (the default).
func (t *Turtle) Degrees() {
	t.pushState()
	t.state().Radians = false
}

// Radians makes angles read and write in radians.
func (t *Turtle) Radians() {
	t.pushState()
	t.state().Radians = true
}

// Reset removes everything this turtle drew, forgets its undo history and
// puts it back home with default attributes.
func (t *Turtle) Reset() {
	t.dropObjectsFrom(0)
	t.fillAccum = nil
	t.traveling = false
	t.states = []PenState{t.initialState()}
	t.updateParent(true, false)
}

// draw puts the transient parts of the turtle on an overlay: the
// in-flight travel line and the cursor.
func (t *Turtle) draw(c scene.Canvas, screen gg.Matrix) {
	st := t.state()
	if t.traveling && t.travelTracing {
		line := geom.Line{A: t.travel[0], B: t.travel[1], Width: st.Width}
		c.Draw(scene.NewGeometry(line, st.PenColor, geom.Identity()), screen)
	}
	if st.Visible && st.Cursor != nil {
		c.Draw(scene.NewStamp(st.Cursor, st.FillColor, st.PenColor, 1, t.cursorTransform(), -1), screen)
	}
}

func (t *Turtle) cursorTransform() geom.Transform {
	st := t.state()
	return st.Transform.Rotated(st.Tilt)
}

func (t *Turtle) addObject(obj *scene.Object) {
	t.screen.log.Append(obj)
	t.objects = append(t.objects, obj)
}

func (t *Turtle) addTraceLine(a, b geom.Point) {
	st := t.state()
	t.addObject(scene.NewGeometry(geom.Line{A: a, B: b, Width: st.Width}, st.PenColor, geom.Identity()))
}

// updateParent hands control to the screen so the change shows up and
// pending input runs.
func (t *Turtle) updateParent(invalidate, processInput bool) {
	if t.screen == nil {
		return
	}
	if t.screen.Update(invalidate, processInput) {
		t.screen.pause()
	}
}

// Angles

func (t *Turtle) toRadians(angle float64) float64 {
	if t.state().Radians {
		return angle
	}
	return geom.Radians(angle)
}

func (t *Turtle) fromRadians(rad float64) float64 {
	if t.state().Radians {
		return rad
	}
	return geom.Degrees(rad)
}

// Rotation is always counter-clockwise from east. Logo headings run
// clockwise from north.
func (t *Turtle) headingToRotation(heading float64) float64 {
	if t.screen.mode == ModeLogo {
		return math.Pi/2 - heading
	}
	return heading
}

func (t *Turtle) rotationToHeading(rot float64) float64 {
	if t.screen.mode == ModeLogo {
		return math.Pi/2 - rot
	}
	return rot
}

func (t *Turtle) homeRotation() float64 {
	return t.headingToRotation(0)
}
