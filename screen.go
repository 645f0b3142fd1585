package turtle

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fogleman/gg"

	"turtle/geom"
	"turtle/input"
	"turtle/raster"
	"turtle/scene"
	"turtle/shape"
)

var (
	ErrNoDisplay   = errors.New("turtle: no display")
	ErrInvalidSize = errors.New("turtle: invalid canvas size")
)

// Screen owns the scene log, the canvas and the input plumbing shared by
// the turtles attached to it.
//
// Two goroutines touch a Screen: the capture goroutine started by
// NewScreen, which only appends to the event queue, and the caller's
// goroutine, which drives every turtle and screen method. mu guards the
// event queue and the binding tables; nothing else is shared.
type Screen struct {
	display Display
	canvas  scene.Canvas
	shapes  *shape.Registry
	cfg     *Config

	log       scene.Log
	drawn     int
	composite image.Image

	bg    color.Color
	bgPic image.Image
	mode  ScreenMode
	delay time.Duration

	redrawCounter    int
	redrawCounterMax int

	turtles []*Turtle

	mu          sync.Mutex
	events      []input.Event
	keyBindings [2]map[input.Key][]KeyFunc
	clicks      [input.NumButtons][]MouseFunc
	timers      []*timerBinding

	running atomic.Bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	now   func() time.Time
	sleep func(time.Duration)
}

type screenOptions struct {
	cfg    *Config
	shapes *shape.Registry
	canvas scene.Canvas
	now    func() time.Time
	sleep  func(time.Duration)
}

// ScreenOption configures NewScreen.
type ScreenOption func(*screenOptions)

func WithConfig(cfg *Config) ScreenOption {
	return func(o *screenOptions) { o.cfg = cfg }
}

// WithShapes supplies the shape registry turtles resolve cursor names in.
func WithShapes(r *shape.Registry) ScreenOption {
	return func(o *screenOptions) { o.shapes = r }
}

// WithCanvas replaces the default raster canvas.
func WithCanvas(c scene.Canvas) ScreenOption {
	return func(o *screenOptions) { o.canvas = c }
}

// WithClock replaces time.Now for timer bindings.
func WithClock(now func() time.Time) ScreenOption {
	return func(o *screenOptions) { o.now = now }
}

// WithSleep replaces time.Sleep for animation frames and delays.
func WithSleep(sleep func(time.Duration)) ScreenOption {
	return func(o *screenOptions) { o.sleep = sleep }
}

// NewScreen attaches a screen to d and starts capturing its input. It
// fails if the display or the canvas cannot be set up.
func NewScreen(d Display, opts ...ScreenOption) (*Screen, error) {
	if d == nil {
		return nil, ErrNoDisplay
	}
	o := screenOptions{
		now:   time.Now,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg == nil {
		o.cfg = DefaultConfig()
	}
	if o.shapes == nil {
		o.shapes = shape.NewRegistry()
	}

	mode, err := o.cfg.ScreenMode()
	if err != nil {
		return nil, err
	}
	bg, err := o.cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}

	canvas := o.canvas
	if canvas == nil {
		if o.cfg.Width <= 0 || o.cfg.Height <= 0 {
			return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.cfg.Width, o.cfg.Height)
		}
		rc, err := raster.New(o.cfg.Width, o.cfg.Height)
		if err != nil {
			return nil, fmt.Errorf("create canvas: %w", err)
		}
		canvas = rc
	}

	s := &Screen{
		display:          d,
		canvas:           canvas,
		shapes:           o.shapes,
		cfg:              o.cfg,
		bg:               bg,
		mode:             mode,
		delay:            o.cfg.Delay(),
		redrawCounterMax: o.cfg.Tracer,
		now:              o.now,
		sleep:            o.sleep,
	}
	s.resetBindings()
	s.startCapture()
	s.Redraw(true)
	Logger().Info("screen opened", "title", o.cfg.Title, "width", o.cfg.Width, "height", o.cfg.Height, "mode", mode)
	return s, nil
}

// Registry

// Add attaches t. NewTurtle calls it; attaching twice is a no-op.
func (s *Screen) Add(t *Turtle) {
	if slices.Contains(s.turtles, t) {
		return
	}
	t.screen = s
	s.turtles = append(slices.Clip(s.turtles), t)
}

// Remove detaches t. Its records stay in the log. The turtle list is
// replaced rather than edited, so a redraw iterating the old list is unaffected.
func (s *Screen) Remove(t *Turtle) {
	s.turtles = slices.DeleteFunc(slices.Clone(s.turtles), func(o *Turtle) bool { return o == t })
}

func (s *Screen) Turtles() []*Turtle {
	return slices.Clone(s.turtles)
}

func (s *Screen) Shapes() *shape.Registry {
	return s.shapes
}

// Scene returns a copy of the record log in draw order.
func (s *Screen) Scene() []*scene.Object {
	return slices.Clone(s.log.All())
}

func (s *Screen) Canvas() scene.Canvas {
	return s.canvas
}

// Image returns the last presented frame: canvas plus turtle cursors.
func (s *Screen) Image() image.Image {
	return s.composite
}

// Background and mode

func (s *Screen) SetBgColor(c color.Color) {
	s.bg = c
	s.Redraw(true)
}

func (s *Screen) BgColor() color.Color {
	return s.bg
}

// SetBgPic shows img behind the drawing; it takes precedence over the
// background color. nil removes it.
func (s *Screen) SetBgPic(img image.Image) {
	s.bgPic = img
	s.Redraw(true)
}

func (s *Screen) BgPic() image.Image {
	return s.bgPic
}

// SetMode switches the heading convention and resets every turtle.
func (s *Screen) SetMode(m ScreenMode) {
	s.mode = m
	s.ResetScreen()
}

func (s *Screen) Mode() ScreenMode {
	return s.mode
}

// ClearScreen erases every drawing, drops all key, mouse and timer
// bindings and restores a white background. Turtles stay attached and keep
// their pen state.
func (s *Screen) ClearScreen() {
	s.log.Clear()
	for _, t := range s.turtles {
		t.forgetAll()
	}
	s.resetBindings()
	s.bg = defaultBackground
	s.bgPic = nil
	s.Redraw(true)
}

func (s *Screen) Clear() { s.ClearScreen() }

// ResetScreen resets every attached turtle. Bindings are kept.
func (s *Screen) ResetScreen() {
	for _, t := range slices.Clone(s.turtles) {
		t.Reset()
	}
	s.Redraw(true)
}

func (s *Screen) Reset() { s.ResetScreen() }

// Geometry

// ScreenSize returns the canvas size and the background color.
func (s *Screen) ScreenSize() (width, height int, bg color.Color) {
	w, h := s.canvas.Size()
	return w, h, s.bg
}

func (s *Screen) WindowWidth() int {
	w, _ := s.display.Size()
	return w
}

func (s *Screen) WindowHeight() int {
	_, h := s.display.Size()
	return h
}

// ScreenTransform maps world coordinates (origin centred, y up) to canvas pixels.
func (s *Screen) ScreenTransform() gg.Matrix {
	w, h := s.canvas.Size()
	return geom.Identity().
		At(geom.Point{X: float64(w) / 2, Y: float64(h) / 2}).
		Scaled(1, -1).
		Matrix()
}

func (s *Screen) toWorld(px, py int) (float64, float64) {
	w, h := s.canvas.Size()
	return float64(px) - float64(w)/2, float64(h)/2 - float64(py)
}

// Pacing

// Tracer presents only every countMax-th frame (0 or 1 presents all) and
// sets the per-command delay.
func (s *Screen) Tracer(countMax int, delay time.Duration) {
	if countMax < 0 {
		countMax = 0
	}
	s.redrawCounterMax = countMax
	s.redrawCounter = 0
	s.SetDelay(delay)
	s.Redraw(false)
}

func (s *Screen) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.delay = d
}

func (s *Screen) Delay() time.Duration {
	return s.delay
}

// frame is what an animation step yields to.
func (s *Screen) frame() {
	s.Update(false, true)
	s.sleep(frameInterval)
}

func (s *Screen) pause() {
	if s.delay > 0 {
		s.sleep(s.delay)
	}
}

// Lifecycle

// Mainloop keeps updating until the display closes, so bindings keep firing.
func (s *Screen) Mainloop() {
	for !s.IsClosed() {
		s.Update(false, true)
		s.sleep(frameInterval)
	}
}

// ExitOnClick closes the screen on the next left click, running the
// mainloop until then.
func (s *Screen) ExitOnClick() {
	s.OnClick(func(float64, float64) {
		if err := s.display.Close(); err != nil {
			Logger().Warn("close display", "err", err)
		}
	}, input.ButtonLeft)
	s.Mainloop()
	s.Bye()
}

func (s *Screen) IsClosed() bool {
	return !s.running.Load() || s.display.Closed()
}

// Bye stops input capture, waits for the capture goroutine to exit and
// closes the display. Later calls do nothing.
func (s *Screen) Bye() {
	if !s.stopCapture() {
		return
	}
	if err := s.display.Close(); err != nil {
		Logger().Warn("close display", "err", err)
	}
	Logger().Info("screen closed")
}
