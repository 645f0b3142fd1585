package turtle

import (
	"image"
	"image/color"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/fogleman/gg"

	"turtle/display/headless"
	"turtle/geom"
	"turtle/scene"
)

// recordingCanvas counts what a screen asks of it. Overlay draws land on a
// separate recorder so they don't count against the base canvas.
type recordingCanvas struct {
	w, h   int
	clears int
	drawn  []*scene.Object
	img    *image.RGBA
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{w: w, h: h, img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordingCanvas) Clear(color.Color, image.Image) {
	c.clears++
	c.drawn = nil
}

func (c *recordingCanvas) Draw(obj *scene.Object, _ gg.Matrix) {
	c.drawn = append(c.drawn, obj)
}

func (c *recordingCanvas) Overlay() scene.Canvas {
	return newRecordingCanvas(c.w, c.h)
}

func (c *recordingCanvas) Image() image.Image { return c.img }

// fakeClock is a manually advanced clock for timer tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type sleepRecorder struct {
	calls []time.Duration
}

func (r *sleepRecorder) Sleep(d time.Duration) { r.calls = append(r.calls, d) }

type testScreen struct {
	*Screen
	display *headless.Display
	canvas  *recordingCanvas
	clock   *fakeClock
	sleeps  *sleepRecorder
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 200
	cfg.DelayMS = 0
	fastest := SpeedFastest
	cfg.Speed = &fastest
	return cfg
}

func newTestScreen(t *testing.T, cfg *Config) *testScreen {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	ts := &testScreen{
		display: headless.New(cfg.Width, cfg.Height),
		canvas:  newRecordingCanvas(cfg.Width, cfg.Height),
		clock:   &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		sleeps:  &sleepRecorder{},
	}
	s, err := NewScreen(ts.display,
		WithConfig(cfg),
		WithCanvas(ts.canvas),
		WithClock(ts.clock.Now),
		WithSleep(ts.sleeps.Sleep),
	)
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}
	t.Cleanup(s.Bye)
	ts.Screen = s
	return ts
}

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func nearPoint(a, b geom.Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

// lineEnds returns the world endpoints of a trace line record.
func lineEnds(t *testing.T, obj *scene.Object) (geom.Point, geom.Point) {
	t.Helper()
	l, ok := obj.Geometry.(geom.Line)
	if !ok {
		t.Fatalf("record is %T, want geom.Line", obj.Geometry)
	}
	return obj.Transform.Apply(l.A), obj.Transform.Apply(l.B)
}
