package main

import (
	"errors"
	"math"
	"testing"
	"time"

	"turtle"
	"turtle/display/headless"
	"turtle/input"
	"turtle/scene"
)

func newControlled(t *testing.T, paste func() (string, error)) (*turtle.Screen, *turtle.Turtle) {
	t.Helper()
	cfg := turtle.DefaultConfig()
	cfg.Width, cfg.Height = 200, 200
	cfg.DelayMS = 0
	fastest := 0
	cfg.Speed = &fastest

	s, err := turtle.NewScreen(headless.New(200, 200), turtle.WithConfig(cfg), turtle.WithSleep(func(time.Duration) {}))
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}
	t.Cleanup(s.Bye)
	tt := turtle.NewTurtle(s)
	bindControls(s, tt, paste)
	return s, tt
}

func press(s *turtle.Screen, k input.Key) {
	s.PressKey(k)
	s.Update(false, true)
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestArrowKeysSteer(t *testing.T) {
	s, tt := newControlled(t, nil)

	press(s, input.KeyUp)
	if p := tt.Position(); !near(p.X, 10) || !near(p.Y, 0) {
		t.Fatalf("after up: %v, want (10, 0)", p)
	}
	press(s, input.Rune('K'))
	if p := tt.Position(); !near(p.X, 30) {
		t.Fatalf("after K: %v, want x=30", p)
	}
	press(s, input.KeyLeft)
	if h := tt.Heading(); !near(h, 15) {
		t.Errorf("heading = %v, want 15", h)
	}
	press(s, input.Rune('L'))
	if h := tt.Heading(); !near(h, 345) {
		t.Errorf("heading = %v, want 345", h)
	}
}

func TestPasteWritesFirstLine(t *testing.T) {
	s, tt := newControlled(t, func() (string, error) { return "  hello\nworld", nil })
	press(s, input.Rune('v'))

	objs := tt.Objects()
	if len(objs) != 1 {
		t.Fatalf("objects = %d, want 1", len(objs))
	}
	if objs[0].Kind != scene.KindText || objs[0].Text != "hello" {
		t.Errorf("object = %+v, want text hello", objs[0])
	}
}

func TestPasteErrorWritesNothing(t *testing.T) {
	s, tt := newControlled(t, func() (string, error) { return "", errors.New("no clipboard") })
	press(s, input.Rune('v'))
	if n := len(tt.Objects()); n != 0 {
		t.Errorf("objects = %d, want 0", n)
	}
}

func TestUndoKey(t *testing.T) {
	s, tt := newControlled(t, nil)
	press(s, input.KeyUp)
	press(s, input.Rune('u'))
	if p := tt.Position(); !near(p.X, 0) || !near(p.Y, 0) {
		t.Errorf("after undo: %v, want origin", p)
	}
	if n := len(tt.Objects()); n != 0 {
		t.Errorf("objects after undo = %d, want 0", n)
	}
}

func TestClearKeepsControls(t *testing.T) {
	s, tt := newControlled(t, nil)
	press(s, input.KeyUp)
	press(s, input.Rune('C'))
	if n := len(s.Scene()); n != 0 {
		t.Fatalf("scene after clear = %d records, want 0", n)
	}
	press(s, input.KeyUp)
	if p := tt.Position(); !near(p.X, 20) {
		t.Errorf("controls lost after clear: position %v", p)
	}
}

func TestQuitKey(t *testing.T) {
	s, _ := newControlled(t, nil)
	press(s, input.Rune('q'))
	if !s.IsClosed() {
		t.Error("screen still open after q")
	}
}

func TestMoveSpeed(t *testing.T) {
	if moveSpeed(input.Rune('h')) != 1 || moveSpeed(input.Rune('H')) != 2 || moveSpeed(input.KeyUp) != 1 {
		t.Error("unexpected move speeds")
	}
}
