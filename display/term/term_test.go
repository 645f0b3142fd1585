package term

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"turtle/display/halfblock"
	"turtle/input"
)

func newSim(t *testing.T) (*Display, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	d, err := NewWithScreen(sim, 100, 100)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	sim.SetSize(10, 10)
	t.Cleanup(func() { _ = d.Close() })
	return d, sim
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want input.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), input.Rune('x'), true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.KeySpace, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyLeft, true},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), input.KeyNone, false},
	}
	for _, tt := range tests {
		got, ok := keyFromEvent(tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Errorf("keyFromEvent(%v) = %v, %v; want %v, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestPresentFillsCells(t *testing.T) {
	d, sim := newSim(t)
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for x := range 20 {
		for y := range 20 {
			img.Set(x, y, color.White)
		}
	}
	if err := d.Present(img); err != nil {
		t.Fatalf("Present: %v", err)
	}
	mainc, _, _, _ := sim.GetContent(3, 3)
	if mainc != halfblock.Glyph {
		t.Errorf("cell content = %q, want half block", mainc)
	}
}

func TestSizeIsInHalfBlockPixels(t *testing.T) {
	d, _ := newSim(t)
	w, h := d.Size()
	if w != 10 || h != 20 {
		t.Errorf("Size() = %d, %d; want 10, 20", w, h)
	}
}

func TestCloseEndsPoll(t *testing.T) {
	d, _ := newSim(t)
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !d.Closed() {
		t.Error("Closed() = false after Close")
	}
	if _, err := d.Poll(context.Background()); !errors.Is(err, input.ErrClosed) {
		t.Errorf("Poll err = %v, want ErrClosed", err)
	}
	if err := d.Present(image.NewRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, input.ErrClosed) {
		t.Errorf("Present after Close err = %v, want ErrClosed", err)
	}
}

func TestToTcell(t *testing.T) {
	got := toTcell(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	if want := tcell.NewRGBColor(10, 20, 30); got != want {
		t.Errorf("toTcell = %v, want %v", got, want)
	}
	if toTcell(nil) != tcell.ColorBlack {
		t.Error("nil color should map to black")
	}
}
