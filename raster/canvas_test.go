package raster

import (
	"image/color"
	"testing"

	"github.com/fogleman/gg"

	"turtle/geom"
	"turtle/scene"
)

var red = color.RGBA{R: 255, A: 255}

func screenMatrix(w, h int) gg.Matrix {
	return geom.Identity().At(geom.Point{X: float64(w) / 2, Y: float64(h) / 2}).Scaled(1, -1).Matrix()
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestNew_InvalidSize(t *testing.T) {
	if _, err := New(0, 10); err == nil {
		t.Error("New(0, 10) succeeded")
	}
}

func TestCanvas_ClearAndFill(t *testing.T) {
	c, err := New(40, 40)
	if err != nil {
		t.Fatal(err)
	}
	c.Clear(color.White, nil)

	square := geom.Polygon{Points: []geom.Point{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}}}
	c.Draw(scene.NewGeometry(square, red, geom.Identity()), screenMatrix(40, 40))

	if got := rgba(c.Image().At(20, 20)); got != red {
		t.Errorf("centre pixel = %v, want red", got)
	}
	if got := rgba(c.Image().At(2, 2)); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner pixel = %v, want white", got)
	}
}

func TestCanvas_LineUsesWorldCoordinates(t *testing.T) {
	c, err := New(40, 40)
	if err != nil {
		t.Fatal(err)
	}
	c.Clear(color.White, nil)

	// World y grows upward, so a line at y=+10 lands on pixel row 10.
	l := geom.Line{A: geom.Point{X: -15, Y: 10}, B: geom.Point{X: 15, Y: 10}, Width: 3}
	c.Draw(scene.NewGeometry(l, red, geom.Identity()), screenMatrix(40, 40))

	if got := rgba(c.Image().At(20, 10)); got != red {
		t.Errorf("pixel on line = %v, want red", got)
	}
	if got := rgba(c.Image().At(20, 30)); got == red {
		t.Error("line drawn at mirrored row")
	}
}

func TestCanvas_OverlayIsIndependent(t *testing.T) {
	c, err := New(20, 20)
	if err != nil {
		t.Fatal(err)
	}
	c.Clear(color.White, nil)

	o := c.Overlay()
	o.Clear(red, nil)

	if got := rgba(c.Image().At(5, 5)); got == red {
		t.Error("drawing on overlay changed the base canvas")
	}
	if w, h := o.Size(); w != 20 || h != 20 {
		t.Errorf("overlay size = %dx%d", w, h)
	}
}
