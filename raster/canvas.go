// Package raster draws scene records onto a pixel buffer with fogleman/gg.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"turtle/geom"
	"turtle/scene"
)

var _ scene.Canvas = (*Canvas)(nil)

const fontSize = 12.0

// Canvas is a fixed-size RGBA surface. It is not safe for concurrent use.
type Canvas struct {
	dc   *gg.Context
	face font.Face
}

func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	face, err := loadFace()
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	return &Canvas{dc: dc, face: face}, nil
}

func loadFace() (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Clear paints the background. A picture, when present, wins over the color
// and is drawn centred.
func (c *Canvas) Clear(bg color.Color, pic image.Image) {
	if bg == nil {
		bg = color.White
	}
	c.dc.SetColor(bg)
	c.dc.Clear()
	if pic != nil {
		c.dc.DrawImageAnchored(pic, c.dc.Width()/2, c.dc.Height()/2, 0.5, 0.5)
	}
}

// Draw renders one record. screen maps world coordinates to pixels.
func (c *Canvas) Draw(obj *scene.Object, screen gg.Matrix) {
	switch obj.Kind {
	case scene.KindText:
		c.drawText(obj, screen)
	default:
		c.drawGeometry(obj, screen)
	}
}

func (c *Canvas) drawGeometry(obj *scene.Object, screen gg.Matrix) {
	if obj.Geometry == nil {
		return
	}
	pts := obj.Geometry.Vertices()
	if len(pts) == 0 {
		return
	}
	m := obj.Transform.Then(screen)
	dc := c.dc

	dc.NewSubPath()
	for i, p := range pts {
		x, y := m.TransformPoint(p.X, p.Y)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}

	if !obj.Geometry.Closed() {
		width := obj.OutlineWidth
		if l, ok := obj.Geometry.(geom.Line); ok && l.Width > 0 {
			width = l.Width
		}
		if width <= 0 {
			width = 1
		}
		dc.SetColor(colorOr(obj.FillColor, color.Black))
		dc.SetLineWidth(width)
		dc.SetLineCapRound()
		dc.Stroke()
		return
	}

	dc.ClosePath()
	dc.SetColor(colorOr(obj.FillColor, color.Black))
	if obj.OutlineWidth > 0 {
		dc.FillPreserve()
		dc.SetColor(colorOr(obj.OutlineColor, color.Black))
		dc.SetLineWidth(obj.OutlineWidth)
		dc.SetLineJoinRound()
		dc.Stroke()
		return
	}
	dc.Fill()
}

// Text ignores rotation, scale and shear: only the anchor is mapped.
func (c *Canvas) drawText(obj *scene.Object, screen gg.Matrix) {
	x, y := screen.TransformPoint(obj.Transform.X, obj.Transform.Y)
	c.dc.SetColor(colorOr(obj.FillColor, color.Black))
	c.dc.DrawString(obj.Text, x, y)
}

// Overlay returns a copy of the canvas to draw transient things on
// (turtle cursors, the in-flight travel line) without touching this one.
func (c *Canvas) Overlay() scene.Canvas {
	src := c.dc.Image()
	cp := image.NewRGBA(src.Bounds())
	draw.Draw(cp, cp.Bounds(), src, src.Bounds().Min, draw.Src)
	dc := gg.NewContextForRGBA(cp)
	dc.SetFontFace(c.face)
	return &Canvas{dc: dc, face: c.face}
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func colorOr(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
