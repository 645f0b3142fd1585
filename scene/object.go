// Package scene holds the drawable records turtles leave behind and the
// ordered log a screen replays to rebuild its canvas.
package scene

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"turtle/geom"
)

// Kind tags what an Object carries. It is fixed at construction.
type Kind uint8

const (
	// KindGeometry owns its geometry; nothing else refers to it.
	KindGeometry Kind = iota
	// KindStamp points at a cursor shape that belongs to a shape registry.
	// The geometry is shared with every other stamp of that shape.
	KindStamp
	// KindText is a string drawn axis-aligned at the transform's position.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindGeometry:
		return "geometry"
	case KindStamp:
		return "stamp"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Object is one drawable record. Once appended to a Log it is never mutated.
type Object struct {
	Kind     Kind
	Geometry geom.Geometry
	Text     string

	FillColor    color.Color
	OutlineColor color.Color
	// OutlineWidth <= 0 means no outline.
	OutlineWidth float64

	Transform geom.Transform

	// StampID is only meaningful for KindStamp.
	StampID int
}

func NewGeometry(g geom.Geometry, fill color.Color, t geom.Transform) *Object {
	return &Object{
		Kind:      KindGeometry,
		Geometry:  g,
		FillColor: fill,
		Transform: t,
		StampID:   -1,
	}
}

// NewOutlined is NewGeometry with an outline.
func NewOutlined(g geom.Geometry, fill, outline color.Color, width float64, t geom.Transform) *Object {
	o := NewGeometry(g, fill, t)
	o.OutlineColor = outline
	o.OutlineWidth = width
	return o
}

// NewStamp references g without copying it.
func NewStamp(g geom.Geometry, fill, outline color.Color, width float64, t geom.Transform, id int) *Object {
	return &Object{
		Kind:         KindStamp,
		Geometry:     g,
		FillColor:    fill,
		OutlineColor: outline,
		OutlineWidth: width,
		Transform:    t,
		StampID:      id,
	}
}

// NewText keeps only the position of t; text is never rotated or scaled.
func NewText(text string, fill color.Color, t geom.Transform) *Object {
	return &Object{
		Kind:      KindText,
		Text:      text,
		FillColor: fill,
		Transform: t.Translation(),
		StampID:   -1,
	}
}

func (o *Object) IsStamp() bool {
	return o.Kind == KindStamp
}

// Canvas is a pixel surface records can be drawn onto.
type Canvas interface {
	Size() (width, height int)
	// Clear fills the surface with bg, or with pic when pic is non-nil.
	Clear(bg color.Color, pic image.Image)
	// Draw renders obj; screen maps world coordinates to pixels.
	Draw(obj *Object, screen gg.Matrix)
	// Overlay returns an independent copy for transient drawing.
	Overlay() Canvas
	Image() image.Image
}
