package main

import (
	"fmt"
	"log/slog"
	"time"

	"turtle"
	"turtle/input"
)

const (
	moveStep = 10.0
	turnStep = 15.0
)

// controls binds the keyboard and mouse to one turtle. Arrow keys and
// h/j/k/l move and turn; the capital letters move twice as far.
type controls struct {
	screen *turtle.Screen
	t      *turtle.Turtle
	paste  func() (string, error)
	saved  int
}

func bindControls(s *turtle.Screen, t *turtle.Turtle, paste func() (string, error)) *controls {
	c := &controls{screen: s, t: t, paste: paste}

	for _, k := range []input.Key{input.KeyUp, input.Rune('k'), input.Rune('K')} {
		s.OnKeyPress(func() { t.Forward(moveStep * moveSpeed(k)) }, k)
	}
	for _, k := range []input.Key{input.KeyDown, input.Rune('j'), input.Rune('J')} {
		s.OnKeyPress(func() { t.Backward(moveStep * moveSpeed(k)) }, k)
	}
	for _, k := range []input.Key{input.KeyLeft, input.Rune('h'), input.Rune('H')} {
		s.OnKeyPress(func() { t.Left(turnStep * moveSpeed(k)) }, k)
	}
	for _, k := range []input.Key{input.KeyRight, input.Rune('l'), input.Rune('L')} {
		s.OnKeyPress(func() { t.Right(turnStep * moveSpeed(k)) }, k)
	}

	s.OnKeyPress(c.togglePen, input.Rune('p'))
	s.OnKeyPress(c.toggleFill, input.Rune('f'))
	s.OnKeyPress(func() { t.Stamp() }, input.Rune('s'))
	s.OnKeyPress(func() { t.ClearStamps(-1) }, input.Rune('S'))
	s.OnKeyPress(func() { t.Undo() }, input.Rune('u'))
	s.OnKeyPress(func() { t.Dot(t.PenColor(), max(t.Width()+4, 2*t.Width())) }, input.Rune('.'))
	s.OnKeyPress(c.pasteText, input.Rune('v'))
	s.OnKeyPress(func() { c.save("png") }, input.Rune('w'))
	s.OnKeyPress(func() { c.save("txt") }, input.Rune('W'))
	s.OnKeyPress(func() { t.Reset() }, input.Rune('r'))
	s.OnKeyPress(c.clear, input.Rune('C'))
	s.OnKeyPress(c.quit, input.Rune('q'))
	s.OnKeyPress(c.quit, input.KeyEscape)

	s.OnClick(func(x, y float64) { t.GoTo(x, y) }, input.ButtonLeft)
	s.OnClick(func(x, y float64) { t.SetHeading(t.Towards(x, y)) }, input.ButtonRight)
	return c
}

func moveSpeed(k input.Key) float64 {
	switch k {
	case input.Rune('H'), input.Rune('J'), input.Rune('K'), input.Rune('L'):
		return 2
	default:
		return 1
	}
}

func (c *controls) togglePen() {
	if c.t.IsDown() {
		c.t.PenUp()
	} else {
		c.t.PenDown()
	}
}

func (c *controls) toggleFill() {
	c.t.Fill(!c.t.Filling())
}

func (c *controls) pasteText() {
	text, err := c.paste()
	if err != nil {
		slog.Warn("read clipboard", "err", err)
		return
	}
	if line := pasteLine(text); line != "" {
		c.t.Write(line)
	}
}

func (c *controls) save(ext string) {
	c.saved++
	name := fmt.Sprintf("turtle-%s-%d.%s", time.Now().Format("20060102-150405"), c.saved, ext)
	if err := c.screen.Save(name); err != nil {
		slog.Warn("save", "file", name, "err", err)
		return
	}
	slog.Info("saved", "file", name)
}

// clear wipes the screen, which also drops every binding, then binds the
// controls again.
func (c *controls) clear() {
	c.screen.ClearScreen()
	bindControls(c.screen, c.t, c.paste)
}

func (c *controls) quit() {
	c.screen.Bye()
}
