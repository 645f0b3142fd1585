package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"turtle/input"
)

func newTestDisplay() *Display {
	return &Display{
		width:  100,
		height: 100,
		events: make(chan input.Event, 8),
		done:   make(chan struct{}),
	}
}

func TestKeyFromMsg(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want input.Key
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, input.Rune('q'), true},
		{tea.KeyMsg{Type: tea.KeyUp}, input.KeyUp, true},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, input.KeySpace, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, input.KeyNone, false},
		{tea.KeyMsg{Type: tea.KeyCtrlA}, input.KeyNone, false},
	}
	for _, tt := range tests {
		got, ok := keyFromMsg(tt.msg)
		if got != tt.want || ok != tt.ok {
			t.Errorf("keyFromMsg(%v) = %v, %v; want %v, %v", tt.msg, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyMsgEmitsPressAndRelease(t *testing.T) {
	d := newTestDisplay()
	m := model{d: d, cols: 10, rows: 10}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})

	first := <-d.events
	second := <-d.events
	if first.Kind != input.KeyPress || first.Key != input.Rune('w') {
		t.Errorf("first = %v, want press w", first)
	}
	if second.Kind != input.KeyRelease || second.Key != input.Rune('w') {
		t.Errorf("second = %v, want release w", second)
	}
}

func TestMouseMsgMapsToCanvasPixels(t *testing.T) {
	d := newTestDisplay()
	m := model{d: d, cols: 10, rows: 10}
	m.Update(tea.MouseMsg{X: 0, Y: 9, Type: tea.MouseLeft})

	ev := <-d.events
	if ev.Kind != input.MouseClick || ev.Button != input.ButtonLeft {
		t.Fatalf("event = %v, want left click", ev)
	}
	if ev.X != 5 || ev.Y != 95 {
		t.Errorf("click at (%d, %d), want (5, 95)", ev.X, ev.Y)
	}
}

func TestWindowSizeUpdatesSize(t *testing.T) {
	d := newTestDisplay()
	m := model{d: d}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	w, h := d.Size()
	if w != 120 || h != 80 {
		t.Errorf("Size() = %d, %d; want 120, 80", w, h)
	}
}

func TestViewDrawsHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := range 4 {
		for y := range 4 {
			img.Set(x, y, color.White)
		}
	}
	m := model{d: newTestDisplay(), cols: 4, rows: 2, frame: img}
	view := m.View()
	if got := strings.Count(view, "▀"); got != 8 {
		t.Errorf("view has %d half blocks, want 8", got)
	}
	if got := strings.Count(view, "\n"); got != 1 {
		t.Errorf("view has %d newlines, want 1", got)
	}
}
