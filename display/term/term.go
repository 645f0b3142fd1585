// Package term shows a screen directly on a tcell terminal, two canvas
// pixels per character cell.
package term

import (
	"context"
	"image"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"

	"turtle/display/halfblock"
	"turtle/input"
)

type Display struct {
	screen        tcell.Screen
	width, height int

	events chan input.Event
	done   chan struct{}
	pumped chan struct{}
	once   sync.Once

	// buttons is only touched by the pump goroutine.
	buttons tcell.ButtonMask
}

// New takes over the terminal. width and height are the canvas size in
// pixels, used to map clicked cells back onto the canvas.
func New(width, height int) (*Display, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(s, width, height)
}

// NewWithScreen runs on an existing tcell screen, which it initializes.
func NewWithScreen(s tcell.Screen, width, height int) (*Display, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse()
	s.HideCursor()
	s.Clear()

	d := &Display{
		screen: s,
		width:  width,
		height: height,
		events: make(chan input.Event, 256),
		done:   make(chan struct{}),
		pumped: make(chan struct{}),
	}
	go d.pump()
	return d, nil
}

// pump forwards terminal events until the screen is finalized.
func (d *Display) pump() {
	defer close(d.pumped)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			d.once.Do(func() { close(d.done) })
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				d.once.Do(func() { close(d.done) })
				continue
			}
			if k, ok := keyFromEvent(ev); ok {
				// Terminals never report releases.
				d.emit(input.Press(k))
				d.emit(input.Release(k))
			}
		case *tcell.EventMouse:
			d.mouse(ev)
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// mouse emits a click for each button that went down since the last event.
func (d *Display) mouse(ev *tcell.EventMouse) {
	now := ev.Buttons()
	pressed := now &^ d.buttons
	d.buttons = now
	if pressed == 0 {
		return
	}
	cols, rows := d.screen.Size()
	cx, cy := ev.Position()
	x, y := halfblock.ToPixel(cx, cy, cols, rows, d.width, d.height)
	for _, m := range buttonMasks {
		if pressed&m.mask != 0 {
			d.emit(input.Click(x, y, m.button))
		}
	}
}

// tcell numbers the right button 2 and the middle one 3.
var buttonMasks = []struct {
	mask   tcell.ButtonMask
	button input.Button
}{
	{tcell.Button1, input.ButtonLeft},
	{tcell.Button3, input.ButtonMiddle},
	{tcell.Button2, input.ButtonRight},
}

func (d *Display) emit(ev input.Event) {
	select {
	case d.events <- ev:
	case <-d.done:
	}
}

func (d *Display) Poll(ctx context.Context) (input.Event, error) {
	select {
	case ev := <-d.events:
		return ev, nil
	case <-d.done:
		return input.Event{}, input.ErrClosed
	case <-ctx.Done():
		return input.Event{}, ctx.Err()
	}
}

func (d *Display) Present(frame image.Image) error {
	if d.Closed() {
		return input.ErrClosed
	}
	cols, rows := d.screen.Size()
	for r, row := range halfblock.Grid(frame, cols, rows) {
		for c, cell := range row {
			style := tcell.StyleDefault.
				Foreground(toTcell(cell.Top)).
				Background(toTcell(cell.Bottom))
			d.screen.SetContent(c, r, halfblock.Glyph, nil, style)
		}
	}
	d.screen.Show()
	return nil
}

// Size is the terminal in half block pixels.
func (d *Display) Size() (int, int) {
	cols, rows := d.screen.Size()
	return cols, rows * 2
}

func (d *Display) Closed() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Close restores the terminal and waits for the event pump to stop.
func (d *Display) Close() error {
	d.once.Do(func() { close(d.done) })
	select {
	case <-d.pumped:
	default:
		d.screen.Fini()
		<-d.pumped
	}
	return nil
}

func toTcell(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorBlack
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

var namedKeys = map[tcell.Key]input.Key{
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
}

func keyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		return input.Rune(ev.Rune()), true
	}
	k, ok := namedKeys[ev.Key()]
	return k, ok
}
