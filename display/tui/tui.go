// Package tui shows a screen inside a bubbletea program, drawing the canvas
// with half block characters styled through lipgloss.
package tui

import (
	"context"
	"image"
	"image/color"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"turtle/display/halfblock"
	"turtle/input"
)

// Display runs its bubbletea program on its own goroutine from New until
// Close or until the user quits with ctrl+c.
type Display struct {
	width, height int

	prog   *tea.Program
	events chan input.Event
	done   chan struct{}
	exited chan struct{}
	once   sync.Once

	mu         sync.Mutex
	cols, rows int
	runErr     error
}

type frameMsg struct{ img image.Image }

// New starts the program. width and height are the canvas size in pixels,
// used to map clicked cells back onto the canvas.
func New(width, height int, opts ...tea.ProgramOption) *Display {
	d := &Display{
		width:  width,
		height: height,
		events: make(chan input.Event, 256),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
		cols:   80,
		rows:   24,
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	d.prog = tea.NewProgram(model{d: d, cols: d.cols, rows: d.rows}, opts...)
	go func() {
		defer close(d.exited)
		_, err := d.prog.Run()
		d.mu.Lock()
		d.runErr = err
		d.mu.Unlock()
		d.once.Do(func() { close(d.done) })
	}()
	return d
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
	d.prog.Send(frameMsg{img: frame})
	return nil
}

// Size is the terminal in half block pixels.
func (d *Display) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cols, d.rows * 2
}

func (d *Display) Closed() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Close quits the program and waits for the terminal to be restored. It
// returns the program's own error, if it had one.
func (d *Display) Close() error {
	d.once.Do(func() { close(d.done) })
	d.prog.Quit()
	<-d.exited
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.runErr
}

func (d *Display) emit(ev input.Event) {
	select {
	case d.events <- ev:
	case <-d.done:
	}
}

type model struct {
	d          *Display
	cols, rows int
	frame      image.Image
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.d.mu.Lock()
		m.d.cols, m.d.rows = m.cols, m.rows
		m.d.mu.Unlock()
		return m, nil

	case frameMsg:
		m.frame = msg.img
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		k, ok := keyFromMsg(msg)
		if !ok {
			return m, nil
		}
		// Terminals never report releases.
		m.d.emit(input.Press(k))
		m.d.emit(input.Release(k))
		return m, nil

	case tea.MouseMsg:
		b, ok := buttonFromMsg(msg)
		if !ok {
			return m, nil
		}
		x, y := halfblock.ToPixel(msg.X, msg.Y, m.cols, m.rows, m.d.width, m.d.height)
		m.d.emit(input.Click(x, y, b))
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	grid := halfblock.Grid(m.frame, m.cols, m.rows)
	if grid == nil {
		return ""
	}
	var sb strings.Builder
	for r, row := range grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, row)
	}
	return sb.String()
}

// renderRow styles runs of identical cells together.
func renderRow(sb *strings.Builder, row []halfblock.Cell) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && sameCell(row[i], row[start]) {
			continue
		}
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex(row[start].Top))).
			Background(lipgloss.Color(hex(row[start].Bottom)))
		sb.WriteString(style.Render(strings.Repeat(string(halfblock.Glyph), i-start)))
		start = i
	}
}

func sameCell(a, b halfblock.Cell) bool {
	return hex(a.Top) == hex(b.Top) && hex(a.Bottom) == hex(b.Bottom)
}

func hex(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

var namedKeys = map[tea.KeyType]input.Key{
	tea.KeyEnter:     input.KeyEnter,
	tea.KeyEsc:       input.KeyEscape,
	tea.KeyBackspace: input.KeyBackspace,
	tea.KeyTab:       input.KeyTab,
	tea.KeyDelete:    input.KeyDelete,
	tea.KeyUp:        input.KeyUp,
	tea.KeyDown:      input.KeyDown,
	tea.KeyLeft:      input.KeyLeft,
	tea.KeyRight:     input.KeyRight,
	tea.KeyHome:      input.KeyHome,
	tea.KeyEnd:       input.KeyEnd,
	tea.KeyPgUp:      input.KeyPageUp,
	tea.KeyPgDown:    input.KeyPageDown,
	tea.KeySpace:     input.KeySpace,
}

func keyFromMsg(msg tea.KeyMsg) (input.Key, bool) {
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return input.KeyNone, false
		}
		return input.Rune(msg.Runes[0]), true
	}
	k, ok := namedKeys[msg.Type]
	return k, ok
}

func buttonFromMsg(msg tea.MouseMsg) (input.Button, bool) {
	switch msg.Type {
	case tea.MouseLeft:
		return input.ButtonLeft, true
	case tea.MouseMiddle:
		return input.ButtonMiddle, true
	case tea.MouseRight:
		return input.ButtonRight, true
	}
	return 0, false
}
