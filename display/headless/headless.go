// Package headless is a display with no window. Events are injected by the
// caller and presented frames are kept for inspection. Tests and batch
// renders use it.
package headless

import (
	"context"
	"image"
	"sync"

	"turtle/input"
)

type Display struct {
	width, height int
	events        chan input.Event
	done          chan struct{}
	closeOnce     sync.Once

	mu       sync.Mutex
	frames   int
	last     image.Image
	keep     bool
	history  []image.Image
	presentF func(image.Image) error
}

type Option func(*Display)

// KeepFrames records every presented frame, not just the last.
func KeepFrames() Option {
	return func(d *Display) { d.keep = true }
}

// OnPresent runs fn for each frame; its error is returned from Present.
func OnPresent(fn func(image.Image) error) Option {
	return func(d *Display) { d.presentF = fn }
}

func New(width, height int, opts ...Option) *Display {
	d := &Display{
		width:  width,
		height: height,
		events: make(chan input.Event, 64),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Inject hands ev to the next Poll. It blocks while the buffer is full and
// drops the event once the display is closed.
func (d *Display) Inject(ev input.Event) {
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
	d.mu.Lock()
	d.frames++
	d.last = frame
	if d.keep {
		d.history = append(d.history, frame)
	}
	fn := d.presentF
	d.mu.Unlock()
	if fn != nil {
		return fn(frame)
	}
	return nil
}

func (d *Display) Size() (int, int) {
	return d.width, d.height
}

func (d *Display) Closed() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

func (d *Display) Close() error {
	d.closeOnce.Do(func() { close(d.done) })
	return nil
}

// Frames returns how many frames have been presented.
func (d *Display) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

func (d *Display) Last() image.Image {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// History returns the kept frames; empty unless KeepFrames was given.
func (d *Display) History() []image.Image {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]image.Image(nil), d.history...)
}
