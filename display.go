package turtle

import (
	"context"
	"image"

	"turtle/input"
)

// Display is the window a screen shows its canvas in and reads input from.
// Poll is called only from the screen's capture goroutine; every other
// method only from the goroutine driving the screen.
type Display interface {
	// Poll blocks until the next input event, ctx is done, or the display
	// closes (input.ErrClosed). Mouse positions are canvas pixels.
	Poll(ctx context.Context) (input.Event, error)
	// Present shows a finished frame.
	Present(frame image.Image) error
	// Size returns the window size in the display's own units.
	Size() (width, height int)
	Closed() bool
	Close() error
}
