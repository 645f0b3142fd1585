// Package input defines the normalized events a display hands to a screen.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// Key identifies a keyboard key. Printable keys use their rune value;
// named keys live above the Unicode range.
type Key int32

const (
	KeyNone Key = 0

	keyNamed Key = 0x110000 + iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace
)

var keyNames = map[Key]string{
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeySpace:     "space",
}

// Rune returns the key for a printable character. A space maps to KeySpace.
func Rune(r rune) Key {
	if r == ' ' {
		return KeySpace
	}
	return Key(r)
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k > KeyNone && k < keyNamed {
		return string(rune(k))
	}
	return fmt.Sprintf("key(%d)", int32(k))
}

// ParseKey resolves a key name as written in bindings ("up", "a", "space").
func ParseKey(name string) (Key, error) {
	lower := strings.ToLower(name)
	for k, n := range keyNames {
		if n == lower {
			return k, nil
		}
	}
	if r := []rune(name); len(r) == 1 {
		return Rune(r[0]), nil
	}
	return KeyNone, fmt.Errorf("unknown key %q", name)
}

type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight

	NumButtons = 3
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return fmt.Sprintf("button(%d)", uint8(b))
}

type Kind uint8

const (
	KeyPress Kind = iota
	KeyRelease
	MouseClick
)

// Event is one normalized input occurrence. X and Y are canvas pixel
// coordinates for mouse events, origin top-left.
type Event struct {
	Kind   Kind
	Key    Key
	Button Button
	X, Y   int
}

func Press(k Key) Event   { return Event{Kind: KeyPress, Key: k} }
func Release(k Key) Event { return Event{Kind: KeyRelease, Key: k} }

func Click(x, y int, b Button) Event {
	return Event{Kind: MouseClick, Button: b, X: x, Y: y}
}

func (e Event) String() string {
	switch e.Kind {
	case KeyPress:
		return "press " + e.Key.String()
	case KeyRelease:
		return "release " + e.Key.String()
	case MouseClick:
		return fmt.Sprintf("click %s at %d,%d", e.Button, e.X, e.Y)
	}
	return "unknown event"
}

// ErrClosed is returned by a display's Poll once it has been closed.
var ErrClosed = errors.New("input: display closed")
