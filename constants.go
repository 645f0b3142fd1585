package turtle

import (
	"image/color"
	"time"
)

// Speed settings. Zero disables animation altogether.
const (
	SpeedFastest = 0
	SpeedFast    = 10
	SpeedNormal  = 6
	SpeedSlow    = 3
	SpeedSlowest = 1
)

// ScreenMode decides where heading zero points and which way headings grow.
type ScreenMode int

const (
	// ModeStandard: heading 0 is east, positive angles turn counter-clockwise.
	ModeStandard ScreenMode = iota
	// ModeLogo: heading 0 is north, positive angles turn clockwise.
	ModeLogo
)

func (m ScreenMode) String() string {
	if m == ModeLogo {
		return "logo"
	}
	return "standard"
}

const (
	defaultWidth      = 800
	defaultHeight     = 600
	defaultTitle      = "turtle"
	defaultUndoBuffer = 100
	defaultDelay      = 10 * time.Millisecond

	// frameInterval is the spacing of animation frames and mainloop ticks.
	frameInterval = 10 * time.Millisecond
	// maxAnimation is the travel time at the slowest speed.
	maxAnimation = 300 * time.Millisecond
)

var defaultBackground color.Color = color.White
