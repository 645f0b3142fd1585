package turtle

import (
	"time"

	"turtle/geom"
)

// animDuration maps speed to travel time: 0 disables animation, 1 takes
// 300ms and 10 takes 30ms.
func animDuration(speed float64) time.Duration {
	if speed <= 0 {
		return 0
	}
	return time.Duration((11 - speed) / 10 * float64(maxAnimation))
}

func animSteps(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + frameInterval - 1) / frameInterval)
}

// travelTo moves the live state to dest. When animated, the intermediate
// frames are shown but never logged; the trace line and fill vertex for
// the whole segment are committed once at the end.
func (t *Turtle) travelTo(dest geom.Transform) {
	from := t.state().Transform
	if steps := animSteps(animDuration(t.state().Speed)); steps > 0 && from != dest {
		t.animate(from, dest, from.Position(), t.state().Tracing, steps)
	}

	st := t.state()
	st.Transform = dest
	a, b := from.Position(), dest.Position()
	if a != b {
		if st.Tracing {
			t.addTraceLine(a, b)
		}
		if st.Filling {
			t.fillAccum = append(t.fillAccum, b)
		}
	}
	t.updateParent(false, true)
}

// travelBack animates from a transform that was just undone back to the
// restored live state. The stack and the log are left alone; the in-flight
// line retracts toward the restored position when the restored pen is down.
func (t *Turtle) travelBack(from geom.Transform) {
	to := t.state().Transform
	steps := animSteps(animDuration(t.state().Speed))
	if steps == 0 || from == to {
		return
	}
	tracing := t.state().Tracing && from.Position() != to.Position()
	t.animate(from, to, to.Position(), tracing, steps)
	t.state().Transform = to
}

// animate walks the frames between from and to, yielding to the screen
// after each one. anchor is the fixed end of the in-flight line.
func (t *Turtle) animate(from, to geom.Transform, anchor geom.Point, tracing bool, steps int) {
	t.traveling = true
	t.travelTracing = tracing
	t.travel[0] = anchor
	for frame := range geom.Frames(from, to, steps) {
		t.state().Transform = frame
		t.travel[1] = frame.Position()
		t.screen.frame()
	}
	t.traveling = false
}
