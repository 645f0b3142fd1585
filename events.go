package turtle

import (
	"context"
	"errors"
	"slices"
	"time"

	"turtle/input"
)

const (
	onPress = iota
	onRelease
)

// startCapture runs the capture goroutine. It only ever appends to the
// event queue; dispatch happens in Update on the driving goroutine.
func (s *Screen) startCapture() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running.Store(true)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		Logger().Info("input capture started")
		for {
			ev, err := s.display.Poll(ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) && !errors.Is(err, input.ErrClosed) {
					Logger().Warn("input capture stopped", "err", err)
				} else {
					Logger().Info("input capture stopped")
				}
				return
			}
			s.enqueue(ev)
		}
	}()
}

// stopCapture reports whether this call did the stopping.
func (s *Screen) stopCapture() bool {
	if !s.running.CompareAndSwap(true, false) {
		return false
	}
	s.cancel()
	s.wg.Wait()
	return true
}

func (s *Screen) enqueue(ev input.Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

// PressKey queues a synthetic key press, handled on the next Update.
func (s *Screen) PressKey(k input.Key) { s.enqueue(input.Press(k)) }

// ReleaseKey queues a synthetic key release.
func (s *Screen) ReleaseKey(k input.Key) { s.enqueue(input.Release(k)) }

// Click queues a synthetic click at canvas pixel (x, y).
func (s *Screen) Click(x, y int, b input.Button) { s.enqueue(input.Click(x, y, b)) }

// Bindings

// OnKeyPress runs fn each time k is pressed. Several callbacks may share a
// key; they run in registration order.
func (s *Screen) OnKeyPress(fn KeyFunc, k input.Key) {
	s.bindKey(onPress, fn, k)
}

func (s *Screen) OnKeyRelease(fn KeyFunc, k input.Key) {
	s.bindKey(onRelease, fn, k)
}

func (s *Screen) bindKey(when int, fn KeyFunc, k input.Key) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.keyBindings[when][k] = append(s.keyBindings[when][k], fn)
	s.mu.Unlock()
}

// OnClick runs fn with world coordinates each time b is clicked.
func (s *Screen) OnClick(fn MouseFunc, b input.Button) {
	if fn == nil || int(b) >= input.NumButtons {
		return
	}
	s.mu.Lock()
	s.clicks[b] = append(s.clicks[b], fn)
	s.mu.Unlock()
}

// OnTimer runs fn every interval, checked on each Update.
func (s *Screen) OnTimer(fn TimerFunc, interval time.Duration) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.timers = append(s.timers, &timerBinding{fn: fn, interval: interval, last: s.now()})
	s.mu.Unlock()
}

func (s *Screen) resetBindings() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyBindings = [2]map[input.Key][]KeyFunc{{}, {}}
	s.clicks = [input.NumButtons][]MouseFunc{}
	s.timers = nil
}

// Update drains queued input, runs due timers and redraws. It returns
// whether a frame was presented.
func (s *Screen) Update(invalidate, processInput bool) bool {
	if processInput {
		s.processInput()
	}
	return s.Redraw(invalidate)
}

// processInput dispatches outside the lock, so callbacks may bind, queue
// or draw freely.
func (s *Screen) processInput() {
	s.mu.Lock()
	events := s.events
	s.events = nil
	s.mu.Unlock()

	for _, ev := range events {
		switch ev.Kind {
		case input.KeyPress, input.KeyRelease:
			when := onPress
			if ev.Kind == input.KeyRelease {
				when = onRelease
			}
			s.mu.Lock()
			fns := slices.Clone(s.keyBindings[when][ev.Key])
			s.mu.Unlock()
			for _, fn := range fns {
				s.safeCall("key", fn)
			}
		case input.MouseClick:
			if int(ev.Button) >= input.NumButtons {
				continue
			}
			x, y := s.toWorld(ev.X, ev.Y)
			s.mu.Lock()
			fns := slices.Clone(s.clicks[ev.Button])
			s.mu.Unlock()
			for _, fn := range fns {
				s.safeCall("click", func() { fn(x, y) })
			}
		}
	}

	s.runTimers()
}

func (s *Screen) runTimers() {
	now := s.now()
	var due []TimerFunc
	s.mu.Lock()
	for _, tb := range s.timers {
		if now.Sub(tb.last) >= tb.interval {
			tb.last = now
			due = append(due, tb.fn)
		}
	}
	s.mu.Unlock()
	for _, fn := range due {
		s.safeCall("timer", fn)
	}
}

func (s *Screen) safeCall(kind string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("callback panicked", "kind", kind, "panic", r)
		}
	}()
	fn()
}
