package turtle

// Redraw brings the canvas up to date with the log and presents a frame
// with every turtle's cursor on top. Appends are drawn incrementally;
// anything else that touched the log, or invalidate, repaints from the
// background up. With a tracer set, only every n-th non-invalidating
// redraw presents. It reports whether a frame was presented.
func (s *Screen) Redraw(invalidate bool) bool {
	if !invalidate && s.redrawCounterMax > 1 {
		s.redrawCounter++
		if s.redrawCounter < s.redrawCounterMax {
			return false
		}
		s.redrawCounter = 0
	}

	m := s.ScreenTransform()
	dirty := s.log.TakeDirty()
	if dirty || invalidate || s.log.Len() < s.drawn {
		s.canvas.Clear(s.bg, s.bgPic)
		s.drawn = 0
	}
	for _, obj := range s.log.Since(s.drawn) {
		s.canvas.Draw(obj, m)
	}
	s.drawn = s.log.Len()

	overlay := s.canvas.Overlay()
	for _, t := range s.turtles {
		t.draw(overlay, m)
	}
	s.composite = overlay.Image()

	if !s.running.Load() {
		return true
	}
	if err := s.display.Present(s.composite); err != nil {
		Logger().Warn("present frame", "err", err)
	}
	return true
}
