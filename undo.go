package turtle

import "slices"

// pushState snapshots the live state so the command about to run can be
// undone. Every mutating command calls it exactly once, before mutating.
func (t *Turtle) pushState() {
	next := *t.state()
	next.ObjectsBefore = len(t.objects)
	next.FillBefore = len(t.fillAccum)
	t.states = append(t.states, next)

	if over := len(t.states) - t.undoCap; over > 0 {
		t.states = slices.Delete(t.states, 0, over)
	}
}

// popState drops the live state and every record and fill vertex the
// dropped command produced. The bottom state is never popped.
func (t *Turtle) popState() bool {
	if len(t.states) <= 1 {
		return false
	}
	lastIndex := len(t.states) - 1
	popped := t.states[lastIndex]
	t.states = t.states[:lastIndex]

	t.dropObjectsFrom(popped.ObjectsBefore)
	if popped.FillBefore < len(t.fillAccum) {
		t.fillAccum = t.fillAccum[:popped.FillBefore]
	}
	return true
}

// Undo reverts the most recent command, animating the turtle back to where
// it was. It reports false when there is nothing left to undo.
func (t *Turtle) Undo() bool {
	if len(t.states) <= 1 {
		Logger().Debug("undo: nothing to undo")
		return false
	}
	from := t.state().Transform
	t.popState()
	t.travelBack(from)
	t.updateParent(true, false)
	return true
}

// SetUndoBuffer bounds the state stack to size entries, discarding the
// oldest first. Sizes below 1 are clamped to 1.
func (t *Turtle) SetUndoBuffer(size int) {
	if size < 1 {
		size = 1
	}
	t.undoCap = size
	if over := len(t.states) - size; over > 0 {
		t.states = slices.Delete(t.states, 0, over)
	}
}

// UndoBufferEntries returns the number of states on the stack, the live one included.
func (t *Turtle) UndoBufferEntries() int {
	return len(t.states)
}

// dropObjectsFrom removes the turtle's records from index n onward, both
// from its own list and from the screen log.
func (t *Turtle) dropObjectsFrom(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(t.objects) {
		return
	}
	for _, obj := range t.objects[n:] {
		t.screen.log.Remove(obj)
	}
	clear(t.objects[n:])
	t.objects = t.objects[:n]
}

// forget removes the record at index i of the turtle's list without
// touching the state stack's order. Counts that pointed past i shift down
// so later undos still remove the right records.
func (t *Turtle) forget(i int) {
	t.screen.log.Remove(t.objects[i])
	t.objects = slices.Delete(t.objects, i, i+1)
	for j := range t.states {
		if t.states[j].ObjectsBefore > i {
			t.states[j].ObjectsBefore--
		}
		if t.states[j].FillObjects > i {
			t.states[j].FillObjects--
		}
	}
}

// forgetAll is used when the screen clears the log under the turtle. A
// pending fill drops the vertices drawn before the clear and restarts at
// the current position.
func (t *Turtle) forgetAll() {
	clear(t.objects)
	t.objects = t.objects[:0]
	t.fillAccum = t.fillAccum[:0]
	if t.state().Filling {
		t.fillAccum = append(t.fillAccum, t.Position())
	}
	for j := range t.states {
		st := &t.states[j]
		st.ObjectsBefore = 0
		st.FillObjects = 0
		st.FillStart = 0
		st.FillBefore = min(st.FillBefore, len(t.fillAccum))
	}
}
