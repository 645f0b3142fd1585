package scene

import "slices"

// Log is the ordered record list of a screen. Appends are cheap to redraw;
// anything else (insert in the middle, removal, clear) marks the log dirty
// so the next redraw starts from a blank canvas.
type Log struct {
	objects []*Object
	dirty   bool
}

func (l *Log) Len() int {
	return len(l.objects)
}

// All returns the live slice. Callers must not modify it.
func (l *Log) All() []*Object {
	return l.objects
}

// Since returns the records appended after the first n.
func (l *Log) Since(n int) []*Object {
	if n < 0 {
		n = 0
	}
	if n >= len(l.objects) {
		return nil
	}
	return l.objects[n:]
}

func (l *Log) At(i int) *Object {
	return l.objects[i]
}

// Last returns the most recent record, or nil when the log is empty.
func (l *Log) Last() *Object {
	if len(l.objects) == 0 {
		return nil
	}
	return l.objects[len(l.objects)-1]
}

func (l *Log) Append(o *Object) {
	l.objects = append(l.objects, o)
}

// InsertAfter places o directly behind anchor. A nil anchor means the front
// of the log. If anchor is no longer present, o is appended.
func (l *Log) InsertAfter(anchor, o *Object) {
	at := 0
	if anchor != nil {
		at = l.Index(anchor) + 1
		if at == 0 {
			l.Append(o)
			return
		}
	}
	if at == len(l.objects) {
		l.Append(o)
		return
	}
	l.objects = slices.Insert(l.objects, at, o)
	l.dirty = true
}

// InsertBefore places o directly in front of before. A nil or missing
// before means the front of the log.
func (l *Log) InsertBefore(before, o *Object) {
	at := 0
	if before != nil {
		at = max(l.Index(before), 0)
	}
	if at == len(l.objects) {
		l.Append(o)
		return
	}
	l.objects = slices.Insert(l.objects, at, o)
	l.dirty = true
}

func (l *Log) Index(o *Object) int {
	return slices.Index(l.objects, o)
}

// Remove deletes o by identity. It reports whether o was present.
func (l *Log) Remove(o *Object) bool {
	i := l.Index(o)
	if i < 0 {
		return false
	}
	l.objects = slices.Delete(l.objects, i, i+1)
	l.dirty = true
	return true
}

func (l *Log) Clear() {
	clear(l.objects)
	l.objects = l.objects[:0]
	l.dirty = true
}

// TakeDirty reports whether the log changed other than by appending since
// the last call, and resets the flag.
func (l *Log) TakeDirty() bool {
	d := l.dirty
	l.dirty = false
	return d
}
