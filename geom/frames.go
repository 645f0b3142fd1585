package geom

import "iter"

// Frames yields the intermediate transforms of a movement from a to b in
// steps equal increments. The last value is b itself; a is never yielded.
// The sequence is lazy, so a caller that stops early leaves the rest unrun.
func Frames(a, b Transform, steps int) iter.Seq[Transform] {
	return func(yield func(Transform) bool) {
		if steps < 1 {
			steps = 1
		}
		for i := 1; i <= steps; i++ {
			if !yield(Lerp(a, b, float64(i)/float64(steps))) {
				return
			}
		}
	}
}
