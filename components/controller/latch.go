package controller

// Latch reports when a value changes. The first value seen counts as a
// change.
type Latch[T comparable] struct {
	val T
	set bool
}

func (l *Latch[T]) Run(v T) bool {
	r := !l.set || v != l.val
	l.val = v
	l.set = true
	return r
}
