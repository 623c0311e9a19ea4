package readcell

import "cmp"

// Comparisons are by value, never by identity: both operands are read out
// and the copies compared. They live on free functions because the
// constraints cannot be stated on ReadCell's own type parameter.

// Equal reports whether two cells currently hold equal values.
func Equal[T comparable](a, b *ReadCell[T]) bool {
	return a.Get() == b.Get()
}

// Compare orders two cells by their current values, returning -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *ReadCell[T]) int {
	return cmp.Compare(a.Get(), b.Get())
}

// Less reports whether a's current value sorts before b's.
func Less[T cmp.Ordered](a, b *ReadCell[T]) bool {
	return cmp.Less(a.Get(), b.Get())
}
