package readcell

import "unsafe"

// Cell is an interior-mutable memory location: it can be set through any
// shared handle, no exclusivity required. Its surface is a strict superset
// of ReadCell's, which is what allows a *ReadCell derived via FromCell to
// coexist with the *Cell it aliases.
//
// Not safe for concurrent use.
type Cell[T any] struct {
	value T
}

// NewCell returns an owning Cell holding value.
func NewCell[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// FromMut reinterprets a plain pointer as a Cell covering the same
// location, with no copy.
//
// While the returned cell is in use, the location must not be read or
// written through p or any other handle not derived from the cell.
func FromMut[T any](p *T) *Cell[T] {
	return (*Cell[T])(unsafe.Pointer(p)) // #nosec: G103 // Cell[T] layout matches T
}

// Get returns a copy of the contained value.
//
// As with ReadCell.Get, T must have value semantics.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set stores value into the cell.
func (c *Cell[T]) Set(value T) {
	c.value = value
}

// Replace stores value into the cell and returns the previous value.
func (c *Cell[T]) Replace(value T) T {
	old := c.value
	c.value = value
	return old
}

// Swap exchanges the contents of two cells.
func (c *Cell[T]) Swap(other *Cell[T]) {
	if c == other {
		return
	}
	c.value, other.value = other.value, c.value
}

// Take returns the contained value, leaving the zero value of T in its
// place.
func (c *Cell[T]) Take() T {
	return c.Replace(*new(T))
}

// IntoInner unwraps the cell, returning the contained value.
//
// The cell must be an owning one and must not be used afterwards.
func (c *Cell[T]) IntoInner() T {
	return c.value
}

// Ptr returns a raw pointer to the underlying location.
func (c *Cell[T]) Ptr() unsafe.Pointer {
	return unsafe.Pointer(&c.value)
}

// GetMut returns a pointer granting read-write access to the contained
// value. The caller must hold the only reference to c.
func (c *Cell[T]) GetMut() *T {
	return &c.value
}
