// Package readcell provides a read-only counterpart to an interior-mutable
// cell.
//
// A ReadCell exposes only the non-mutating subset of the Cell surface, so a
// *ReadCell aliasing the same location as a *Cell or a plain pointer cannot
// introduce a second mutation path. That is what makes the zero-copy
// reinterpretations in this package (FromRef, FromCell, AsSliceOfCells,
// AsArrayOfCells) sound: ReadCell[T] and Cell[T] are single-field wrappers
// with the same size and alignment as T itself.
//
// Neither type is safe for concurrent use. Reads never synchronize; they are
// correct only because within one goroutine a read and a mutation through an
// aliasing handle are always sequenced, never concurrent.
package readcell

import "unsafe"

// ReadCell is a possibly mutable memory location that can only be read.
//
// The location may still change through an aliasing *Cell or plain pointer
// the ReadCell was derived from; Get observes such changes. ReadCell itself
// never exposes a set, swap or replace.
//
// Not safe for concurrent use.
type ReadCell[T any] struct {
	value T
}

// New returns an owning ReadCell holding value.
func New[T any](value T) *ReadCell[T] {
	return &ReadCell[T]{value: value}
}

// Zero returns an owning ReadCell holding the zero value of T.
func Zero[T any]() *ReadCell[T] {
	return new(ReadCell[T])
}

// Get returns a copy of the contained value.
//
// T must have value semantics: Get copies shallowly, so for pointer-shaped
// types (slices, maps, pointers) the copy shares the referenced data.
func (c *ReadCell[T]) Get() T {
	return c.value
}

// IntoInner unwraps the cell, returning the contained value.
//
// The cell must be an owning one and must not be used afterwards.
func (c *ReadCell[T]) IntoInner() T {
	return c.value
}

// Clone returns a new owning ReadCell holding a copy of the current value.
func (c *ReadCell[T]) Clone() *ReadCell[T] {
	return New(c.Get())
}

// Ptr returns a raw pointer to the underlying location.
//
// Dereferencing it is subject to the aliasing contract of whatever handles
// currently share the location; the pointer itself is informational.
func (c *ReadCell[T]) Ptr() unsafe.Pointer {
	return unsafe.Pointer(&c.value)
}

// GetMut returns a pointer granting read-write access to the contained
// value.
//
// The caller must hold the only reference to c, and no other handle to the
// aliased location may be used while the returned pointer is live. This is
// not checked: violating it breaks the read-only guarantee every other
// holder of the cell relies on.
func (c *ReadCell[T]) GetMut() *T {
	return &c.value
}
