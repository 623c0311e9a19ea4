package readcell

import (
	"reflect"
	"unsafe"

	"github.com/go-faster/errors"
)

// FromRef reinterprets a plain pointer as a ReadCell covering the same
// location, with no copy.
//
// Sound because the view adds no mutation path: everything reachable from
// the result is read-only, same as reads through p itself.
func FromRef[T any](p *T) *ReadCell[T] {
	return (*ReadCell[T])(unsafe.Pointer(p)) // #nosec: G103 // ReadCell[T] layout matches T
}

// FromCell reinterprets a cell pointer as a ReadCell covering the same
// location, with no copy.
//
// The location may keep changing through c while the view is live; Get on
// the view observes those changes. Sound because the view's surface is a
// strict subset of the cell's.
func FromCell[T any](c *Cell[T]) *ReadCell[T] {
	return (*ReadCell[T])(unsafe.Pointer(c)) // #nosec: G103 // ReadCell[T] layout matches Cell[T]
}

// AsSliceOfCells distributes a view of a slice into per-element views.
//
// The returned slice shares the backing array of the slice held in c: same
// memory, same length, no copy. Valid because ReadCell[E] and E have the
// same size, so the two slice headers are interchangeable.
func AsSliceOfCells[E any](c *ReadCell[[]E]) []ReadCell[E] {
	return *(*[]ReadCell[E])(unsafe.Pointer(&c.value)) // #nosec: G103 // memory layout matches
}

// AsSliceOfMutCells is the Cell counterpart of AsSliceOfCells.
func AsSliceOfMutCells[E any](c *Cell[[]E]) []Cell[E] {
	return *(*[]Cell[E])(unsafe.Pointer(&c.value)) // #nosec: G103 // memory layout matches
}

// AsArrayOfCells distributes a view of an array into per-element views.
//
// A must be an array type with element type E; the returned slice covers
// the array's memory and has its exact length. Passing any other A is a
// programmer error and panics; use TryAsArrayOfCells to get a reported
// error instead.
//
// Array lengths are not expressible as type parameters, so the element
// type has to be named at the call site:
//
//	a := [3]int32{1, 2, 3}
//	cells := readcell.AsArrayOfCells[int32](readcell.FromRef(&a))
func AsArrayOfCells[E, A any](c *ReadCell[A]) []ReadCell[E] {
	cells, err := TryAsArrayOfCells[E](c)
	if err != nil {
		panic(err)
	}
	return cells
}

// TryAsArrayOfCells is AsArrayOfCells with the contract violation reported
// instead of panicking.
func TryAsArrayOfCells[E, A any](c *ReadCell[A]) ([]ReadCell[E], error) {
	n, err := arrayLen[E, A]()
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*ReadCell[E])(c.Ptr()), n), nil // #nosec: G103 // memory layout matches
}

// arrayLen checks that A is [N]E and returns N.
func arrayLen[E, A any]() (int, error) {
	at := reflect.TypeOf((*A)(nil)).Elem()
	if at.Kind() != reflect.Array {
		return 0, errors.Errorf("%s is not an array type", at)
	}
	if et := reflect.TypeOf((*E)(nil)).Elem(); at.Elem() != et {
		return 0, errors.Errorf("%s has %s elements, not %s", at, at.Elem(), et)
	}
	return at.Len(), nil
}
