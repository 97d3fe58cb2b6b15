// Package vec provides a growable, lazily loaded vector over cell storage.
//
// A Vec is a stored length paired with a lazy.IndexMap of elements. Every
// slot below the length holds a value; the map above the length is unused
// key space. Elements load independently on first access and only mutated
// slots are written back.
package vec

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-cellstore/cells"
	"github.com/forestrie/go-cellstore/lazy"
	"github.com/forestrie/go-cellstore/storage"
)

var (
	// ErrIndexOutOfRange is returned for indices at or beyond the length.
	ErrIndexOutOfRange = errors.New("vec: index out of range")
	// ErrEmpty is returned by Pop on an empty vector.
	ErrEmpty = errors.New("vec: empty")
	// ErrElementMissing indicates a slot below the length with no stored
	// value, which only happens if the backing key range was corrupted.
	ErrElementMissing = errors.New("vec: element below length is absent")
)

// Vec is a growable sequence of T in cell storage.
//
// Storage layout: one cell for the length, then the element region, element
// i at elems.Add(i * footprint(T)).
type Vec[T any] struct {
	length *lazy.Value[uint32]
	elems  *lazy.IndexMap[T]
}

// New creates an empty vector with no storage backing.
func New[T any](layout cells.Layout[T]) *Vec[T] {
	return &Vec[T]{
		length: lazy.New(cells.CellOf[uint32](), 0),
		elems:  lazy.NewIndexMap(layout),
	}
}

// At creates a vector backed by the region rooted at key.
func At[T any](store storage.Store, layout cells.Layout[T], key storage.Key) *Vec[T] {
	return &Vec[T]{
		length: lazy.At(store, cells.CellOf[uint32](), key),
		elems:  lazy.IndexMapAt(store, layout, key.Add(1)),
	}
}

// Pull is the pull-construction of a vector from a composite cursor.
func Pull[T any](cur *cells.Cursor, layout cells.Layout[T]) *Vec[T] {
	return &Vec[T]{
		length: lazy.PullValue(cur, cells.CellOf[uint32]()),
		elems:  lazy.PullIndexMap(cur, layout),
	}
}

// Footprint returns the total reserved cell count: the length cell plus the
// element region.
func (v *Vec[T]) Footprint() uint64 {
	return 1 + lazy.IndexMapRegion
}

// Len returns the number of elements.
func (v *Vec[T]) Len() (uint32, error) {
	return v.length.Get()
}

// IsEmpty reports whether the vector has no elements.
func (v *Vec[T]) IsEmpty() (bool, error) {
	n, err := v.Len()
	return n == 0, err
}

// Get returns a copy of element at.
func (v *Vec[T]) Get(at uint32) (value T, err error) {
	n, err := v.Len()
	if err != nil {
		return value, err
	}
	if at >= n {
		return value, fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, at, n)
	}
	value, ok, err := v.elems.Get(at)
	if err != nil {
		return value, err
	}
	if !ok {
		return value, fmt.Errorf("%w: index %d", ErrElementMissing, at)
	}
	return value, nil
}

// GetMut returns a mutable pointer to element at, marking the slot for
// write-back.
func (v *Vec[T]) GetMut(at uint32) (*T, error) {
	n, err := v.Len()
	if err != nil {
		return nil, err
	}
	if at >= n {
		return nil, fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, at, n)
	}
	value, err := v.elems.GetMut(at)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, fmt.Errorf("%w: index %d", ErrElementMissing, at)
	}
	return value, nil
}

// Push appends value.
func (v *Vec[T]) Push(value T) error {
	n, err := v.length.GetMut()
	if err != nil {
		return err
	}
	v.elems.Put(*n, &value)
	*n++
	return nil
}

// Pop removes and returns the last element. Emptiness is decided through
// the read path, so a pop that returns ErrEmpty marks nothing for
// write-back.
func (v *Vec[T]) Pop() (value T, err error) {
	n, err := v.Len()
	if err != nil {
		return value, err
	}
	if n == 0 {
		return value, ErrEmpty
	}
	last, err := v.elems.Take(n - 1)
	if err != nil {
		return value, err
	}
	if last == nil {
		return value, fmt.Errorf("%w: index %d", ErrElementMissing, n-1)
	}
	m, err := v.length.GetMut()
	if err != nil {
		return value, err
	}
	*m = n - 1
	return *last, nil
}

// Swap exchanges elements x and y. Both elements load before either slot
// is touched, so a failed load leaves the vector unchanged.
func (v *Vec[T]) Swap(x, y uint32) error {
	n, err := v.Len()
	if err != nil {
		return err
	}
	if x >= n || y >= n {
		return fmt.Errorf("%w: swap(%d, %d) with length %d", ErrIndexOutOfRange, x, y, n)
	}
	return v.elems.Swap(x, y)
}

// PushTo writes the vector back at the cursor position: the length cell
// first, then any mutated elements.
func (v *Vec[T]) PushTo(cur *cells.Cursor) error {
	if err := v.length.PushTo(cur); err != nil {
		return err
	}
	return v.elems.PushTo(cur)
}
