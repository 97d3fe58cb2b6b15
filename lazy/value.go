package lazy

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-cellstore/cells"
	"github.com/forestrie/go-cellstore/storage"
)

// ErrValueMissing is returned when a Value's storage cell turns out to be
// absent. A Value wraps a mandatory T; absence means the composite was
// never pushed, or its key range was cleared externally.
var ErrValueMissing = errors.New("lazy: value cell is absent")

// Value is the ergonomic single-value handle over Cell. Use it for struct
// fields that should behave like a plain T but only hit the store when
// actually used.
type Value[T any] struct {
	cell *Cell[T]
}

// New creates an eagerly populated value with no storage backing.
func New[T any](layout cells.Layout[T], value T) *Value[T] {
	return &Value[T]{cell: NewCell(layout, &value)}
}

// At creates a true lazy value bound to key.
func At[T any](store storage.Store, layout cells.Layout[T], key storage.Key) *Value[T] {
	return &Value[T]{cell: CellAt(store, layout, key)}
}

// PullValue is the pull-construction of a lazy value from a cursor.
func PullValue[T any](cur *cells.Cursor, layout cells.Layout[T]) *Value[T] {
	return &Value[T]{cell: PullCell(cur, layout)}
}

// Footprint returns the cell count of the wrapped type.
func (v *Value[T]) Footprint() uint64 {
	return v.cell.Footprint()
}

// Get returns a copy of the value, loading it on first access.
// Returns ErrValueMissing if the backing cell is absent.
func (v *Value[T]) Get() (T, error) {
	value, ok, err := v.cell.Get()
	if err != nil {
		return value, err
	}
	if !ok {
		return value, ErrValueMissing
	}
	return value, nil
}

// GetMut returns a mutable pointer to the value, loading it on first
// access and marking it for write-back.
// Returns ErrValueMissing if the backing cell is absent.
func (v *Value[T]) GetMut() (*T, error) {
	value, err := v.cell.GetMut()
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, ErrValueMissing
	}
	return value, nil
}

// Set overwrites the value without reading the prior one.
func (v *Value[T]) Set(value T) {
	v.cell.Put(&value)
}

// MustGet is Get for contexts where a load failure is a programming error.
func (v *Value[T]) MustGet() T {
	value, err := v.Get()
	if err != nil {
		panic(err)
	}
	return value
}

// MustGetMut is GetMut for contexts where a load failure is a programming
// error.
func (v *Value[T]) MustGetMut() *T {
	value, err := v.GetMut()
	if err != nil {
		panic(err)
	}
	return value
}

// String formats the wrapped value, loading it if needed, so a lazy value
// prints indistinguishably from an owned T.
func (v *Value[T]) String() string {
	return fmt.Sprint(v.MustGet())
}

// PushTo writes the value back at the cursor position, dirty state only.
func (v *Value[T]) PushTo(cur *cells.Cursor) error {
	return v.cell.PushTo(cur)
}
