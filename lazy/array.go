package lazy

import (
	"fmt"

	"github.com/forestrie/go-cellstore/cells"
	"github.com/forestrie/go-cellstore/storage"
)

// ArrayCapacity is the fixed slot count of an Array.
const ArrayCapacity = 32

// Array is a fixed chunk of 32 independently lazy slots.
//
// Slot i is backed by base.Add(i * footprint(T)). Slots populate into the
// cache independently and out of order; an index that was never loaded is
// unknown, not absent, until its first access. Write-back touches only the
// slots that were actually mutated.
//
// Indexing outside [0, ArrayCapacity) is a programming error and panics,
// like indexing past the end of a Go array.
type Array[T any] struct {
	layout cells.Layout[T]
	store  storage.Store
	// key is nil for arrays created purely in memory, which cannot lazily
	// load any slot.
	key     *storage.Key
	entries [ArrayCapacity]*Entry[T]
}

// NewArray creates an array with no storage backing. Slots written with Put
// flush normally; slots that were never written cannot be loaded and panic
// on access.
func NewArray[T any](layout cells.Layout[T]) *Array[T] {
	return &Array[T]{layout: layout}
}

// ArrayAt creates an array whose 32 slots are backed by consecutive
// footprint(T) sized regions starting at key.
func ArrayAt[T any](store storage.Store, layout cells.Layout[T], key storage.Key) *Array[T] {
	return &Array[T]{
		layout: layout,
		store:  store,
		key:    &key,
	}
}

// PullArray is the pull-construction of an array from a composite cursor:
// it consumes the full 32-slot footprint and defers all reads.
func PullArray[T any](cur *cells.Cursor, layout cells.Layout[T]) *Array[T] {
	key := cur.Next(ArrayCapacity * layout.Footprint())
	return ArrayAt(cur.Store(), layout, key)
}

// Footprint returns the total cell count of the array: 32 times the element
// footprint.
func (a *Array[T]) Footprint() uint64 {
	return ArrayCapacity * a.layout.Footprint()
}

// Capacity returns the fixed slot count.
func (a *Array[T]) Capacity() uint32 {
	return ArrayCapacity
}

// KeyAt returns the storage key of slot at, or nil if at is out of bounds
// or the array has no storage backing.
func (a *Array[T]) KeyAt(at uint32) *storage.Key {
	if at >= ArrayCapacity || a.key == nil {
		return nil
	}
	key := a.key.Add(uint64(at) * a.layout.Footprint())
	return &key
}

func checkBounds(at uint32) {
	if at >= ArrayCapacity {
		panic(fmt.Sprintf("lazy: array index %d out of bounds [0, %d)", at, ArrayCapacity))
	}
}

// loadThroughCache returns the entry for slot at, pulling it from the store
// on first access. Panics if at is out of bounds, or on a cache miss when
// the array has no storage backing.
func (a *Array[T]) loadThroughCache(at uint32) (*Entry[T], error) {
	checkBounds(at)
	if entry := a.entries[at]; entry != nil {
		return entry, nil
	}
	key := a.KeyAt(at)
	if key == nil {
		panic("lazy: array has no storage backing to load from")
	}
	value, err := cells.PullAt(a.layout, a.store, *key)
	if err != nil {
		return nil, fmt.Errorf("load array slot %d at %v: %w", at, *key, err)
	}
	entry := NewEntry(value, Preserved)
	a.entries[at] = entry
	return entry, nil
}

// Get returns a copy of the value at slot at, loading it on first access.
// ok is false if the slot is logically absent.
func (a *Array[T]) Get(at uint32) (value T, ok bool, err error) {
	entry, err := a.loadThroughCache(at)
	if err != nil {
		return value, false, err
	}
	if entry.Value() == nil {
		return value, false, nil
	}
	return *entry.Value(), true, nil
}

// GetMut returns a mutable pointer to the value at slot at, loading it on
// first access and marking the slot for write-back. The result is nil if
// the slot is logically absent.
func (a *Array[T]) GetMut(at uint32) (*T, error) {
	entry, err := a.loadThroughCache(at)
	if err != nil {
		return nil, err
	}
	return entry.ValueMut(), nil
}

// Put overwrites slot at without reading it first, discarding any prior
// value unread. Prefer this over PutGet when the old value is of no
// interest, since it never touches the store.
func (a *Array[T]) Put(at uint32, value *T) {
	checkBounds(at)
	a.entries[at] = NewEntry(value, Mutated)
}

// PutGet replaces the value at slot at and returns the prior value,
// loading it on first access. Pass nil to remove the element.
func (a *Array[T]) PutGet(at uint32, value *T) (*T, error) {
	entry, err := a.loadThroughCache(at)
	if err != nil {
		return nil, err
	}
	return entry.Put(value), nil
}

// Take removes and returns the value at slot at, loading it on first
// access.
func (a *Array[T]) Take(at uint32) (*T, error) {
	entry, err := a.loadThroughCache(at)
	if err != nil {
		return nil, err
	}
	return entry.Take(), nil
}

// Swap exchanges the values of slots x and y. Both load through the cache.
// If both are absent nothing has to be swapped and neither slot is marked,
// avoiding a pointless write-back of two untouched empty slots.
func (a *Array[T]) Swap(x, y uint32) error {
	checkBounds(x)
	checkBounds(y)
	if x == y {
		return nil
	}
	ex, err := a.loadThroughCache(x)
	if err != nil {
		return err
	}
	ey, err := a.loadThroughCache(y)
	if err != nil {
		return err
	}
	if ex.Value() == nil && ey.Value() == nil {
		return nil
	}
	ex.value, ey.value = ey.value, ex.value
	ex.state = Mutated
	ey.state = Mutated
	return nil
}

// PushTo writes the array back at the cursor position. The cursor always
// advances by the full array footprint. Slots never cached, and slots
// cached but Preserved, issue no store operations. A Mutated absence clears
// the slot's entire footprint range.
func (a *Array[T]) PushTo(cur *cells.Cursor) error {
	base := cur.Next(a.Footprint())
	footprint := a.layout.Footprint()
	for i, entry := range a.entries {
		if entry == nil || entry.State() != Mutated {
			continue
		}
		key := base.Add(uint64(i) * footprint)
		if entry.Value() == nil {
			if err := cells.ClearAt(a.layout, cur.Store(), key); err != nil {
				return fmt.Errorf("clear array slot %d: %w", i, err)
			}
			continue
		}
		if err := cells.PushAt(a.layout, cur.Store(), key, entry.Value()); err != nil {
			return fmt.Errorf("push array slot %d: %w", i, err)
		}
	}
	return nil
}
