package lazy

import (
	"fmt"

	"github.com/forestrie/go-cellstore/cells"
	"github.com/forestrie/go-cellstore/storage"
)

// Cell is a single-slot lazy cache over one storage region.
//
// A cell is either eagerly resident (NewCell) or bound to a key and loaded
// from the store on first access (CellAt, PullCell). At most one entry is
// ever cached, so loading is idempotent beyond the first access.
type Cell[T any] struct {
	layout cells.Layout[T]
	store  storage.Store
	// key is nil for cells created purely in memory. Such cells cannot
	// lazily load; attempting to is a programming error.
	key   *storage.Key
	entry *Entry[T]
}

// NewCell creates an eagerly resident cell with no storage backing. The
// value (or absence, for nil) is pending write-back from the start.
func NewCell[T any](layout cells.Layout[T], value *T) *Cell[T] {
	return &Cell[T]{
		layout: layout,
		entry:  NewEntry(value, Mutated),
	}
}

// CellAt creates a cell bound to key with an empty cache. Nothing is read
// until first access.
func CellAt[T any](store storage.Store, layout cells.Layout[T], key storage.Key) *Cell[T] {
	return &Cell[T]{
		layout: layout,
		store:  store,
		key:    &key,
	}
}

// PullCell is the pull-construction of a cell from a composite cursor: it
// consumes the cell's footprint and defers the actual read.
func PullCell[T any](cur *cells.Cursor, layout cells.Layout[T]) *Cell[T] {
	key := cur.Next(layout.Footprint())
	return CellAt(cur.Store(), layout, key)
}

// Footprint returns the cell count of the wrapped type.
func (c *Cell[T]) Footprint() uint64 {
	return c.layout.Footprint()
}

// Key returns the bound key, or nil for a purely in-memory cell.
func (c *Cell[T]) Key() *storage.Key {
	return c.key
}

// loadThroughCache returns the cached entry, populating it from the store
// on first access. Panics if the cell has no storage backing.
func (c *Cell[T]) loadThroughCache() (*Entry[T], error) {
	if c.entry != nil {
		return c.entry, nil
	}
	if c.key == nil {
		panic("lazy: cell has no storage backing to load from")
	}
	value, err := cells.PullAt(c.layout, c.store, *c.key)
	if err != nil {
		return nil, fmt.Errorf("load cell at %v: %w", *c.key, err)
	}
	c.entry = NewEntry(value, Preserved)
	return c.entry, nil
}

// Get returns a copy of the value, loading it on first access. ok is false
// if the slot is logically absent.
//
// Panics if the cell was created without storage backing and has no cached
// entry.
func (c *Cell[T]) Get() (value T, ok bool, err error) {
	entry, err := c.loadThroughCache()
	if err != nil {
		return value, false, err
	}
	if entry.Value() == nil {
		return value, false, nil
	}
	return *entry.Value(), true, nil
}

// GetMut returns a mutable pointer to the cached value, loading it on first
// access, and marks the entry Mutated. The result is nil if the slot is
// logically absent.
//
// Panics under the same conditions as Get.
func (c *Cell[T]) GetMut() (*T, error) {
	entry, err := c.loadThroughCache()
	if err != nil {
		return nil, err
	}
	return entry.ValueMut(), nil
}

// Put overwrites the slot without reading it first and discards any prior
// value. Use PutGet to observe what was replaced.
func (c *Cell[T]) Put(value *T) {
	c.entry = NewEntry(value, Mutated)
}

// PutGet replaces the value, loading through the cache first, and returns
// the prior value.
func (c *Cell[T]) PutGet(value *T) (*T, error) {
	entry, err := c.loadThroughCache()
	if err != nil {
		return nil, err
	}
	return entry.Put(value), nil
}

// Take removes and returns the value, loading through the cache first.
func (c *Cell[T]) Take() (*T, error) {
	entry, err := c.loadThroughCache()
	if err != nil {
		return nil, err
	}
	return entry.Take(), nil
}

// PushTo writes the cell back at the cursor position. The cursor always
// advances by the cell's footprint; store operations are issued only when
// the cached entry is Mutated. A Mutated absence clears the footprint
// range.
func (c *Cell[T]) PushTo(cur *cells.Cursor) error {
	key := cur.Next(c.layout.Footprint())
	if c.entry == nil || c.entry.State() != Mutated {
		return nil
	}
	if c.entry.Value() == nil {
		return cells.ClearAt(c.layout, cur.Store(), key)
	}
	return cells.PushAt(c.layout, cur.Store(), key, c.entry.Value())
}
