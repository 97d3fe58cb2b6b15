package cells

import "github.com/forestrie/go-cellstore/storage"

// Cursor is a mutable position in the key space, bound to the store being
// serialized to or from.
//
// Advancing the cursor by a type's footprint yields the key at which the
// next field of a composite begins.
type Cursor struct {
	store storage.Store
	next  storage.Key
}

// NewCursor returns a cursor positioned at root.
func NewCursor(store storage.Store, root storage.Key) *Cursor {
	return &Cursor{store: store, next: root}
}

// Store returns the store the cursor is bound to.
func (c *Cursor) Store() storage.Store {
	return c.store
}

// Next returns the current key and advances the cursor by footprint cells.
func (c *Cursor) Next(footprint uint64) storage.Key {
	key := c.next
	c.next = c.next.Add(footprint)
	return key
}
