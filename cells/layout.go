package cells

import "github.com/forestrie/go-cellstore/storage"

// Layout is the serialization contract a type provides to live in cell
// storage. The three operations must agree on the footprint: Pull and Push
// always advance their cursor by exactly Footprint cells, whether or not a
// value is present.
type Layout[T any] interface {
	// Footprint returns the number of storage cells one T occupies.
	Footprint() uint64

	// Pull reconstructs a value from the cursor position. A nil result with
	// a nil error means the cells are absent (a logically deleted value).
	Pull(cur *Cursor) (*T, error)

	// Push writes value at the cursor position. A nil value clears the full
	// footprint range instead.
	Push(cur *Cursor, value *T) error

	// Clear removes the full footprint range at the cursor position.
	Clear(cur *Cursor) error
}

// ClearRange deletes footprint consecutive cells starting at key.
func ClearRange(store storage.Store, key storage.Key, footprint uint64) error {
	for i := uint64(0); i < footprint; i++ {
		if err := store.Delete(key.Add(i)); err != nil {
			return err
		}
	}
	return nil
}

// PullAt pulls a value rooted at key, independent of any outer cursor.
func PullAt[T any](layout Layout[T], store storage.Store, key storage.Key) (*T, error) {
	return layout.Pull(NewCursor(store, key))
}

// PushAt pushes a value rooted at key, independent of any outer cursor.
func PushAt[T any](layout Layout[T], store storage.Store, key storage.Key, value *T) error {
	return layout.Push(NewCursor(store, key), value)
}

// ClearAt clears a value's footprint rooted at key.
func ClearAt[T any](layout Layout[T], store storage.Store, key storage.Key) error {
	return layout.Clear(NewCursor(store, key))
}
