package storage

import "errors"

// ErrCellNotFound is returned by Get for a key with no stored cell.
var ErrCellNotFound = errors.New("storage: cell not found")

// Store is the key/value contract consumed by the lazy caching layer.
//
// All operations are synchronous. Implementations must be safe for
// concurrent use; the lazy structures above this interface are not, and do
// their own single-writer discipline through ordinary Go ownership.
type Store interface {
	// Get retrieves the payload of the cell at key.
	// Returns ErrCellNotFound if the cell is absent.
	Get(key Key) ([]byte, error)

	// Put stores the payload at key, overwriting any existing cell.
	Put(key Key, value []byte) error

	// Delete removes the cell at key. Deleting an absent cell is not an
	// error.
	Delete(key Key) error
}
