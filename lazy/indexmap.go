package lazy

import (
	"fmt"
	"slices"

	"github.com/forestrie/go-cellstore/cells"
	"github.com/forestrie/go-cellstore/storage"
)

// IndexMapRegion is the key space reserved for one IndexMap: one full
// uint32 index range of element footprints. Composites that lay an
// IndexMap out via a cursor advance past the whole region, which keeps
// sibling fields collision free no matter how the map grows.
const IndexMapRegion = uint64(1) << 32

// IndexMap is the unbounded counterpart of Array: a lazy cache from uint32
// index to entry, element i backed by base.Add(i * footprint(T)).
//
// There is no occupancy bookkeeping; any index may be loaded, and absence
// is a valid loaded state. Growable collections (see the vec package) pair
// an IndexMap with a separately stored length.
type IndexMap[T any] struct {
	layout cells.Layout[T]
	store  storage.Store
	// key is nil for maps created purely in memory, which cannot lazily
	// load any element.
	key     *storage.Key
	entries map[uint32]*Entry[T]
}

// NewIndexMap creates an index map with no storage backing.
func NewIndexMap[T any](layout cells.Layout[T]) *IndexMap[T] {
	return &IndexMap[T]{
		layout:  layout,
		entries: make(map[uint32]*Entry[T]),
	}
}

// IndexMapAt creates an index map whose elements are backed by consecutive
// footprint(T) sized regions starting at key.
func IndexMapAt[T any](store storage.Store, layout cells.Layout[T], key storage.Key) *IndexMap[T] {
	return &IndexMap[T]{
		layout:  layout,
		store:   store,
		key:     &key,
		entries: make(map[uint32]*Entry[T]),
	}
}

// PullIndexMap is the pull-construction of an index map from a composite
// cursor: it consumes the reserved region and defers all reads.
func PullIndexMap[T any](cur *cells.Cursor, layout cells.Layout[T]) *IndexMap[T] {
	key := cur.Next(IndexMapRegion)
	return IndexMapAt(cur.Store(), layout, key)
}

// Footprint returns the reserved region size, independent of how many
// elements are cached or stored.
func (m *IndexMap[T]) Footprint() uint64 {
	return IndexMapRegion
}

// KeyAt returns the storage key of element at, or nil if the map has no
// storage backing.
func (m *IndexMap[T]) KeyAt(at uint32) *storage.Key {
	if m.key == nil {
		return nil
	}
	key := m.key.Add(uint64(at) * m.layout.Footprint())
	return &key
}

func (m *IndexMap[T]) loadThroughCache(at uint32) (*Entry[T], error) {
	if entry, ok := m.entries[at]; ok {
		return entry, nil
	}
	key := m.KeyAt(at)
	if key == nil {
		panic("lazy: index map has no storage backing to load from")
	}
	value, err := cells.PullAt(m.layout, m.store, *key)
	if err != nil {
		return nil, fmt.Errorf("load element %d at %v: %w", at, *key, err)
	}
	entry := NewEntry(value, Preserved)
	m.entries[at] = entry
	return entry, nil
}

// Get returns a copy of element at, loading it on first access. ok is
// false if the element is logically absent.
func (m *IndexMap[T]) Get(at uint32) (value T, ok bool, err error) {
	entry, err := m.loadThroughCache(at)
	if err != nil {
		return value, false, err
	}
	if entry.Value() == nil {
		return value, false, nil
	}
	return *entry.Value(), true, nil
}

// GetMut returns a mutable pointer to element at, loading it on first
// access and marking it for write-back. The result is nil if the element
// is logically absent.
func (m *IndexMap[T]) GetMut(at uint32) (*T, error) {
	entry, err := m.loadThroughCache(at)
	if err != nil {
		return nil, err
	}
	return entry.ValueMut(), nil
}

// Put overwrites element at without reading it first.
func (m *IndexMap[T]) Put(at uint32, value *T) {
	m.entries[at] = NewEntry(value, Mutated)
}

// PutGet replaces element at and returns the prior value, loading it on
// first access. Pass nil to remove the element.
func (m *IndexMap[T]) PutGet(at uint32, value *T) (*T, error) {
	entry, err := m.loadThroughCache(at)
	if err != nil {
		return nil, err
	}
	return entry.Put(value), nil
}

// Take removes and returns element at, loading it on first access.
func (m *IndexMap[T]) Take(at uint32) (*T, error) {
	entry, err := m.loadThroughCache(at)
	if err != nil {
		return nil, err
	}
	return entry.Take(), nil
}

// Swap exchanges the values of elements x and y. Both load through the
// cache before either entry is touched, so a failed load leaves the map
// unchanged. If both are absent nothing has to be swapped and neither
// entry is marked.
func (m *IndexMap[T]) Swap(x, y uint32) error {
	if x == y {
		return nil
	}
	ex, err := m.loadThroughCache(x)
	if err != nil {
		return err
	}
	ey, err := m.loadThroughCache(y)
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

// PushTo writes the map back at the cursor position. The cursor advances by
// the reserved region. Only Mutated entries issue store operations, in
// ascending index order so write-back is deterministic.
func (m *IndexMap[T]) PushTo(cur *cells.Cursor) error {
	base := cur.Next(IndexMapRegion)
	footprint := m.layout.Footprint()

	indices := make([]uint32, 0, len(m.entries))
	for at := range m.entries {
		indices = append(indices, at)
	}
	slices.Sort(indices)

	for _, at := range indices {
		entry := m.entries[at]
		if entry.State() != Mutated {
			continue
		}
		key := base.Add(uint64(at) * footprint)
		if entry.Value() == nil {
			if err := cells.ClearAt(m.layout, cur.Store(), key); err != nil {
				return fmt.Errorf("clear element %d: %w", at, err)
			}
			continue
		}
		if err := cells.PushAt(m.layout, cur.Store(), key, entry.Value()); err != nil {
			return fmt.Errorf("push element %d: %w", at, err)
		}
	}
	return nil
}
