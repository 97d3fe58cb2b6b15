package storage

import "sync"

// Stats describes the cumulative activity of a MemStore.
type Stats struct {
	Cells   int // number of live cells
	Reads   int // Get calls, including misses
	Writes  int // Put calls
	Deletes int // Delete calls
}

// MemStore is a map backed Store.
//
// It additionally counts every operation so tests can assert the exact set
// of store operations a write-back produced.
type MemStore struct {
	mu    sync.RWMutex
	cells map[Key][]byte
	stats Stats
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		cells: make(map[Key][]byte),
	}
}

// Get retrieves a copy of the cell payload at key.
func (m *MemStore) Get(key Key) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.Reads++
	value, ok := m.cells[key]
	if !ok {
		return nil, ErrCellNotFound
	}
	// Copy out so callers cannot mutate the stored payload.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Put stores a copy of value at key.
func (m *MemStore) Put(key Key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.Writes++
	stored := make([]byte, len(value))
	copy(stored, value)
	m.cells[key] = stored
	return nil
}

// Delete removes the cell at key. Idempotent.
func (m *MemStore) Delete(key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.Deletes++
	delete(m.cells, key)
	return nil
}

// Len returns the number of live cells.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}

// Stats returns a snapshot of the operation counters.
func (m *MemStore) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.stats
	s.Cells = len(m.cells)
	return s
}

// ResetStats zeroes the operation counters, leaving the cells in place.
func (m *MemStore) ResetStats() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = Stats{}
}
