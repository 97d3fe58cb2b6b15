package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemStoreRoundTrip(t *testing.T) {
	store := NewMemStore()
	key := KeyOfUint64(1)

	_, err := store.Get(key)
	require.ErrorIs(t, err, ErrCellNotFound)

	require.NoError(t, store.Put(key, []byte("hello")))
	got, err := store.Get(key)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)

	require.NoError(t, store.Delete(key))
	_, err = store.Get(key)
	require.ErrorIs(t, err, ErrCellNotFound)

	// deleting an absent cell is not an error
	require.NoError(t, store.Delete(key))
}

func TestMemStoreCopiesPayloads(t *testing.T) {
	store := NewMemStore()
	key := KeyOfUint64(2)

	payload := []byte{1, 2, 3}
	require.NoError(t, store.Put(key, payload))
	payload[0] = 99

	got, err := store.Get(key)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)

	got[1] = 99
	again, err := store.Get(key)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, again)
}

func TestMemStoreStats(t *testing.T) {
	store := NewMemStore()

	require.NoError(t, store.Put(KeyOfUint64(1), []byte("a")))
	require.NoError(t, store.Put(KeyOfUint64(2), []byte("b")))
	_, err := store.Get(KeyOfUint64(1))
	require.NoError(t, err)
	_, err = store.Get(KeyOfUint64(9)) // miss still counts
	require.ErrorIs(t, err, ErrCellNotFound)
	require.NoError(t, store.Delete(KeyOfUint64(2)))

	s := store.Stats()
	require.Equal(t, Stats{Cells: 1, Reads: 2, Writes: 2, Deletes: 1}, s)
	require.Equal(t, 1, store.Len())

	store.ResetStats()
	s = store.Stats()
	require.Equal(t, Stats{Cells: 1}, s)
}
