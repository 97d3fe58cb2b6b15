package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-cellstore/cells"
	"github.com/forestrie/go-cellstore/storage"
)

func TestBits256Ops(t *testing.T) {
	var b Bits256

	require.False(t, b.Get(0))
	b.Set(0)
	require.True(t, b.Get(0))

	// word boundaries
	for _, pos := range []uint8{63, 64, 127, 128, 191, 192, 255} {
		require.False(t, b.Get(pos))
		b.Set(pos)
		require.True(t, b.Get(pos))
	}
	require.Equal(t, 8, b.OnesCount())

	b.Reset(64)
	require.False(t, b.Get(64))

	b.Flip(64)
	require.True(t, b.Get(64))
	b.Flip(64)
	require.False(t, b.Get(64))

	prev := b.Put(10, true)
	require.False(t, prev)
	prev = b.Put(10, false)
	require.True(t, prev)
	require.False(t, b.Get(10))
}

func TestPackLayoutRoundTrip(t *testing.T) {
	store := storage.NewMemStore()
	key := storage.KeyOfUint64(5)
	layout := PackLayout()

	var pack Bits256
	pack.Set(0)
	pack.Set(100)
	pack.Set(255)

	require.NoError(t, cells.PushAt(layout, store, key, &pack))

	// exactly one 32 byte cell
	require.Equal(t, 1, store.Len())
	data, err := store.Get(key)
	require.NoError(t, err)
	require.Len(t, data, 32)

	got, err := cells.PullAt(layout, store, key)
	require.NoError(t, err)
	require.Equal(t, pack, *got)
}

func TestPackLayoutAbsenceAndClear(t *testing.T) {
	store := storage.NewMemStore()
	key := storage.KeyOfUint64(5)
	layout := PackLayout()

	got, err := cells.PullAt(layout, store, key)
	require.NoError(t, err)
	require.Nil(t, got)

	var pack Bits256
	require.NoError(t, cells.PushAt(layout, store, key, &pack))
	require.NoError(t, cells.PushAt(layout, store, key, nil))
	require.Equal(t, 0, store.Len())
}

func TestPackLayoutBadSize(t *testing.T) {
	store := storage.NewMemStore()
	key := storage.KeyOfUint64(5)

	require.NoError(t, store.Put(key, []byte{1, 2, 3}))
	_, err := cells.PullAt(PackLayout(), store, key)
	require.ErrorIs(t, err, ErrBadPackSize)
}
