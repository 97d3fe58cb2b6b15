package lazy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-cellstore/cells"
	"github.com/forestrie/go-cellstore/storage"
)

func TestValueRoundTrip(t *testing.T) {
	store := storage.NewMemStore()
	key := storage.KeyOfUint64(1)
	layout := cells.CellOf[uint32]()

	v := New(layout, uint32(11))
	require.NoError(t, v.PushTo(cells.NewCursor(store, key)))

	loaded := At(store, layout, key)
	got, err := loaded.Get()
	require.NoError(t, err)
	require.Equal(t, uint32(11), got)
}

func TestValueGetMutWritesBack(t *testing.T) {
	store := storage.NewMemStore()
	key := storage.KeyOfUint64(1)
	layout := cells.CellOf[uint32]()

	v := New(layout, uint32(11))
	require.NoError(t, v.PushTo(cells.NewCursor(store, key)))

	loaded := At(store, layout, key)
	p, err := loaded.GetMut()
	require.NoError(t, err)
	*p += 100
	require.NoError(t, loaded.PushTo(cells.NewCursor(store, key)))

	again := At(store, layout, key)
	got, err := again.Get()
	require.NoError(t, err)
	require.Equal(t, uint32(111), got)
}

func TestValueMissing(t *testing.T) {
	store := storage.NewMemStore()
	layout := cells.CellOf[uint32]()

	v := At(store, layout, storage.KeyOfUint64(404))
	_, err := v.Get()
	require.ErrorIs(t, err, ErrValueMissing)
	_, err = v.GetMut()
	require.ErrorIs(t, err, ErrValueMissing)
	require.Panics(t, func() { v.MustGet() })
}

func TestValueBehavesLikeOwned(t *testing.T) {
	store := storage.NewMemStore()
	key := storage.KeyOfUint64(1)
	layout := cells.CellOf[uint32]()

	eager := New(layout, uint32(42))
	require.NoError(t, eager.PushTo(cells.NewCursor(store, key)))
	loaded := At(store, layout, key)

	// comparison and display go through the loaded value transparently
	require.Equal(t, eager.MustGet(), loaded.MustGet())
	require.Equal(t, "42", fmt.Sprint(loaded))
	require.Equal(t, "42", loaded.String())
}

func TestValueSetSkipsRead(t *testing.T) {
	store := storage.NewMemStore()
	key := storage.KeyOfUint64(2)
	layout := cells.CellOf[uint32]()

	v := At(store, layout, key)
	v.Set(9)
	require.Zero(t, store.Stats().Reads)

	require.NoError(t, v.PushTo(cells.NewCursor(store, key)))
	got, err := At(store, layout, key).Get()
	require.NoError(t, err)
	require.Equal(t, uint32(9), got)
}
