package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggedPassThrough(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	store := NewLogged(NewMemStore(), zap.New(core))
	key := KeyOfUint64(7)

	require.NoError(t, store.Put(key, []byte("v")))
	got, err := store.Get(key)
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)
	require.NoError(t, store.Delete(key))
	_, err = store.Get(key)
	require.ErrorIs(t, err, ErrCellNotFound)

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	require.Equal(t, []string{"put", "get", "delete", "get miss"}, messages)

	// every line carries the store correlation id
	for _, entry := range logs.All() {
		require.Contains(t, entry.ContextMap(), "store")
	}
}
