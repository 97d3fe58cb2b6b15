package storage

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"
)

func TestCompressedSmallPayloadStoredRaw(t *testing.T) {
	inner := NewMemStore()
	store := NewCompressed(inner)
	key := KeyOfUint64(1)

	assert.NilError(t, store.Put(key, []byte("tiny")))

	stored, err := inner.Get(key)
	assert.NilError(t, err)
	assert.Equal(t, uint8(envelopeRaw), stored[0])

	got, err := store.Get(key)
	assert.NilError(t, err)
	assert.DeepEqual(t, []byte("tiny"), got)
}

func TestCompressedLargePayloadRoundTrip(t *testing.T) {
	inner := NewMemStore()
	store := NewCompressed(inner)
	key := KeyOfUint64(2)

	payload := bytes.Repeat([]byte("abcdefgh"), 64)
	assert.NilError(t, store.Put(key, payload))

	stored, err := inner.Get(key)
	assert.NilError(t, err)
	assert.Equal(t, uint8(envelopeSnappy), stored[0])
	assert.Assert(t, len(stored) < len(payload))

	got, err := store.Get(key)
	assert.NilError(t, err)
	assert.DeepEqual(t, payload, got)
}

func TestCompressedIncompressibleStoredRaw(t *testing.T) {
	inner := NewMemStore()
	store := NewCompressed(inner)
	key := KeyOfUint64(3)

	// high entropy payload above the threshold stays raw
	payload := make([]byte, 128)
	seed := uint32(0x9e3779b9)
	for i := range payload {
		seed = seed*1664525 + 1013904223
		payload[i] = byte(seed >> 24)
	}
	assert.NilError(t, store.Put(key, payload))

	stored, err := inner.Get(key)
	assert.NilError(t, err)
	assert.Equal(t, uint8(envelopeRaw), stored[0])

	got, err := store.Get(key)
	assert.NilError(t, err)
	assert.DeepEqual(t, payload, got)
}

func TestCompressedBadEnvelope(t *testing.T) {
	inner := NewMemStore()
	store := NewCompressed(inner)
	key := KeyOfUint64(4)

	assert.NilError(t, inner.Put(key, []byte{0x7f, 1, 2}))
	_, err := store.Get(key)
	assert.ErrorIs(t, err, ErrBadEnvelope)

	assert.NilError(t, inner.Put(key, nil))
	_, err = store.Get(key)
	assert.ErrorIs(t, err, ErrBadEnvelope)
}
