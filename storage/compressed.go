package storage

import (
	"errors"

	"github.com/golang/snappy"
)

// Cell payload envelope tags. The first byte of every stored payload
// identifies how the remainder is encoded.
const (
	envelopeRaw    = 0x00
	envelopeSnappy = 0x01
)

// CompressThreshold is the payload size, in bytes, at which Compressed
// switches from raw to snappy-encoded cells.
const CompressThreshold = 64

var ErrBadEnvelope = errors.New("storage: unknown cell payload envelope")

// Compressed decorates a Store so that large cell payloads are stored
// snappy-compressed. Payloads below CompressThreshold are stored raw; the
// one byte envelope makes the two cases self describing.
type Compressed struct {
	inner Store
}

// NewCompressed wraps inner with transparent payload compression.
func NewCompressed(inner Store) *Compressed {
	return &Compressed{inner: inner}
}

func (c *Compressed) Get(key Key) ([]byte, error) {
	stored, err := c.inner.Get(key)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, ErrBadEnvelope
	}
	switch stored[0] {
	case envelopeRaw:
		return stored[1:], nil
	case envelopeSnappy:
		return snappy.Decode(nil, stored[1:])
	default:
		return nil, ErrBadEnvelope
	}
}

func (c *Compressed) Put(key Key, value []byte) error {
	if len(value) < CompressThreshold {
		return c.inner.Put(key, append([]byte{envelopeRaw}, value...))
	}
	encoded := snappy.Encode(nil, value)
	if len(encoded) >= len(value) {
		// Incompressible payload, store raw.
		return c.inner.Put(key, append([]byte{envelopeRaw}, value...))
	}
	return c.inner.Put(key, append([]byte{envelopeSnappy}, encoded...))
}

func (c *Compressed) Delete(key Key) error {
	return c.inner.Delete(key)
}
