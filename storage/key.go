package storage

import (
	"encoding/binary"
	"encoding/hex"
)

// KeyBytes is the fixed width of a cell address.
const KeyBytes = 32

// Key is an opaque fixed-width cell address. Two keys address the same cell
// iff their byte representations are equal.
//
// The key space behaves as an unsigned 256 bit integer in big-endian byte
// order for the purposes of Add. Nothing else about the layer depends on
// that interpretation.
type Key [KeyBytes]byte

// KeyOfUint64 returns the key whose low 8 bytes encode n. Convenient for
// choosing distinct storage roots in tests and examples.
func KeyOfUint64(n uint64) Key {
	var k Key
	binary.BigEndian.PutUint64(k[KeyBytes-8:], n)
	return k
}

// Add returns the key offset from k by n storage cells. Offsets are measured
// in cell units, not bytes. The addition wraps at 2^256.
func (k Key) Add(n uint64) Key {
	out := k
	lo := binary.BigEndian.Uint64(out[KeyBytes-8:])
	sum := lo + n
	binary.BigEndian.PutUint64(out[KeyBytes-8:], sum)
	if sum >= lo {
		return out
	}
	// carry into the upper 24 bytes
	for i := KeyBytes - 9; i >= 0; i-- {
		out[i]++
		if out[i] != 0 {
			break
		}
	}
	return out
}

// String returns the full hex form of the key.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}
