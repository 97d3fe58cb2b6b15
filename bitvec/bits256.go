package bitvec

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/forestrie/go-cellstore/cells"
	"github.com/forestrie/go-cellstore/storage"
)

// PackBits is the number of bits stored per pack, and so per storage cell.
const PackBits = 256

const (
	packWords = PackBits / 64
	packBytes = PackBits / 8
)

// ErrBadPackSize indicates a stored pack cell whose payload is not exactly
// 32 bytes.
var ErrBadPackSize = errors.New("bitvec: pack cell must be 32 bytes")

// Bits256 is one 256-bit pack. The zero value has all bits unset.
//
// Bit numbering is LSB0: bit n lives in word n/64 at 1 << (n%64).
type Bits256 [packWords]uint64

// Get returns the bit at pos.
func (b *Bits256) Get(pos uint8) bool {
	return b[pos/64]&(1<<(pos%64)) != 0
}

// Set sets the bit at pos to 1.
func (b *Bits256) Set(pos uint8) {
	b[pos/64] |= 1 << (pos % 64)
}

// Reset sets the bit at pos to 0.
func (b *Bits256) Reset(pos uint8) {
	b[pos/64] &^= 1 << (pos % 64)
}

// Flip inverts the bit at pos.
func (b *Bits256) Flip(pos uint8) {
	b[pos/64] ^= 1 << (pos % 64)
}

// Put sets the bit at pos to value and returns the previous bit.
func (b *Bits256) Put(pos uint8, value bool) bool {
	prev := b.Get(pos)
	if value {
		b.Set(pos)
	} else {
		b.Reset(pos)
	}
	return prev
}

// OnesCount returns the number of set bits in the pack.
func (b *Bits256) OnesCount() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// packLayout is the fixed single-cell serialization of a pack: the four
// words in order, each big-endian. Packs do not go through the generic
// codec; the format is part of the storage layout.
type packLayout struct{}

// PackLayout returns the cell layout for Bits256 packs.
func PackLayout() cells.Layout[Bits256] {
	return packLayout{}
}

func (packLayout) Footprint() uint64 { return 1 }

func (packLayout) Pull(cur *cells.Cursor) (*Bits256, error) {
	key := cur.Next(1)
	data, err := cur.Store().Get(key)
	if errors.Is(err, storage.ErrCellNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pull pack %v: %w", key, err)
	}
	if len(data) != packBytes {
		return nil, fmt.Errorf("%w: %v holds %d bytes", ErrBadPackSize, key, len(data))
	}
	var pack Bits256
	for i := range pack {
		pack[i] = readU64BE(data[i*8:])
	}
	return &pack, nil
}

func (packLayout) Push(cur *cells.Cursor, value *Bits256) error {
	key := cur.Next(1)
	if value == nil {
		return cur.Store().Delete(key)
	}
	data := make([]byte, packBytes)
	for i, w := range value {
		writeU64BE(data[i*8:], w)
	}
	return cur.Store().Put(key, data)
}

func (packLayout) Clear(cur *cells.Cursor) error {
	return cur.Store().Delete(cur.Next(1))
}
