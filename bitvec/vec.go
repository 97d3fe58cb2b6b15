package bitvec

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-cellstore/cells"
	"github.com/forestrie/go-cellstore/lazy"
	"github.com/forestrie/go-cellstore/storage"
	"github.com/forestrie/go-cellstore/vec"
)

var (
	// ErrIndexOutOfRange is returned for bit indices at or beyond the
	// length. Unlike the fixed-capacity lazy.Array, indexing past a bit
	// vector's logical length is an ordinary query outcome, not a panic.
	ErrIndexOutOfRange = errors.New("bitvec: bit index out of range")
	// ErrEmpty is returned by First, Last and Pop on an empty vector.
	ErrEmpty = errors.New("bitvec: empty")
)

// Vec is a growable bit sequence in cell storage.
//
// Storage layout: one cell for the bit length, then the pack vector (its
// own length cell followed by the pack region).
type Vec struct {
	length *lazy.Value[uint32]
	packs  *vec.Vec[Bits256]
}

// New creates an empty bit vector with no storage backing.
func New() *Vec {
	return &Vec{
		length: lazy.New(cells.CellOf[uint32](), 0),
		packs:  vec.New(PackLayout()),
	}
}

// At creates a bit vector backed by the region rooted at key.
func At(store storage.Store, key storage.Key) *Vec {
	return &Vec{
		length: lazy.At(store, cells.CellOf[uint32](), key),
		packs:  vec.At(store, PackLayout(), key.Add(1)),
	}
}

// Pull is the pull-construction of a bit vector from a composite cursor.
func Pull(cur *cells.Cursor) *Vec {
	return &Vec{
		length: lazy.PullValue(cur, cells.CellOf[uint32]()),
		packs:  vec.Pull(cur, PackLayout()),
	}
}

// Footprint returns the total reserved cell count.
func (v *Vec) Footprint() uint64 {
	return 1 + v.packs.Footprint()
}

// Len returns the length in bits.
func (v *Vec) Len() (uint32, error) {
	return v.length.Get()
}

// IsEmpty reports whether the vector holds no bits.
func (v *Vec) IsEmpty() (bool, error) {
	n, err := v.Len()
	return n == 0, err
}

// Capacity returns the allocated bit capacity. Always a multiple of
// PackBits and at least Len. The return is a uint64 because 2^32 bits of
// length can be backed by more than 2^32 bits of capacity.
func (v *Vec) Capacity() (uint64, error) {
	packCount, err := v.packs.Len()
	if err != nil {
		return 0, err
	}
	return uint64(packCount) * PackBits, nil
}

// splitIndex splits a bit index into its pack index and the bit position
// within the pack.
func splitIndex(at uint32) (packIndex uint32, pos uint8) {
	return at / PackBits, uint8(at % PackBits)
}

// checkIndex validates at against the current length.
func (v *Vec) checkIndex(at uint32) error {
	n, err := v.Len()
	if err != nil {
		return err
	}
	if at >= n {
		return fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, at, n)
	}
	return nil
}

// accessMut returns a mutable access to bit at, marking the owning pack for
// write-back. The index must already be validated.
func (v *Vec) accessMut(at uint32) (BitAccess, error) {
	packIndex, pos := splitIndex(at)
	pack, err := v.packs.GetMut(packIndex)
	if err != nil {
		return BitAccess{}, err
	}
	return BitAccess{pack: pack, pos: pos}, nil
}

// Get returns the bit at the given index. Indices at or beyond the length
// return ErrIndexOutOfRange.
func (v *Vec) Get(at uint32) (bool, error) {
	if err := v.checkIndex(at); err != nil {
		return false, err
	}
	packIndex, pos := splitIndex(at)
	pack, err := v.packs.Get(packIndex)
	if err != nil {
		return false, err
	}
	return pack.Get(pos), nil
}

// GetMut returns a mutable access to the bit at the given index. The owning
// pack is marked for write-back when the access is created.
func (v *Vec) GetMut(at uint32) (BitAccess, error) {
	if err := v.checkIndex(at); err != nil {
		return BitAccess{}, err
	}
	return v.accessMut(at)
}

// First returns the first bit, or ErrEmpty.
func (v *Vec) First() (bool, error) {
	empty, err := v.IsEmpty()
	if err != nil {
		return false, err
	}
	if empty {
		return false, ErrEmpty
	}
	return v.Get(0)
}

// FirstMut returns a mutable access to the first bit, or ErrEmpty.
func (v *Vec) FirstMut() (BitAccess, error) {
	empty, err := v.IsEmpty()
	if err != nil {
		return BitAccess{}, err
	}
	if empty {
		return BitAccess{}, ErrEmpty
	}
	return v.GetMut(0)
}

// Last returns the last bit, or ErrEmpty.
func (v *Vec) Last() (bool, error) {
	n, err := v.Len()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, ErrEmpty
	}
	return v.Get(n - 1)
}

// LastMut returns a mutable access to the last bit, or ErrEmpty.
func (v *Vec) LastMut() (BitAccess, error) {
	n, err := v.Len()
	if err != nil {
		return BitAccess{}, err
	}
	if n == 0 {
		return BitAccess{}, ErrEmpty
	}
	return v.GetMut(n - 1)
}

// Push appends a bit, growing by one zero-filled pack when the length has
// reached the capacity. Amortized one pack allocation per PackBits pushes.
func (v *Vec) Push(value bool) error {
	n, err := v.length.GetMut()
	if err != nil {
		return err
	}
	capacity, err := v.Capacity()
	if err != nil {
		return err
	}
	if uint64(*n) == capacity {
		// All packs are full, or there are none yet. New packs start
		// zeroed, so only a true bit needs setting.
		var pack Bits256
		if value {
			pack.Set(0)
		}
		if err := v.packs.Push(pack); err != nil {
			return err
		}
		*n++
		return nil
	}
	// The last pack has unused, zero-initialized bits; a false push is just
	// the length increment.
	*n++
	if value {
		access, err := v.accessMut(*n - 1)
		if err != nil {
			return err
		}
		access.Set()
	}
	return nil
}

// Pop removes and returns the last bit, zeroing it in its pack so unused
// pack bits stay zero. Packs are never released; capacity is monotone.
// Emptiness is decided through the read path, so a pop that returns
// ErrEmpty marks nothing for write-back.
func (v *Vec) Pop() (bool, error) {
	n, err := v.Len()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, ErrEmpty
	}
	access, err := v.accessMut(n - 1)
	if err != nil {
		return false, err
	}
	popped := access.Get()
	access.Reset()
	m, err := v.length.GetMut()
	if err != nil {
		return false, err
	}
	*m = n - 1
	return popped, nil
}

// PushTo writes the vector back at the cursor position, dirty state only:
// the length cell, then any mutated packs.
func (v *Vec) PushTo(cur *cells.Cursor) error {
	if err := v.length.PushTo(cur); err != nil {
		return err
	}
	return v.packs.PushTo(cur)
}
