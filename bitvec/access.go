package bitvec

// BitAccess is a mutable handle to one bit of a pack.
//
// It is only handed out through the vector's mutable paths, which mark the
// owning pack for write-back before the token escapes, so mutations made
// through it are always flushed.
type BitAccess struct {
	pack *Bits256
	pos  uint8
}

// Get returns the current bit.
func (a BitAccess) Get() bool {
	return a.pack.Get(a.pos)
}

// Set sets the bit to 1.
func (a BitAccess) Set() {
	a.pack.Set(a.pos)
}

// Reset sets the bit to 0.
func (a BitAccess) Reset() {
	a.pack.Reset(a.pos)
}

// Flip inverts the bit.
func (a BitAccess) Flip() {
	a.pack.Flip(a.pos)
}

// Put sets the bit to value and returns the previous bit.
func (a BitAccess) Put(value bool) bool {
	return a.pack.Put(a.pos, value)
}
