package bitvec

/*

# Growable bit vector over cell storage

A Vec stores single bits packed 256 to a cell, so one storage cell holds
exactly one pack. The logical bit length is stored in its own cell; packs
live in a growable lazy vector and load independently on first use.

Bit index i maps to pack i/256, bit position i%256. Bit numbering inside a
pack is LSB0: bit 0 is the least significant bit of the first word.

Growth is chunked: push allocates a new zero-filled pack only when the
length reaches the current capacity, so capacity is always a multiple of
256 and key space placement stays predictable. Pop zeroes the popped bit
and never releases packs; capacity only grows for the life of the vector.

Mutation goes through BitAccess tokens. Acquiring one marks the owning pack
for write-back, so any bits changed through it are never lost on flush.

*/
