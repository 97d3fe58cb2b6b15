package cells

/*

# Key space serialization for cell storage

This package maps typed values onto the flat key space of a storage.Store.

Every storable type has a footprint: the number of consecutive storage cells
one instance occupies. A composite value lays its fields out back to back,
so its footprint is the sum of its field footprints, in declaration order.

A Cursor is the mutable position used while serializing or deserializing a
composite: each field consumes exactly its footprint from the cursor, so two
sibling fields can never receive overlapping key ranges.

The Layout interface is the per-type trilogy every storable type provides:

- Footprint: the static cell count
- Pull: reconstruct a value (or absence) from the cursor position
- Push: write a value to the cursor position, or clear it for absence

CellOf gives a ready made footprint-1 Layout for any value encodable with
deterministic CBOR. Fixed-format types (see bitvec.Bits256) implement Layout
directly with encoding/binary instead.

*/
