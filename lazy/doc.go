package lazy

/*

# Lazy, dirty-tracked caches over cell storage

This package defers storage reads until first access and writes back only
what actually changed.

The building block is Entry: an optional cached value plus a Preserved or
Mutated tag. An entry loaded from the store starts Preserved; anything that
hands out a mutable path to the value, overwrites it, or removes it flips
the entry to Mutated. Write-back (PushTo) walks the cached entries and
issues store operations only for the Mutated ones, so untouched and
read-only slots cost nothing on flush.

Structures, smallest first:

- Cell[T]: a single slot, either eagerly resident or bound to a key and
  loaded on first access.
- Value[T]: the ergonomic handle over Cell for single values.
- Array[T]: a fixed chunk of 32 independently lazy slots, slot i living at
  base.Add(i * footprint).
- IndexMap[T]: the unbounded variant of Array, used as the element substrate
  of the growable vector collections.

Ownership discipline: the cache inside each structure is exclusively owned
by it. Shared getters copy the value out; mutable getters return a pointer
into the cache and mark the entry Mutated at acquisition, which keeps the
two-step "load then mutate in place" path free of aliasing tricks.

Structures constructed without a storage key (New*) live purely in memory:
their content flushes normally through PushTo, but any operation that would
need to lazily load panics, since there is nothing to load from.

*/
