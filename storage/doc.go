package storage

/*

# Cell storage backends

This package defines the key/value contract the lazy caching layer sits on
top of, and a small set of backends and decorators implementing it.

The model is one architecturally addressable "cell" per fixed-width key:

- a Key is an opaque 32 byte address
- keys support additive offset in cell units (`key.Add(n)`)
- a cell holds an arbitrary byte payload, or is absent

The Store interface is deliberately narrow (Get/Put/Delete). Everything the
higher layers need - footprints, cursors, serialization, caching, dirty
tracking - is built above it, never inside it.

Backends:

- MemStore: map backed, safe for concurrent use, counts operations so tests
  can assert exactly which cells a write-back touched.
- Logged: decorator emitting a structured log line per store operation.
- Compressed: decorator that snappy-compresses large cell payloads.

Decorators compose in the usual way:

	store := storage.NewLogged(storage.NewCompressed(storage.NewMemStore()), log)

*/
