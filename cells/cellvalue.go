package cells

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-cellstore/storage"
)

// CellLayout is the footprint-1 Layout for any CBOR encodable type: one T
// per storage cell.
type CellLayout[T any] struct {
	codec Codec
}

// CellOf returns the single-cell layout for T using the deterministic
// default codec. The Layout return type lets call sites infer T.
func CellOf[T any]() Layout[T] {
	return CellLayout[T]{codec: defaultCodec}
}

// CellOfCodec returns the single-cell layout for T using an explicit codec.
func CellOfCodec[T any](codec Codec) Layout[T] {
	return CellLayout[T]{codec: codec}
}

func (CellLayout[T]) Footprint() uint64 { return 1 }

func (l CellLayout[T]) Pull(cur *Cursor) (*T, error) {
	key := cur.Next(1)
	data, err := cur.Store().Get(key)
	if errors.Is(err, storage.ErrCellNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pull cell %v: %w", key, err)
	}
	value := new(T)
	if err := l.codec.Unmarshal(data, value); err != nil {
		return nil, fmt.Errorf("decode cell %v: %w", key, err)
	}
	return value, nil
}

func (l CellLayout[T]) Push(cur *Cursor, value *T) error {
	key := cur.Next(1)
	if value == nil {
		return cur.Store().Delete(key)
	}
	data, err := l.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cell %v: %w", key, err)
	}
	return cur.Store().Put(key, data)
}

func (CellLayout[T]) Clear(cur *Cursor) error {
	return cur.Store().Delete(cur.Next(1))
}
