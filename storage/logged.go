package storage

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logged decorates a Store with structured logging of every operation.
//
// Every Logged instance binds a fresh uuid to its logger so operations from
// distinct stores sharing one logger remain distinguishable.
type Logged struct {
	inner Store
	log   *zap.Logger
}

// NewLogged wraps inner so that each Get/Put/Delete emits a debug log line.
func NewLogged(inner Store, log *zap.Logger) *Logged {
	return &Logged{
		inner: inner,
		log:   log.With(zap.String("store", uuid.NewString())),
	}
}

func (l *Logged) Get(key Key) ([]byte, error) {
	value, err := l.inner.Get(key)
	switch {
	case errors.Is(err, ErrCellNotFound):
		l.log.Debug("get miss", zap.Stringer("key", key))
	case err != nil:
		l.log.Error("get failed", zap.Stringer("key", key), zap.Error(err))
	default:
		l.log.Debug("get", zap.Stringer("key", key), zap.Int("bytes", len(value)))
	}
	return value, err
}

func (l *Logged) Put(key Key, value []byte) error {
	err := l.inner.Put(key, value)
	if err != nil {
		l.log.Error("put failed", zap.Stringer("key", key), zap.Error(err))
		return err
	}
	l.log.Debug("put", zap.Stringer("key", key), zap.Int("bytes", len(value)))
	return nil
}

func (l *Logged) Delete(key Key) error {
	err := l.inner.Delete(key)
	if err != nil {
		l.log.Error("delete failed", zap.Stringer("key", key), zap.Error(err))
		return err
	}
	l.log.Debug("delete", zap.Stringer("key", key))
	return nil
}
