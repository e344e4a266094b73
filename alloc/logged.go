package alloc

import (
	"log/slog"

	"github.com/joshuapare/vectorkit/internal/logger"
)

// Logged reports every call on the wrapped allocator at debug level.
type Logged[T any] struct {
	next Allocator[T]
	log  *slog.Logger
}

// NewLogged wraps next. A nil log uses the process logger.
func NewLogged[T any](next Allocator[T], log *slog.Logger) *Logged[T] {
	if log == nil {
		log = logger.L
	}
	return &Logged[T]{next: next, log: log}
}

// Allocate forwards to the wrapped allocator.
func (l *Logged[T]) Allocate(n int) ([]T, error) {
	blk, err := l.next.Allocate(n)
	if err != nil {
		l.log.Debug("allocate failed", "n", n, "err", err)
		return nil, err
	}
	l.log.Debug("allocate", "n", n, "cap", cap(blk))
	return blk, nil
}

// Deallocate forwards to the wrapped allocator.
func (l *Logged[T]) Deallocate(block []T, n int) {
	l.log.Debug("deallocate", "n", n)
	l.next.Deallocate(block, n)
}

// Compile-time interface check
var _ Allocator[int] = (*Logged[int])(nil)
