package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/vectorkit/internal/growth"
)

// Allocator hands out and reclaims raw element storage. It never constructs
// or destroys elements; slots in a returned block hold the zero value and are
// treated as uninitialized by the caller.
//
// Implementations:
//   - Heap: Go heap, the default
//   - Pool: segregated free lists keyed by size class
//   - Limit: element budget wrapper
//   - Tracking: accounting and misuse detection wrapper
//   - Logged: debug logging wrapper
type Allocator[T any] interface {
	// Allocate returns a block with len == n. It fails with an error wrapping
	// ErrBadCount when n <= 0 and ErrNoSpace when storage cannot be obtained.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block previously returned by Allocate(n).
	// It must be called at most once per block and does not fail.
	Deallocate(block []T, n int)
}

// MaxElems returns the largest element count an allocator will be asked for.
func MaxElems[T any]() int {
	var zero T
	return growth.MaxElems(unsafe.Sizeof(zero))
}

// checkCount validates a request against the per-type ceiling.
func checkCount[T any](n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	if limit := MaxElems[T](); n > limit {
		return fmt.Errorf("%w: %d elements exceeds limit %d", ErrNoSpace, n, limit)
	}
	return nil
}
