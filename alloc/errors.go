package alloc

import "errors"

var (
	// ErrNoSpace indicates that storage for the requested element count could not be obtained.
	ErrNoSpace = errors.New("alloc: cannot obtain storage")

	// ErrBadCount indicates a non-positive element count.
	ErrBadCount = errors.New("alloc: element count must be positive")

	// ErrDoubleFree indicates a block was released more times than it was allocated.
	ErrDoubleFree = errors.New("alloc: block released twice")

	// ErrForeignBlock indicates a block released to an allocator that never handed it out.
	ErrForeignBlock = errors.New("alloc: block not owned by allocator")

	// ErrSizeMismatch indicates a block released with a different element count than it was allocated with.
	ErrSizeMismatch = errors.New("alloc: release count differs from allocation count")
)
