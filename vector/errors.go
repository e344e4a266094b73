package vector

import "errors"

var (
	// ErrOutOfRange indicates checked access to an index outside [0, Size()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrEmpty indicates Front, Back or Top on an empty container.
	ErrEmpty = errors.New("vector: container is empty")

	// ErrInvalidIterator indicates a position that does not belong to the
	// vector's current storage or lies outside the range the operation accepts.
	ErrInvalidIterator = errors.New("vector: invalid iterator position")

	// ErrLength indicates a requested size above MaxSize, or a negative one.
	ErrLength = errors.New("vector: length exceeds maximum size")
)
