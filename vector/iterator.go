package vector

import (
	"fmt"

	"github.com/joshuapare/vectorkit/internal/growth"
)

// Iterator is a position in a vector's storage. It owns nothing and stays
// valid only while the vector neither reallocates nor shifts elements across
// the position (see the invalidation notes on each mutator).
//
// Iterators are values: Next, Add and friends return new iterators.
// Comparing iterators from different vectors is meaningless. Get, Ptr and At
// are undefined outside the owning vector's live range.
type Iterator[T any] struct {
	block []T
	pos   int
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{block: v.block, pos: 0}
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{block: v.block, pos: v.size}
}

// IterAt returns an iterator to index i. i is not checked.
func (v *Vector[T]) IterAt(i int) Iterator[T] {
	return v.iterAt(i)
}

func (v *Vector[T]) iterAt(i int) Iterator[T] {
	return Iterator[T]{block: v.block, pos: i}
}

// checkPos verifies that it refers to v's current storage and that its index
// lies in [0, Size()] (allowEnd) or [0, Size()).
func (v *Vector[T]) checkPos(it Iterator[T], allowEnd bool) error {
	if !sameBlock(it.block, v.block) {
		return fmt.Errorf("%w: iterator does not refer to current storage", ErrInvalidIterator)
	}
	hi := v.size
	if !allowEnd {
		hi--
	}
	if !growth.CheckRange(it.pos, 0, hi) {
		return fmt.Errorf("%w: position %d outside [0, %d]", ErrInvalidIterator, it.pos, hi)
	}
	return nil
}

// sameBlock reports whether a and b view the same storage block.
func sameBlock[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// Pos returns the index the iterator refers to.
func (it Iterator[T]) Pos() int { return it.pos }

// Next returns the iterator one position forward.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns the iterator n positions forward (backward for negative n).
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns the iterator n positions back.
func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// Diff returns it - o in positions.
func (it Iterator[T]) Diff(o Iterator[T]) int { return it.pos - o.pos }

// Get returns the element at the iterator.
func (it Iterator[T]) Get() T { return it.block[it.pos] }

// Ptr returns a pointer to the element at the iterator.
func (it Iterator[T]) Ptr() *T { return &it.block[it.pos] }

// Set stores x at the iterator by plain assignment, bypassing the vector's
// Traits. Use Vector.Set when element copies must go through Construct.
func (it Iterator[T]) Set(x T) { it.block[it.pos] = x }

// At returns the element n positions from the iterator.
func (it Iterator[T]) At(n int) T { return it.block[it.pos+n] }

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it Iterator[T]) Compare(o Iterator[T]) int {
	switch {
	case it.pos < o.pos:
		return -1
	case it.pos > o.pos:
		return 1
	default:
		return 0
	}
}

// Equal reports whether both iterators refer to the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.pos == o.pos }

// Less reports whether it is before o.
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.pos < o.pos }

// LessEqual reports whether it is not after o.
func (it Iterator[T]) LessEqual(o Iterator[T]) bool { return it.pos <= o.pos }

// Greater reports whether it is after o.
func (it Iterator[T]) Greater(o Iterator[T]) bool { return it.pos > o.pos }

// GreaterEqual reports whether it is not before o.
func (it Iterator[T]) GreaterEqual(o Iterator[T]) bool { return it.pos >= o.pos }
