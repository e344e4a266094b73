package vector

import (
	"fmt"
	"iter"

	"github.com/joshuapare/vectorkit/alloc"
	"github.com/joshuapare/vectorkit/elem"
)

// Vector is a contiguous growable array.
//
// Storage comes from an alloc.Allocator and every slot transition goes
// through elem.Traits: block[:size] are live elements, block[size:] are
// uninitialized. block is nil exactly when the capacity is zero.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	block  []T // len(block) is the capacity
	size   int
	alloc  alloc.Allocator[T]
	traits elem.Traits[T]
}

// New returns an empty vector with no storage. A nil opts uses DefaultOptions.
func New[T any](opts *Options[T]) *Vector[T] {
	a, tr := opts.resolve()
	return &Vector[T]{alloc: a, traits: tr}
}

// NewFilled returns a vector holding count copies of value, with capacity
// exactly count.
func NewFilled[T any](count int, value T, opts *Options[T]) (*Vector[T], error) {
	v := New(opts)
	if err := v.AssignN(count, value); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// FromSlice returns a vector holding copies of values.
func FromSlice[T any](values []T, opts *Options[T]) (*Vector[T], error) {
	v := New(opts)
	if _, err := v.insertFunc(0, len(values), func(i int) T { return values[i] }); err != nil {
		v.Release()
		return nil, err
	}
	return v, nil
}

// FromSeq returns a vector holding copies of the elements of seq, which is
// read exactly once.
func FromSeq[T any](seq iter.Seq[T], opts *Options[T]) (*Vector[T], error) {
	v := New(opts)
	for x := range seq {
		if err := v.PushBack(x); err != nil {
			v.Release()
			return nil, err
		}
	}
	return v, nil
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int { return v.size }

// Cap returns the number of slots the current storage holds.
func (v *Vector[T]) Cap() int { return len(v.block) }

// Empty reports whether Size() == 0.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize returns the largest size the vector can be asked to hold.
func (v *Vector[T]) MaxSize() int { return alloc.MaxElems[T]() }

// Allocator returns the allocator the vector was built with.
func (v *Vector[T]) Allocator() alloc.Allocator[T] { return v.alloc }

// Traits returns the element traits the vector was built with.
func (v *Vector[T]) Traits() elem.Traits[T] { return v.traits }

// Data returns the live elements. The slice aliases the vector's storage and
// is invalidated by the same operations that invalidate iterators. Its
// capacity is clipped so that append cannot write into uninitialized slots.
func (v *Vector[T]) Data() []T {
	return v.block[:v.size:v.size]
}

// At returns the element at i, or ErrOutOfRange unless 0 <= i < Size().
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.size)
	}
	return v.block[i], nil
}

// Set replaces the element at i with a copy of x. The copy is built before
// the old element is destroyed, so a failed copy leaves the vector unchanged.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.size)
	}
	var tmp T
	if err := v.traits.Construct(&tmp, x); err != nil {
		return fmt.Errorf("vector: set %d: %w", i, err)
	}
	v.traits.Destroy(&v.block[i])
	v.block[i] = tmp
	return nil
}

// Index returns a pointer to the element at i without a bounds check against
// Size(). The result is undefined for i outside [0, Size()): it may panic or
// point at an uninitialized slot.
func (v *Vector[T]) Index(i int) *T {
	return &v.block[i]
}

// Front returns the first element, or ErrEmpty.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.block[0], nil
}

// Back returns the last element, or ErrEmpty.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.block[v.size-1], nil
}

// PushBack appends a copy of x, doubling the capacity when full.
// On failure the vector is unchanged.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.insertFunc(v.size, 1, func(int) T { return x })
	return err
}

// PopBack destroys the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.traits.Destroy(&v.block[v.size])
}

// Clear destroys every element and keeps the storage.
func (v *Vector[T]) Clear() {
	elem.DestroyAll(v.traits, v.block[:v.size])
	v.size = 0
}

// Release destroys every element and returns the storage to the allocator.
// The vector stays usable and empty. Calling Release again does nothing.
func (v *Vector[T]) Release() {
	v.Clear()
	v.releaseBlock()
}

// Swap exchanges the contents, storage, allocator and traits of v and o.
// Iterators keep referring to the same elements, now owned by the other vector.
func (v *Vector[T]) Swap(o *Vector[T]) {
	*v, *o = *o, *v
}

// All yields index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}

// Values yields elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.block[i]) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.block[i]) {
				return
			}
		}
	}
}
