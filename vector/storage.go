package vector

import (
	"fmt"
	"iter"
	"slices"

	"github.com/joshuapare/vectorkit/elem"
)

// Reserve ensures capacity for at least n elements. It does nothing when
// n <= Cap(). Growing copies every live element into new storage before the
// old elements are destroyed, so a failed copy or allocation leaves the
// vector exactly as it was. Growing invalidates all iterators.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	if n > v.MaxSize() {
		return fmt.Errorf("%w: reserve %d, max %d", ErrLength, n, v.MaxSize())
	}
	return v.reallocate(n)
}

// ShrinkToFit reduces the capacity to Size(), releasing the storage entirely
// when the vector is empty. Same guarantee as Reserve.
func (v *Vector[T]) ShrinkToFit() error {
	switch {
	case v.size == v.Cap():
		return nil
	case v.size == 0:
		v.releaseBlock()
		return nil
	default:
		return v.reallocate(v.size)
	}
}

// Resize sets the size to count, destroying trailing elements or appending
// zero values.
func (v *Vector[T]) Resize(count int) error {
	var zero T
	return v.ResizeFill(count, zero)
}

// ResizeFill sets the size to count, destroying trailing elements or
// appending copies of x. Growing reserves exactly count. If a copy fails the
// appended elements are destroyed and the size is unchanged; the capacity
// may already have grown.
func (v *Vector[T]) ResizeFill(count int, x T) error {
	if count < 0 {
		return fmt.Errorf("%w: negative size %d", ErrLength, count)
	}
	if count <= v.size {
		elem.DestroyAll(v.traits, v.block[count:v.size])
		v.size = count
		return nil
	}
	if err := v.Reserve(count); err != nil {
		return err
	}
	if err := elem.Fill(v.traits, v.block[v.size:count], x); err != nil {
		return fmt.Errorf("vector: resize: %w", err)
	}
	v.size = count
	return nil
}

// Clone returns an independent copy holding copies of every element, built
// with the same allocator and traits. The copy's capacity equals its size.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{alloc: v.alloc, traits: v.traits}
	if err := c.assignFunc(v.size, func(i int) T { return v.block[i] }); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// Assign replaces the contents of v with copies of the elements of o.
// The old elements are destroyed first; if a copy fails v is left empty.
// Assigning a vector to itself does nothing.
func (v *Vector[T]) Assign(o *Vector[T]) error {
	if v == o {
		return nil
	}
	return v.assignFunc(o.size, func(i int) T { return o.block[i] })
}

// AssignN replaces the contents with count copies of x. Same ordering and
// failure behaviour as Assign.
func (v *Vector[T]) AssignN(count int, x T) error {
	if count < 0 {
		return fmt.Errorf("%w: negative size %d", ErrLength, count)
	}
	return v.assignFunc(count, func(int) T { return x })
}

// AssignSeq replaces the contents with copies of the elements of seq. The
// sequence is drained before the old elements are destroyed, so it may read
// from v itself.
func (v *Vector[T]) AssignSeq(seq iter.Seq[T]) error {
	buf := slices.Collect(seq)
	return v.assignFunc(len(buf), func(i int) T { return buf[i] })
}

// assignFunc clears v, grows it to exactly n if needed, and constructs
// src(0..n-1). On failure v is empty.
func (v *Vector[T]) assignFunc(n int, src func(int) T) error {
	if n > v.MaxSize() {
		return fmt.Errorf("%w: assign %d, max %d", ErrLength, n, v.MaxSize())
	}
	v.Clear()
	if n > v.Cap() {
		if err := v.reallocate(n); err != nil {
			return err
		}
	}
	if err := elem.FillFunc(v.traits, v.block[:n], src); err != nil {
		return fmt.Errorf("vector: assign: %w", err)
	}
	v.size = n
	return nil
}

// reallocate moves the live elements into a fresh block of n slots.
// On failure the new block is released and v is untouched.
func (v *Vector[T]) reallocate(n int) error {
	blk, err := v.allocate(n)
	if err != nil {
		return err
	}
	if err := elem.CopyInto(v.traits, blk, v.block[:v.size]); err != nil {
		v.alloc.Deallocate(blk, n)
		return fmt.Errorf("vector: reallocate to %d: %w", n, err)
	}
	v.adopt(blk)
	return nil
}

// allocate obtains a block of exactly n slots.
func (v *Vector[T]) allocate(n int) ([]T, error) {
	blk, err := v.alloc.Allocate(n)
	if err != nil {
		return nil, fmt.Errorf("vector: allocate %d: %w", n, err)
	}
	return blk[:n], nil
}

// adopt destroys the live elements in the current block, releases it and
// installs blk. The caller sets size afterwards.
func (v *Vector[T]) adopt(blk []T) {
	elem.DestroyAll(v.traits, v.block[:v.size])
	v.releaseBlock()
	v.block = blk
}

// releaseBlock returns the storage to the allocator. Live elements must
// already be destroyed.
func (v *Vector[T]) releaseBlock() {
	if v.block == nil {
		return
	}
	v.alloc.Deallocate(v.block, len(v.block))
	v.block = nil
}
