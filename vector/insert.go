package vector

import (
	"fmt"
	"iter"
	"slices"

	"github.com/joshuapare/vectorkit/elem"
	"github.com/joshuapare/vectorkit/internal/growth"
)

// Insert inserts a copy of x before pos and returns an iterator to it.
// pos must belong to v and lie in [Begin(), End()]; otherwise the error wraps
// ErrInvalidIterator. Inserting at End() is equivalent to PushBack.
//
// Guarantees:
//   - when the vector grows, or when pos == End(), a failure leaves the
//     vector unchanged
//   - otherwise elements are shifted in place; a failed shift leaves the
//     vector truncated to its elements before the first vacated slot
//
// Growing invalidates all iterators; shifting invalidates those at or after pos.
func (v *Vector[T]) Insert(pos Iterator[T], x T) (Iterator[T], error) {
	return v.InsertN(pos, 1, x)
}

// InsertN inserts count copies of x before pos. When the vector has to grow,
// the new capacity is the larger of twice the old one and the new size.
// Same rules as Insert.
func (v *Vector[T]) InsertN(pos Iterator[T], count int, x T) (Iterator[T], error) {
	if err := v.checkPos(pos, true); err != nil {
		return Iterator[T]{}, err
	}
	if count < 0 {
		return Iterator[T]{}, fmt.Errorf("%w: negative count %d", ErrLength, count)
	}
	return v.insertFunc(pos.pos, count, func(int) T { return x })
}

// InsertSlice inserts copies of values before pos, preserving their order.
// values may alias v's own elements. Same rules as Insert.
func (v *Vector[T]) InsertSlice(pos Iterator[T], values ...T) (Iterator[T], error) {
	if err := v.checkPos(pos, true); err != nil {
		return Iterator[T]{}, err
	}
	return v.insertFunc(pos.pos, len(values), func(i int) T { return values[i] })
}

// InsertSeq inserts copies of the elements of seq before pos. The sequence is
// read once, into a temporary buffer, before v is modified. Same rules as
// Insert.
func (v *Vector[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	buf := slices.Collect(seq)
	if err := v.checkPos(pos, true); err != nil {
		return Iterator[T]{}, err
	}
	return v.insertFunc(pos.pos, len(buf), func(i int) T { return buf[i] })
}

// insertFunc inserts src(0..count-1) at index pos.
func (v *Vector[T]) insertFunc(pos, count int, src func(int) T) (Iterator[T], error) {
	if count == 0 {
		return v.iterAt(pos), nil
	}
	need, ok := growth.Add(v.size, count)
	if !ok || need > v.MaxSize() {
		return Iterator[T]{}, fmt.Errorf("%w: size %d + %d, max %d", ErrLength, v.size, count, v.MaxSize())
	}

	var err error
	if need > v.Cap() {
		err = v.insertGrow(pos, count, need, src)
	} else {
		err = v.insertInPlace(pos, count, src)
	}
	if err != nil {
		return Iterator[T]{}, err
	}
	return v.iterAt(pos), nil
}

// insertGrow builds the result in a new block: the inserted values at their
// final offsets first, then the prefix and suffix around them. Nothing in the
// old block changes until the new one is complete.
func (v *Vector[T]) insertGrow(pos, count, need int, src func(int) T) error {
	newCap, ok := growth.Next(v.Cap(), need, v.MaxSize())
	if !ok {
		return fmt.Errorf("%w: grow to %d, max %d", ErrLength, need, v.MaxSize())
	}
	blk, err := v.allocate(newCap)
	if err != nil {
		return err
	}

	hole := blk[pos : pos+count]
	if err := elem.FillFunc(v.traits, hole, src); err != nil {
		v.alloc.Deallocate(blk, newCap)
		return fmt.Errorf("vector: insert: %w", err)
	}
	if err := elem.CopyInto(v.traits, blk[:pos], v.block[:pos]); err != nil {
		elem.DestroyAll(v.traits, hole)
		v.alloc.Deallocate(blk, newCap)
		return fmt.Errorf("vector: insert: %w", err)
	}
	if err := elem.CopyInto(v.traits, blk[pos+count:need], v.block[pos:v.size]); err != nil {
		elem.DestroyAll(v.traits, blk[:pos+count])
		v.alloc.Deallocate(blk, newCap)
		return fmt.Errorf("vector: insert: %w", err)
	}

	v.adopt(blk)
	v.size = need
	return nil
}

// insertInPlace inserts into existing capacity.
//
// At the end the values are constructed straight into the tail. In the
// middle they are first constructed into a scratch buffer (so src may read
// elements about to move), then the tail is shifted right highest index
// first, and finally the scratch values are moved into the hole.
func (v *Vector[T]) insertInPlace(pos, count int, src func(int) T) error {
	end := v.size
	if pos == end {
		if err := elem.FillFunc(v.traits, v.block[end:end+count], src); err != nil {
			return fmt.Errorf("vector: insert: %w", err)
		}
		v.size = end + count
		return nil
	}

	scratch := make([]T, count)
	if err := elem.FillFunc(v.traits, scratch, src); err != nil {
		return fmt.Errorf("vector: insert: %w", err)
	}

	for i := end - 1; i >= pos; i-- {
		if err := v.traits.Construct(&v.block[i+count], v.block[i]); err != nil {
			// [0, i] are live and unmoved, [i+count+1, end+count) were moved.
			elem.DestroyAll(v.traits, scratch)
			elem.DestroyAll(v.traits, v.block[i+count+1:end+count])
			v.size = i + 1
			return fmt.Errorf("vector: insert: shift slot %d: %w", i, err)
		}
		v.traits.Destroy(&v.block[i])
	}

	copy(v.block[pos:pos+count], scratch)
	v.size = end + count
	return nil
}
