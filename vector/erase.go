package vector

import (
	"fmt"

	"github.com/joshuapare/vectorkit/elem"
)

// Erase removes the element at pos and returns an iterator to the element
// that followed it, or End(). pos must belong to v and lie in
// [Begin(), End()).
//
// Later elements are shifted left one slot each (construct into the vacated
// slot, destroy the original). If a shift fails the vector is truncated to
// the elements before the vacated slot. Iterators at or after pos are
// invalidated.
func (v *Vector[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if err := v.checkPos(pos, false); err != nil {
		return Iterator[T]{}, err
	}
	if err := v.eraseRange(pos.pos, pos.pos+1); err != nil {
		return Iterator[T]{}, err
	}
	return v.iterAt(pos.pos), nil
}

// EraseRange removes [first, last) and returns an iterator to the element
// that followed the range. Both iterators must belong to v with
// Begin() <= first <= last <= End(). Erasing a suffix only destroys it.
// Same failure behaviour as Erase.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) (Iterator[T], error) {
	if err := v.checkPos(first, true); err != nil {
		return Iterator[T]{}, err
	}
	if err := v.checkPos(last, true); err != nil {
		return Iterator[T]{}, err
	}
	if first.pos > last.pos {
		return Iterator[T]{}, fmt.Errorf("%w: range [%d, %d) is reversed", ErrInvalidIterator, first.pos, last.pos)
	}
	if err := v.eraseRange(first.pos, last.pos); err != nil {
		return Iterator[T]{}, err
	}
	return v.iterAt(first.pos), nil
}

// eraseRange destroys [first, last) and closes the gap.
func (v *Vector[T]) eraseRange(first, last int) error {
	n := last - first
	if n == 0 {
		return nil
	}
	elem.DestroyAll(v.traits, v.block[first:last])
	if last == v.size {
		v.size = first
		return nil
	}

	for i := last; i < v.size; i++ {
		if err := v.traits.Construct(&v.block[i-n], v.block[i]); err != nil {
			// [0, i-n) are live, [i, size) were never moved.
			elem.DestroyAll(v.traits, v.block[i:v.size])
			v.size = i - n
			return fmt.Errorf("vector: erase: shift slot %d: %w", i, err)
		}
		v.traits.Destroy(&v.block[i])
	}
	v.size -= n
	return nil
}
