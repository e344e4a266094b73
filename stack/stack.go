// Package stack provides a LIFO adapter over vector.Vector.
//
// The top of the stack is the last element of the underlying vector, so Push
// and Pop are amortized O(1) and a stack inherits the vector's allocator,
// element traits and failure guarantees. Comparisons order stacks by their
// elements from bottom to top.
package stack

import (
	"cmp"
	"iter"

	"github.com/joshuapare/vectorkit/vector"
)

// Stack is a last-in first-out container. The zero value is not usable; use
// New or FromVector.
//
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	v *vector.Vector[T]
}

// New returns an empty stack whose storage is configured by opts
// (nil uses vector.DefaultOptions).
func New[T any](opts *vector.Options[T]) *Stack[T] {
	return &Stack[T]{v: vector.New(opts)}
}

// FromVector wraps v. The stack takes ownership: the caller must not use v
// afterwards. The last element of v becomes the top.
func FromVector[T any](v *vector.Vector[T]) *Stack[T] {
	return &Stack[T]{v: v}
}

// Push places a copy of x on top. On failure the stack is unchanged.
func (s *Stack[T]) Push(x T) error {
	return s.v.PushBack(x)
}

// Pop removes the top element. Popping an empty stack does nothing.
func (s *Stack[T]) Pop() {
	s.v.PopBack()
}

// Top returns the top element, or vector.ErrEmpty.
func (s *Stack[T]) Top() (T, error) {
	return s.v.Back()
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.v.Empty() }

// Size returns the number of elements.
func (s *Stack[T]) Size() int { return s.v.Size() }

// Clone returns an independent stack holding copies of every element.
func (s *Stack[T]) Clone() (*Stack[T], error) {
	c, err := s.v.Clone()
	if err != nil {
		return nil, err
	}
	return &Stack[T]{v: c}, nil
}

// Assign replaces the contents of s with copies of the elements of o.
// On failure s is left empty.
func (s *Stack[T]) Assign(o *Stack[T]) error {
	return s.v.Assign(o.v)
}

// Release destroys every element and returns the storage.
func (s *Stack[T]) Release() { s.v.Release() }

// Values yields the elements from top to bottom without removing them.
func (s *Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s.v.Backward() {
			if !yield(x) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Stack[T]) bool { return vector.Equal(a.v, b.v) }

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Stack[T], eq func(T, T) bool) bool {
	return vector.EqualFunc(a.v, b.v, eq)
}

// Compare compares a and b lexicographically from the bottom up.
func Compare[T cmp.Ordered](a, b *Stack[T]) int { return vector.Compare(a.v, b.v) }

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Stack[T], compare func(T, T) int) int {
	return vector.CompareFunc(a.v, b.v, compare)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Stack[T]) bool { return vector.Less(a.v, b.v) }

// LessEqual reports whether a does not order after b.
func LessEqual[T cmp.Ordered](a, b *Stack[T]) bool { return vector.LessEqual(a.v, b.v) }

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *Stack[T]) bool { return vector.Greater(a.v, b.v) }

// GreaterEqual reports whether a does not order before b.
func GreaterEqual[T cmp.Ordered](a, b *Stack[T]) bool { return vector.GreaterEqual(a.v, b.v) }
