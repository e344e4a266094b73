package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same size and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
// A vector that is a strict prefix of the other is smaller.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), compare)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// LessEqual reports whether a does not order after b.
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) <= 0 }

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) > 0 }

// GreaterEqual reports whether a does not order before b.
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }
