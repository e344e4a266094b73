// Package growth holds the size arithmetic shared by the allocators and the
// vector: overflow-checked add/multiply and the capacity growth policy.
package growth

import "math"

// MaxAllocBytes is the largest single storage request, in bytes, that the
// allocators will attempt (just under 128TB on 64-bit platforms). Larger
// requests fail with an error instead of a runtime panic.
const MaxAllocBytes = math.MaxInt >> 16

// Add adds a and b, returning ok = false when the result would overflow int.
func Add(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Mul multiplies two non-negative ints, returning ok = false on overflow or
// when either operand is negative.
func Mul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// MaxElems returns how many elements of elemSize bytes fit in MaxAllocBytes.
// Zero-sized elements are bounded only by int.
func MaxElems(elemSize uintptr) int {
	if elemSize == 0 {
		return math.MaxInt
	}
	return int(uint64(MaxAllocBytes) / uint64(elemSize))
}

// Next returns the capacity to grow to when cur slots are in use and need
// slots are required: the larger of twice cur and need, never less than one,
// and never above limit.
//
// ok is false when need itself exceeds limit.
//
//	Next(0, 1, max)  == 1
//	Next(4, 5, max)  == 8
//	Next(4, 11, max) == 11
func Next(cur, need, limit int) (int, bool) {
	if need < 0 || need > limit {
		return 0, false
	}
	want, ok := Mul(cur, 2)
	if !ok || want > limit {
		want = limit
	}
	if want < need {
		want = need
	}
	if want < 1 {
		want = 1
	}
	return want, true
}

// CheckRange reports whether lo <= x <= hi.
func CheckRange(x, lo, hi int) bool {
	return x >= lo && x <= hi
}
