// Package testutil holds fault-injection helpers shared by package tests.
package testutil

import "errors"

// ErrInjected is returned by FaultyTraits when an armed construction fires.
var ErrInjected = errors.New("testutil: injected construct failure")

// FaultyTraits copies by assignment and fails a chosen construction.
// It counts every successful Construct and every Destroy so tests can check
// that live elements are neither leaked nor destroyed twice.
//
// Example:
//
//	tr := &testutil.FaultyTraits[int]{}
//	v := vector.New(&vector.Options[int]{Traits: tr})
//	tr.Arm(3) // the third construction from now fails
type FaultyTraits[T any] struct {
	calls      int
	failAt     int
	Constructs int
	Destroys   int
}

// Arm makes the k-th construction from now fail. k <= 0 disarms.
func (f *FaultyTraits[T]) Arm(k int) {
	if k <= 0 {
		f.failAt = 0
		return
	}
	f.failAt = f.calls + k
}

// Construct assigns src unless this call is the armed one.
func (f *FaultyTraits[T]) Construct(slot *T, src T) error {
	f.calls++
	if f.failAt != 0 && f.calls == f.failAt {
		f.failAt = 0
		return ErrInjected
	}
	*slot = src
	f.Constructs++
	return nil
}

// Destroy zeroes the slot.
func (f *FaultyTraits[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
	f.Destroys++
}

// Live returns constructed minus destroyed elements.
func (f *FaultyTraits[T]) Live() int {
	return f.Constructs - f.Destroys
}
