// Package vector implements Vector, a contiguous growable array that owns its
// storage through an explicit allocator and constructs and destroys elements
// one slot at a time.
//
// # Storage Model
//
// A Vector holds one block obtained from an alloc.Allocator. Slots
// [0, Size()) are live elements; slots [Size(), Cap()) are uninitialized. The
// block is nil exactly when Cap() is zero. Every transition between the two
// states goes through the vector's elem.Traits, so element types with deep
// copies or external resources work unchanged.
//
// # Growth
//
// When an insertion does not fit, the capacity becomes the larger of twice
// the current capacity and the size required (at least one). PushBack is
// therefore amortized O(1). Reserve and ResizeFill grow to exactly the size
// requested.
//
// # Failure Guarantees
//
// Element copies (Traits.Construct) and allocations may fail; destruction may
// not. Errors are returned to the caller after local rollback:
//
//	Reserve, ShrinkToFit, Set, PushBack     unchanged on failure
//	Insert* that grows or appends at End    unchanged on failure
//	Insert* that shifts in place            truncated to the live prefix
//	Erase, EraseRange that shift            truncated to the live prefix
//	ResizeFill                              size unchanged, capacity may grow
//	Assign, AssignN, AssignSeq              left empty on failure
//	Clear, PopBack, Swap, Release           cannot fail
//
// "Truncated to the live prefix" means the vector keeps every element before
// the first uninitialized slot the failed shift left behind and destroys the
// rest, so Size() only ever covers live elements.
//
// # Empty Containers
//
// At, Front and Back return an error wrapping ErrOutOfRange or ErrEmpty.
// PopBack on an empty vector does nothing. Index performs no check.
//
// # Iterator Invalidation
//
//	operation that reallocates              all iterators
//	Insert*/Erase* in the middle            iterators at or after the position
//	PushBack/PopBack without reallocation   End() only
//
// Mutators taking an iterator reject ones that refer to a previous storage
// block with ErrInvalidIterator.
//
// # Thread Safety
//
// Vector is not safe for concurrent use. A vector and its allocator belong to
// one goroutine at a time.
package vector
