// Package alloc provides typed storage allocators for vectorkit containers.
//
// # Overview
//
// An Allocator hands out blocks of element storage and takes them back. It
// knows nothing about element lifetimes: slots in a fresh block hold the zero
// value and the container decides which of them are live. Constructing and
// destroying elements is the job of package elem.
//
// # Allocator Interface
//
//   - Allocate(n): obtain a block with len == n
//   - Deallocate(block, n): release a block obtained with Allocate(n)
//
// # Implementations
//
// Heap: the default. Blocks come from make and are reclaimed by the collector.
// Exhausting real memory below MaxElems is fatal; wrap Heap in Limit to bound it.
//
// Pool: segregated free lists with one LIFO stack per size class.
//
//   - Classes double from MinClassElems (default 8) elements
//   - The largest class is capped at CeilingPages OS pages of bytes
//   - Released blocks are cleared, then cached up to MaxCachedPerClass
//   - Oversize requests bypass the cache
//
// Limit: rejects requests beyond a budget of live elements with ErrNoSpace.
//
// Tracking: counts calls and live blocks, and records double releases,
// foreign blocks and count mismatches as Violations.
//
// Logged: logs each call at debug level.
//
// # Usage Example
//
//	pool := alloc.NewPool[string](nil)
//	tr := alloc.NewTracking[string](pool)
//
//	blk, err := tr.Allocate(10)
//	if err != nil {
//	    return err
//	}
//	// len(blk) == 10, cap(blk) == 16 (size class)
//	tr.Deallocate(blk, 10)
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
//
// # Related Packages
//
//   - github.com/joshuapare/vectorkit/elem: per-slot construction and teardown
//   - github.com/joshuapare/vectorkit/vector: the growable array built on both
package alloc
