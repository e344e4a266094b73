package alloc

import "fmt"

// Stats counts allocator traffic.
type Stats struct {
	Allocs     int // successful Allocate calls
	Failures   int // failed Allocate calls
	Deallocs   int // Deallocate calls, including rejected ones
	LiveBlocks int // blocks allocated and not yet released
	LiveElems  int // elements in live blocks
	PeakElems  int // high-water mark of LiveElems
}

type liveBlock struct {
	refs int // blocks at this address; >1 only for zero-sized element types
	n    int
}

// Tracking wraps an allocator and accounts for every block it hands out.
// Misuse (double release, foreign block, wrong count) is recorded rather than
// forwarded: such a release never reaches the wrapped allocator.
//
// Blocks are identified by the address of their first element. Blocks of a
// zero-sized element type may share an address; Tracking counts them but
// cannot tell them apart. Released blocks stay referenced so that a second
// release is recognised; Tracking is meant for tests and diagnostics.
type Tracking[T any] struct {
	next       Allocator[T]
	live       map[*T]*liveBlock
	stats      Stats
	violations []error
}

// NewTracking wraps next. A nil next uses Heap.
func NewTracking[T any](next Allocator[T]) *Tracking[T] {
	if next == nil {
		next = Heap[T]{}
	}
	return &Tracking[T]{
		next: next,
		live: make(map[*T]*liveBlock),
	}
}

// Allocate forwards to the wrapped allocator and records the block.
func (t *Tracking[T]) Allocate(n int) ([]T, error) {
	blk, err := t.next.Allocate(n)
	if err != nil {
		t.stats.Failures++
		return nil, err
	}

	key := &blk[:1][0]
	if lb, ok := t.live[key]; ok {
		if lb.refs == 0 {
			lb.n = n
		}
		lb.refs++
	} else {
		t.live[key] = &liveBlock{refs: 1, n: n}
	}

	t.stats.Allocs++
	t.stats.LiveBlocks++
	t.stats.LiveElems += n
	if t.stats.LiveElems > t.stats.PeakElems {
		t.stats.PeakElems = t.stats.LiveElems
	}
	return blk, nil
}

// Deallocate validates the release and forwards it to the wrapped allocator.
func (t *Tracking[T]) Deallocate(block []T, n int) {
	t.stats.Deallocs++

	if cap(block) == 0 {
		t.violations = append(t.violations, fmt.Errorf("%w: empty block", ErrForeignBlock))
		return
	}
	key := &block[:1][0]
	lb, ok := t.live[key]
	switch {
	case !ok:
		t.violations = append(t.violations, fmt.Errorf("%w: %p", ErrForeignBlock, key))
		return
	case lb.refs == 0:
		t.violations = append(t.violations, fmt.Errorf("%w: %p", ErrDoubleFree, key))
		return
	case lb.n != n:
		t.violations = append(t.violations,
			fmt.Errorf("%w: allocated %d, released %d", ErrSizeMismatch, lb.n, n))
		return
	}

	lb.refs--
	t.stats.LiveBlocks--
	t.stats.LiveElems -= n
	t.next.Deallocate(block, n)
}

// Stats returns a snapshot of the counters.
func (t *Tracking[T]) Stats() Stats {
	return t.stats
}

// Violations returns every misuse recorded so far.
func (t *Tracking[T]) Violations() []error {
	return append([]error(nil), t.violations...)
}

// Reset zeroes the counters and violations but keeps track of live blocks.
func (t *Tracking[T]) Reset() {
	t.stats = Stats{
		LiveBlocks: t.stats.LiveBlocks,
		LiveElems:  t.stats.LiveElems,
		PeakElems:  t.stats.LiveElems,
	}
	t.violations = nil
}

// Compile-time interface check
var _ Allocator[int] = (*Tracking[int])(nil)
