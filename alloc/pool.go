package alloc

// PoolOptions configures a Pool.
type PoolOptions struct {
	// MinClassElems is the capacity of the smallest size class.
	// Default: 8
	MinClassElems int

	// CeilingPages caps the largest class at this many OS pages worth of
	// bytes. Larger requests are served directly and never cached.
	// Default: 16
	CeilingPages int

	// MaxCachedPerClass bounds how many released blocks each class retains.
	// Default: 16
	MaxCachedPerClass int

	// DisableCache drops every released block instead of caching it.
	DisableCache bool
}

// DefaultPoolOptions returns the recommended pool configuration.
func DefaultPoolOptions() *PoolOptions {
	return &PoolOptions{
		MinClassElems:     8,
		CeilingPages:      16,
		MaxCachedPerClass: 16,
	}
}

// PoolStats reports cache behaviour.
type PoolStats struct {
	Hits     int // allocations served from a free list
	Misses   int // allocations that created a new class block
	Oversize int // allocations above the largest class
	Cached   int // blocks currently held on free lists
	Dropped  int // released blocks not cached (list full or unknown class)
}

// Pool reuses released blocks through segregated free lists, one per size
// class. A request for n elements is served from the smallest class that
// fits; the returned block has len == n and the class capacity as cap.
//
// Released blocks are cleared before they are cached so that pooled storage
// does not keep referenced objects alive.
type Pool[T any] struct {
	table     *sizeClassTable
	free      [][][]T // free[class] is a LIFO stack of blocks
	maxCached int
	stats     PoolStats
}

// NewPool creates a Pool. A nil opts uses DefaultPoolOptions.
func NewPool[T any](opts *PoolOptions) *Pool[T] {
	if opts == nil {
		opts = DefaultPoolOptions()
	}
	def := DefaultPoolOptions()
	minElems := opts.MinClassElems
	if minElems <= 0 {
		minElems = def.MinClassElems
	}
	pages := opts.CeilingPages
	if pages <= 0 {
		pages = def.CeilingPages
	}
	maxCached := opts.MaxCachedPerClass
	switch {
	case opts.DisableCache:
		maxCached = 0
	case maxCached <= 0:
		maxCached = def.MaxCachedPerClass
	}

	table := newSizeClassTable(minElems, elemSizeOf[T](), pages*pageSize())
	return &Pool[T]{
		table:     table,
		free:      make([][][]T, table.numClasses()),
		maxCached: maxCached,
	}
}

// Allocate returns a block of n elements, reusing a cached block of the
// matching class when one is available.
func (p *Pool[T]) Allocate(n int) ([]T, error) {
	if err := checkCount[T](n); err != nil {
		return nil, err
	}

	class := p.table.classFor(n)
	if class >= p.table.numClasses() {
		p.stats.Oversize++
		return make([]T, n), nil
	}

	if list := p.free[class]; len(list) > 0 {
		// reuse block
		blk := list[len(list)-1]
		list[len(list)-1] = nil
		p.free[class] = list[:len(list)-1]
		p.stats.Hits++
		p.stats.Cached--
		return blk[:n], nil
	}

	p.stats.Misses++
	return make([]T, p.table.caps[class])[:n], nil
}

// Deallocate clears the block and caches it on its class list.
func (p *Pool[T]) Deallocate(block []T, n int) {
	full := block[:cap(block)]
	clear(full)

	class := p.table.classOfCap(cap(full))
	if class < 0 || len(p.free[class]) >= p.maxCached {
		p.stats.Dropped++
		return
	}
	p.free[class] = append(p.free[class], full)
	p.stats.Cached++
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() PoolStats {
	return p.stats
}

// ClassCaps returns the element capacity of each size class.
func (p *Pool[T]) ClassCaps() []int {
	return append([]int(nil), p.table.caps...)
}

// Purge drops every cached block.
func (p *Pool[T]) Purge() {
	for i := range p.free {
		clear(p.free[i])
		p.free[i] = p.free[i][:0]
	}
	p.stats.Cached = 0
}

// Compile-time interface check
var _ Allocator[int] = (*Pool[int])(nil)
