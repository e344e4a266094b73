package main

import (
	"fmt"

	"github.com/joshuapare/vectorkit/alloc"
	"github.com/joshuapare/vectorkit/internal/logger"
	"github.com/joshuapare/vectorkit/vector"
)

// storage is the allocator stack selected by the global flags:
// Tracking over an optional Logged over Heap or Pool.
type storage[T any] struct {
	opts     *vector.Options[T]
	tracking *alloc.Tracking[T]
	pool     *alloc.Pool[T] // nil for the heap allocator
}

func newStorage[T any]() (*storage[T], error) {
	s := &storage[T]{}

	var base alloc.Allocator[T]
	switch allocatorName {
	case "", "heap":
		base = alloc.NewHeap[T]()
	case "pool":
		s.pool = alloc.NewPool[T](nil)
		base = s.pool
	default:
		return nil, fmt.Errorf("unknown allocator %q (want heap or pool)", allocatorName)
	}

	if traceAlloc {
		base = alloc.NewLogged(base, logger.L)
	}
	s.tracking = alloc.NewTracking(base)
	s.opts = &vector.Options[T]{Allocator: s.tracking}

	logger.Debug("storage", "allocator", allocatorName, "trace", traceAlloc)
	printVerbose("allocator: %s\n", allocatorName)
	return s, nil
}

// allocReport is the JSON shape of allocator statistics.
type allocReport struct {
	Allocator  string           `json:"allocator"`
	Allocs     int              `json:"allocs"`
	Deallocs   int              `json:"deallocs"`
	LiveBlocks int              `json:"liveBlocks"`
	PeakElems  int              `json:"peakElems"`
	Pool       *alloc.PoolStats `json:"pool,omitempty"`
	Violations []string         `json:"violations,omitempty"`
}

func (s *storage[T]) report() allocReport {
	st := s.tracking.Stats()
	r := allocReport{
		Allocator:  allocatorName,
		Allocs:     st.Allocs,
		Deallocs:   st.Deallocs,
		LiveBlocks: st.LiveBlocks,
		PeakElems:  st.PeakElems,
	}
	if s.pool != nil {
		ps := s.pool.Stats()
		r.Pool = &ps
	}
	for _, err := range s.tracking.Violations() {
		r.Violations = append(r.Violations, err.Error())
	}
	return r
}

// printReport prints allocator statistics as text.
func printReport(r allocReport) {
	printInfo("allocator: %s\n", r.Allocator)
	printInfo("  allocations:   %d\n", r.Allocs)
	printInfo("  releases:      %d\n", r.Deallocs)
	printInfo("  live blocks:   %d\n", r.LiveBlocks)
	printInfo("  peak elements: %d\n", r.PeakElems)
	if r.Pool != nil {
		printInfo("  pool hits:     %d\n", r.Pool.Hits)
		printInfo("  pool misses:   %d\n", r.Pool.Misses)
		printInfo("  pool cached:   %d\n", r.Pool.Cached)
	}
	for _, v := range r.Violations {
		logger.Warn("allocator violation", "err", v)
		printError("%s\n", v)
	}
}
