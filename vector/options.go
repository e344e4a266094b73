package vector

import (
	"github.com/joshuapare/vectorkit/alloc"
	"github.com/joshuapare/vectorkit/elem"
)

// Options configures a Vector at construction. Both collaborators are held
// for the vector's whole lifetime.
type Options[T any] struct {
	// Allocator supplies and reclaims storage.
	// Default: alloc.Heap
	Allocator alloc.Allocator[T]

	// Traits constructs and destroys individual elements.
	// Default: elem.Plain (assignment copy, zeroing destroy)
	Traits elem.Traits[T]
}

// DefaultOptions returns the heap allocator with plain element traits.
func DefaultOptions[T any]() *Options[T] {
	return &Options[T]{
		Allocator: alloc.NewHeap[T](),
		Traits:    elem.Plain[T]{},
	}
}

// resolve fills unset fields with defaults.
func (o *Options[T]) resolve() (alloc.Allocator[T], elem.Traits[T]) {
	def := DefaultOptions[T]()
	if o == nil {
		return def.Allocator, def.Traits
	}
	a, tr := o.Allocator, o.Traits
	if a == nil {
		a = def.Allocator
	}
	if tr == nil {
		tr = def.Traits
	}
	return a, tr
}
