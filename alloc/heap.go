package alloc

// Heap allocates from the Go heap. Deallocate is a no-op; the collector
// reclaims blocks once the owner drops them.
//
// Only requests above MaxElems fail with ErrNoSpace. A request below that
// ceiling but beyond what the machine can provide is a fatal runtime
// "out of memory" error, which cannot be recovered. Wrap Heap in a Limit to
// turn such requests into ErrNoSpace.
type Heap[T any] struct{}

// NewHeap returns the default allocator.
func NewHeap[T any]() Heap[T] {
	return Heap[T]{}
}

// Allocate returns a zeroed block of n elements.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if err := checkCount[T](n); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Deallocate does nothing.
func (Heap[T]) Deallocate(block []T, n int) {}

// Compile-time interface check
var _ Allocator[int] = Heap[int]{}
