package alloc

import "fmt"

// Limit enforces a budget of live elements on top of another allocator.
// Requests that would exceed the budget fail with ErrNoSpace without
// reaching the wrapped allocator.
type Limit[T any] struct {
	next   Allocator[T]
	budget int
	inUse  int
}

// NewLimit wraps next with a budget of live elements.
func NewLimit[T any](next Allocator[T], budget int) *Limit[T] {
	return &Limit[T]{next: next, budget: budget}
}

// Allocate obtains n elements from the wrapped allocator if the budget allows.
func (l *Limit[T]) Allocate(n int) ([]T, error) {
	if n > l.budget-l.inUse {
		return nil, fmt.Errorf("%w: %d elements requested, %d of %d in use",
			ErrNoSpace, n, l.inUse, l.budget)
	}
	blk, err := l.next.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.inUse += n
	return blk, nil
}

// Deallocate returns the block to the wrapped allocator and credits the budget.
func (l *Limit[T]) Deallocate(block []T, n int) {
	l.next.Deallocate(block, n)
	l.inUse -= n
	if l.inUse < 0 {
		l.inUse = 0
	}
}

// InUse returns the number of elements currently allocated.
func (l *Limit[T]) InUse() int { return l.inUse }

// Budget returns the configured element budget.
func (l *Limit[T]) Budget() int { return l.budget }

// Compile-time interface check
var _ Allocator[int] = (*Limit[int])(nil)
