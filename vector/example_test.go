package vector_test

import (
	"errors"
	"fmt"

	"github.com/joshuapare/vectorkit/alloc"
	"github.com/joshuapare/vectorkit/vector"
)

// Example shows growth and middle insertion.
func Example() {
	v := vector.New[int](nil)
	for _, x := range []int{10, 20, 30, 40} {
		if err := v.PushBack(x); err != nil {
			fmt.Println(err)
			return
		}
	}

	if _, err := v.Insert(v.Begin().Add(2), 9); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Data(), v.Size(), v.Cap())
	// Output: [10 20 9 30 40] 5 8
}

// ExampleVector_At demonstrates checked access.
func ExampleVector_At() {
	v, _ := vector.FromSlice([]string{"a", "b", "c"}, nil)

	x, _ := v.At(2)
	fmt.Println(x)

	_, err := v.At(3)
	fmt.Println(errors.Is(err, vector.ErrOutOfRange))
	// Output:
	// c
	// true
}

// ExampleVector_EraseRange removes a run of elements.
func ExampleVector_EraseRange() {
	v, _ := vector.FromSlice([]int{1, 2, 3, 4, 5}, nil)

	it, _ := v.EraseRange(v.IterAt(1), v.IterAt(3))
	fmt.Println(v.Data(), it.Get())
	// Output: [1 4 5] 4
}

// ExampleOptions shows a pooled allocator shared by several vectors.
func ExampleOptions() {
	pool := alloc.NewPool[int](nil)
	opts := &vector.Options[int]{Allocator: pool}

	for range 3 {
		v, _ := vector.NewFilled(5, 1, opts)
		v.Release()
	}
	fmt.Println(pool.Stats().Misses, pool.Stats().Hits)
	// Output: 1 2
}

// ExampleCompare orders vectors lexicographically.
func ExampleCompare() {
	a, _ := vector.FromSlice([]int{1, 2, 3}, nil)
	b, _ := vector.FromSlice([]int{1, 2, 4}, nil)

	fmt.Println(vector.Less(a, b), vector.Equal(a, b), vector.Greater(a, b))
	// Output: true false false
}
