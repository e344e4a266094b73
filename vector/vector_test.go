package vector

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vectorkit/alloc"
	"github.com/joshuapare/vectorkit/internal/testutil"
)

// ============================================================================
// Test Helpers
// ============================================================================

// mustFromSlice builds a vector or fails the test.
func mustFromSlice[T any](t testing.TB, values []T, opts *Options[T]) *Vector[T] {
	t.Helper()
	v, err := FromSlice(values, opts)
	require.NoError(t, err)
	return v
}

// contents copies the live elements out of v.
func contents[T any](v *Vector[T]) []T {
	return slices.Collect(v.Values())
}

// requireInvariants checks size/capacity bounds and that storage exists
// exactly when capacity does.
func requireInvariants[T any](t testing.TB, v *Vector[T]) {
	t.Helper()
	require.GreaterOrEqual(t, v.Size(), 0)
	require.LessOrEqual(t, v.Size(), v.Cap())
	require.Equal(t, v.Cap() == 0, v.block == nil, "block must be nil iff capacity is zero")
}

// faulty returns options with failure-injecting traits over a tracking heap.
func faulty[T any]() (*Options[T], *testutil.FaultyTraits[T], *alloc.Tracking[T]) {
	tr := &testutil.FaultyTraits[T]{}
	at := alloc.NewTracking[T](nil)
	return &Options[T]{Allocator: at, Traits: tr}, tr, at
}

// ============================================================================
// Construction and queries
// ============================================================================

func TestNew_Empty(t *testing.T) {
	v := New[int](nil)

	assert.Zero(t, v.Size())
	assert.Zero(t, v.Cap())
	assert.True(t, v.Empty())
	assert.Nil(t, v.block)
	assert.Empty(t, v.Data())
	assert.Equal(t, alloc.MaxElems[int](), v.MaxSize())
	requireInvariants(t, v)
}

func TestNew_PartialOptionsUseDefaults(t *testing.T) {
	tr := &testutil.FaultyTraits[int]{}
	v := New(&Options[int]{Traits: tr})

	require.NoError(t, v.PushBack(1))
	assert.IsType(t, alloc.Heap[int]{}, v.Allocator())
	assert.Same(t, tr, v.Traits())
}

func TestNewFilled(t *testing.T) {
	v, err := NewFilled(3, "x", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "x", "x"}, contents(v))
	assert.Equal(t, 3, v.Cap())

	empty, err := NewFilled(0, "x", nil)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	assert.Zero(t, empty.Cap())

	_, err = NewFilled(-1, "x", nil)
	require.ErrorIs(t, err, ErrLength)
}

func TestNewFilled_CopyFailureReleasesStorage(t *testing.T) {
	opts, tr, at := faulty[int]()
	tr.Arm(2)

	v, err := NewFilled(4, 7, opts)
	require.ErrorIs(t, err, testutil.ErrInjected)
	assert.Nil(t, v)
	assert.Zero(t, tr.Live())
	assert.Zero(t, at.Stats().LiveBlocks)
	assert.Empty(t, at.Violations())
}

func TestFromSeq(t *testing.T) {
	v, err := FromSeq(slices.Values([]int{1, 2, 3, 4, 5}), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, contents(v))
}

func TestFromSlice_CapacityMatchesLength(t *testing.T) {
	v := mustFromSlice(t, []int{4, 5, 6}, nil)
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, 3, v.Cap())
}

// ============================================================================
// Element access
// ============================================================================

func TestAt_BoundIsExclusive(t *testing.T) {
	v := mustFromSlice(t, []int{10, 20, 30}, nil)

	got, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, 30, got)

	_, err = v.At(3)
	require.ErrorIs(t, err, ErrOutOfRange, "index == size is not a live index")

	_, err = v.At(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestAt_UninitializedCapacityIsOutOfRange(t *testing.T) {
	v := New[int](nil)
	require.NoError(t, v.Reserve(8))
	require.NoError(t, v.PushBack(1))

	_, err := v.At(1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSet(t *testing.T) {
	opts, tr, _ := faulty[int]()
	v := mustFromSlice(t, []int{1, 2, 3}, opts)

	require.NoError(t, v.Set(1, 9))
	assert.Equal(t, []int{1, 9, 3}, contents(v))

	tr.Arm(1)
	require.ErrorIs(t, v.Set(0, 5), testutil.ErrInjected)
	assert.Equal(t, []int{1, 9, 3}, contents(v), "failed Set leaves the element")
	assert.Equal(t, 3, tr.Live())

	require.ErrorIs(t, v.Set(3, 0), ErrOutOfRange)
}

func TestIndex_ReturnsReference(t *testing.T) {
	v := mustFromSlice(t, []int{1, 2}, nil)
	*v.Index(1) = 42
	assert.Equal(t, []int{1, 42}, contents(v))
}

func TestFrontBack(t *testing.T) {
	v := New[int](nil)

	_, err := v.Front()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = v.Back()
	require.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, v.PushBack(1))
	require.NoError(t, v.PushBack(2))

	front, err := v.Front()
	require.NoError(t, err)
	back, err := v.Back()
	require.NoError(t, err)
	assert.Equal(t, 1, front)
	assert.Equal(t, 2, back)
}

func TestData_IsClipped(t *testing.T) {
	v := New[int](nil)
	require.NoError(t, v.Reserve(4))
	require.NoError(t, v.PushBack(1))

	d := v.Data()
	assert.Equal(t, 1, cap(d))
	_ = append(d, 99)
	assert.Zero(t, v.block[1], "append on Data must not touch uninitialized slots")
}

// ============================================================================
// PushBack / PopBack
// ============================================================================

func TestPushBack_SizeAndOrder(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100} {
		v := New[int](nil)
		for i := range n {
			require.NoError(t, v.PushBack(i*3))
		}

		require.Equal(t, n, v.Size())
		for i := range n {
			got, err := v.At(i)
			require.NoError(t, err)
			require.Equal(t, i*3, got)
		}
		requireInvariants(t, v)
	}
}

func TestPushBack_DoublesCapacity(t *testing.T) {
	v := New[int](nil)
	var caps []int
	for i := range 9 {
		require.NoError(t, v.PushBack(i))
		caps = append(caps, v.Cap())
	}
	assert.Equal(t, []int{1, 2, 4, 4, 8, 8, 8, 8, 16}, caps)
}

func TestPushBack_AfterReserveDoesNotAllocate(t *testing.T) {
	at := alloc.NewTracking[int](nil)
	v := New(&Options[int]{Allocator: at})

	require.NoError(t, v.Reserve(50))
	allocs := at.Stats().Allocs
	for i := range 50 {
		require.NoError(t, v.PushBack(i))
	}

	assert.Equal(t, allocs, at.Stats().Allocs)
	assert.Equal(t, 50, v.Cap())
}

func TestPushBack_GrowthFailureIsStrong(t *testing.T) {
	for _, k := range []int{1, 2, 4} {
		opts, tr, at := faulty[int]()
		v := mustFromSlice(t, []int{1, 2, 3, 4}, opts)

		tr.Arm(k)
		err := v.PushBack(5)
		require.ErrorIs(t, err, testutil.ErrInjected, "k=%d", k)

		assert.Equal(t, []int{1, 2, 3, 4}, contents(v), "k=%d", k)
		assert.Equal(t, 4, v.Cap(), "k=%d", k)
		assert.Equal(t, 4, tr.Live(), "k=%d", k)
		assert.Equal(t, 1, at.Stats().LiveBlocks, "k=%d: new block must be released", k)
		assert.Empty(t, at.Violations())
	}
}

func TestPushBack_AllocationFailure(t *testing.T) {
	lim := alloc.NewLimit[int](alloc.NewHeap[int](), 8)
	v := New(&Options[int]{Allocator: lim})

	for i := range 4 {
		require.NoError(t, v.PushBack(i))
	}
	err := v.PushBack(4)
	require.ErrorIs(t, err, alloc.ErrNoSpace)

	assert.Equal(t, []int{0, 1, 2, 3}, contents(v))
	assert.Equal(t, 4, v.Cap())
	assert.Equal(t, 4, lim.InUse())
}

func TestPopBack(t *testing.T) {
	opts, tr, _ := faulty[int]()
	v := mustFromSlice(t, []int{1, 2, 3}, opts)

	v.PopBack()
	assert.Equal(t, []int{1, 2}, contents(v))
	assert.Equal(t, 3, v.Cap())
	assert.Zero(t, v.block[2], "popped slot is uninitialized")

	v.PopBack()
	v.PopBack()
	v.PopBack() // empty: no-op
	assert.True(t, v.Empty())
	assert.Zero(t, tr.Live())
}

// ============================================================================
// Clear / Release / Swap
// ============================================================================

func TestClear_Idempotent(t *testing.T) {
	v := mustFromSlice(t, []int{1, 2, 3}, nil)
	capBefore := v.Cap()

	v.Clear()
	assert.Zero(t, v.Size())
	assert.Equal(t, capBefore, v.Cap())

	v.Clear()
	assert.Zero(t, v.Size())
	assert.Equal(t, capBefore, v.Cap())
	requireInvariants(t, v)
}

func TestRelease_ReturnsStorageOnce(t *testing.T) {
	opts, tr, at := faulty[int]()
	v := mustFromSlice(t, []int{1, 2, 3}, opts)

	v.Release()
	v.Release()

	assert.Zero(t, v.Cap())
	assert.Zero(t, tr.Live())
	assert.Zero(t, at.Stats().LiveBlocks)
	assert.Empty(t, at.Violations())
	requireInvariants(t, v)

	require.NoError(t, v.PushBack(4), "released vector stays usable")
	assert.Equal(t, []int{4}, contents(v))
}

func TestSwap(t *testing.T) {
	a := mustFromSlice(t, []int{1, 2}, nil)
	b := mustFromSlice(t, []int{3}, nil)
	itA := a.Begin()

	a.Swap(b)

	assert.Equal(t, []int{3}, contents(a))
	assert.Equal(t, []int{1, 2}, contents(b))
	assert.Equal(t, 2, b.Cap())

	// Iterators follow the storage to its new owner.
	next, err := b.Erase(itA)
	require.NoError(t, err)
	assert.Equal(t, 2, next.Get())
	assert.Equal(t, []int{2}, contents(b))

	_, err = a.Erase(itA)
	require.ErrorIs(t, err, ErrInvalidIterator)
}

// ============================================================================
// Iteration
// ============================================================================

func TestAllValuesBackward(t *testing.T) {
	v := mustFromSlice(t, []string{"a", "b", "c"}, nil)

	var idx []int
	var vals []string
	for i, s := range v.All() {
		idx = append(idx, i)
		vals = append(vals, s)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, vals)

	var back []string
	for _, s := range v.Backward() {
		back = append(back, s)
	}
	assert.Equal(t, []string{"c", "b", "a"}, back)

	var first []string
	for s := range v.Values() {
		first = append(first, s)
		break
	}
	assert.Equal(t, []string{"a"}, first)
}
