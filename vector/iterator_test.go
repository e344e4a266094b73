package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_Arithmetic(t *testing.T) {
	v := mustFromSlice(t, []int{10, 20, 30, 40, 50}, nil)

	it := v.Begin()
	assert.Equal(t, 10, it.Get())
	assert.Equal(t, 20, it.Next().Get())
	assert.Equal(t, 40, it.Add(3).Get())
	assert.Equal(t, 30, it.Add(3).Prev().Get())
	assert.Equal(t, 20, v.End().Sub(4).Get())
	assert.Equal(t, 50, it.At(4), "offset indexing")
	assert.Equal(t, 5, v.End().Diff(v.Begin()))
	assert.Equal(t, -2, it.Diff(it.Add(2)))

	// Iterators are values.
	next := it.Next()
	assert.Equal(t, 0, it.Pos())
	assert.Equal(t, 1, next.Pos())
}

func TestIterator_Comparisons(t *testing.T) {
	v := mustFromSlice(t, []int{1, 2, 3}, nil)
	a, b := v.Begin(), v.Begin().Add(2)

	assert.True(t, a.Less(b))
	assert.True(t, a.LessEqual(b))
	assert.True(t, a.LessEqual(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterEqual(a))
	assert.True(t, b.GreaterEqual(b))
	assert.True(t, a.Equal(v.Begin()))
	assert.False(t, a.Equal(b))

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestIterator_PtrWritesThrough(t *testing.T) {
	v := mustFromSlice(t, []int{1, 2, 3}, nil)

	*v.Begin().Add(1).Ptr() = 7
	v.End().Prev().Set(8)
	assert.Equal(t, []int{1, 7, 8}, contents(v))
}

func TestIterator_Walk(t *testing.T) {
	v := mustFromSlice(t, []string{"a", "b", "c"}, nil)

	var got []string
	for it := v.Begin(); it.Less(v.End()); it = it.Next() {
		got = append(got, it.Get())
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)

	got = got[:0]
	for it := v.End(); it.Greater(v.Begin()); {
		it = it.Prev()
		got = append(got, it.Get())
	}
	assert.Equal(t, []string{"c", "b", "a"}, got)
}

func TestIterator_EndSurvivesPushWithinCapacity(t *testing.T) {
	v := New[int](nil)
	require.NoError(t, v.Reserve(4))
	require.NoError(t, v.PushBack(1))
	begin := v.Begin()

	require.NoError(t, v.PushBack(2))

	// Begin is still valid; the old End now points at the new element.
	_, err := v.Insert(begin, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, contents(v))
}
