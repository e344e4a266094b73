package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vectorkit/internal/testutil"
)

func TestErase_Middle(t *testing.T) {
	v := mustFromSlice(t, []int{10, 20, 30}, nil)

	it, err := v.Erase(v.IterAt(1))
	require.NoError(t, err)

	assert.Equal(t, []int{10, 30}, contents(v))
	assert.Equal(t, 2, v.Size())
	assert.Equal(t, 30, it.Get(), "returned iterator refers to the following element")
}

func TestErase_Last(t *testing.T) {
	v := mustFromSlice(t, []int{10, 20, 30}, nil)

	it, err := v.Erase(v.End().Prev())
	require.NoError(t, err)
	assert.True(t, it.Equal(v.End()))
	assert.Equal(t, []int{10, 20}, contents(v))
}

func TestErase_InvalidPositions(t *testing.T) {
	v := mustFromSlice(t, []int{1, 2}, nil)

	_, err := v.Erase(v.End())
	require.ErrorIs(t, err, ErrInvalidIterator, "End is not erasable")

	_, err = New[int](nil).Erase(v.Begin())
	require.ErrorIs(t, err, ErrInvalidIterator)
}

func TestEraseRange_All(t *testing.T) {
	for _, n := range []int{1, 2, 9} {
		opts, tr, _ := faulty[int]()
		v, err := NewFilled(n, 3, opts)
		require.NoError(t, err)
		capBefore := v.Cap()

		it, err := v.EraseRange(v.Begin(), v.End())
		require.NoError(t, err)

		assert.Zero(t, v.Size())
		assert.True(t, v.Empty())
		assert.True(t, it.Equal(v.End()))
		assert.Equal(t, capBefore, v.Cap())
		assert.Zero(t, tr.Live())
	}
}

func TestEraseRange(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
		want        []int
		wantPos     int
	}{
		{"prefix", 0, 2, []int{3, 4, 5, 6}, 0},
		{"middle", 2, 4, []int{1, 2, 5, 6}, 2},
		{"suffix", 3, 6, []int{1, 2, 3}, 3},
		{"empty range", 2, 2, []int{1, 2, 3, 4, 5, 6}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, tr, _ := faulty[int]()
			v := mustFromSlice(t, []int{1, 2, 3, 4, 5, 6}, opts)

			it, err := v.EraseRange(v.IterAt(tt.first), v.IterAt(tt.last))
			require.NoError(t, err)

			assert.Equal(t, tt.want, contents(v))
			assert.Equal(t, tt.wantPos, it.Pos())
			assert.Equal(t, len(tt.want), tr.Live())
			for i := v.Size(); i < v.Cap(); i++ {
				assert.Zero(t, v.block[i], "slot %d must be uninitialized", i)
			}
		})
	}
}

func TestEraseRange_SuffixDoesNotCopy(t *testing.T) {
	opts, tr, _ := faulty[int]()
	v := mustFromSlice(t, []int{1, 2, 3, 4}, opts)
	constructs := tr.Constructs

	_, err := v.EraseRange(v.IterAt(1), v.End())
	require.NoError(t, err)
	assert.Equal(t, constructs, tr.Constructs)
}

func TestEraseRange_InvalidRanges(t *testing.T) {
	v := mustFromSlice(t, []int{1, 2, 3}, nil)

	_, err := v.EraseRange(v.IterAt(2), v.IterAt(1))
	require.ErrorIs(t, err, ErrInvalidIterator)

	_, err = v.EraseRange(v.Begin(), v.End().Next())
	require.ErrorIs(t, err, ErrInvalidIterator)

	assert.Equal(t, []int{1, 2, 3}, contents(v))
}

func TestErase_ShiftFailureTruncates(t *testing.T) {
	opts, tr, _ := faulty[int]()
	v := mustFromSlice(t, []int{1, 2, 3, 4, 5}, opts)

	// Moves 3 into slot 1, then fails moving 4 into slot 2.
	tr.Arm(2)
	_, err := v.Erase(v.IterAt(1))
	require.ErrorIs(t, err, testutil.ErrInjected)

	assert.Equal(t, []int{1, 3}, contents(v))
	assert.Equal(t, 2, tr.Live())
	for i := v.Size(); i < v.Cap(); i++ {
		assert.Zero(t, v.block[i], "slot %d must be uninitialized", i)
	}
	requireInvariants(t, v)
}
