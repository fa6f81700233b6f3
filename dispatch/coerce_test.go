package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliceworks/batchkit/dense"
)

func TestAsDense(t *testing.T) {
	t.Run("NumericSequence", func(t *testing.T) {
		got, err := AsDense([]int{0, 1, 2})
		require.NoError(t, err)
		assert.True(t, dense.FromValues(0, 1, 2).Equal(got))

		got, err = AsDense([]float64{0.5, 1.5})
		require.NoError(t, err)
		assert.True(t, dense.FromValues(0.5, 1.5).Equal(got))

		got, err = AsDense([]any{1, 2.5, uint8(3)})
		require.NoError(t, err)
		assert.True(t, dense.FromValues(1, 2.5, 3).Equal(got))
	})

	t.Run("NestedRows", func(t *testing.T) {
		got, err := AsDense([][]float64{{1, 1, 1, 1}, {2, 2, 2, 2}})
		require.NoError(t, err)

		want, err := dense.FromRows([][]float64{{1, 1, 1, 1}, {2, 2, 2, 2}})
		require.NoError(t, err)
		assert.True(t, want.Equal(got))
	})

	t.Run("StackOfArrays", func(t *testing.T) {
		got, err := AsDense([]any{dense.FromValues(1, 2), dense.FromValues(3, 4)})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 2}, got.Shape())
		assert.Equal(t, 3.0, got.At(1, 0))
	})

	t.Run("PassThrough", func(t *testing.T) {
		arr := dense.FromValues(1, 2, 3)
		got, err := AsDense(arr)
		require.NoError(t, err)
		assert.Same(t, arr, got)
	})

	t.Run("EmptySequence", func(t *testing.T) {
		got, err := AsDense([]int{})
		require.NoError(t, err)
		assert.Equal(t, []int{0}, got.Shape())
	})

	t.Run("BareNumber", func(t *testing.T) {
		_, err := AsDense(0)
		assert.ErrorIs(t, err, ErrNotCoercible)
	})

	t.Run("String", func(t *testing.T) {
		_, err := AsDense("not a sequence")
		assert.ErrorIs(t, err, ErrNotCoercible)
	})

	t.Run("NonNumericElement", func(t *testing.T) {
		_, err := AsDense([]any{1, "two", 3})
		assert.ErrorIs(t, err, ErrNotCoercible)
	})

	t.Run("RaggedRows", func(t *testing.T) {
		_, err := AsDense([][]float64{{1, 2}, {3}})
		assert.ErrorIs(t, err, dense.ErrShapeMismatch)
	})
}

func TestAsDense_AfterDispatch(t *testing.T) {
	// Chunked dispatch over nested rows followed by coercion matches the
	// directly constructed array.
	d, err := New(Spec{Mode: Chunked, ChunkSize: 1}, func(args []any) (any, error) {
		return args[0], nil
	})
	require.NoError(t, err)

	input := [][]float64{{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}}
	merged, err := d.Call(input)
	require.NoError(t, err)

	got, err := AsDense(merged)
	require.NoError(t, err)

	want, err := dense.FromRows(input)
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}
