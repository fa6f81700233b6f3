package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanChunks(t *testing.T) {
	t.Run("Properties", func(t *testing.T) {
		// ceil(n/b) chunks, widths sum to n, all widths <= b, only the
		// last width may fall short.
		for n := 0; n <= 50; n++ {
			for b := 1; b <= 12; b++ {
				bounds, err := PlanChunks(n, b)
				require.NoError(t, err)

				wantCount := n / b
				if n%b > 0 {
					wantCount++
				}
				require.Len(t, bounds, wantCount, "n=%d b=%d", n, b)

				total := 0
				for i, bd := range bounds {
					assert.LessOrEqual(t, bd.Width(), b, "n=%d b=%d chunk %d", n, b, i)
					if i < len(bounds)-1 {
						assert.Equal(t, b, bd.Width(), "n=%d b=%d chunk %d", n, b, i)
					}
					if i == 0 {
						assert.Equal(t, 0, bd.Start)
					} else {
						assert.Equal(t, bounds[i-1].End, bd.Start, "contiguous")
					}
					total += bd.Width()
				}
				assert.Equal(t, n, total, "n=%d b=%d", n, b)
				if len(bounds) > 0 {
					assert.Equal(t, n, bounds[len(bounds)-1].End)
				}
			}
		}
	})

	t.Run("TenByTwo", func(t *testing.T) {
		bounds, err := PlanChunks(10, 2)
		require.NoError(t, err)
		want := []Boundary{{0, 2}, {2, 4}, {4, 6}, {6, 8}, {8, 10}}
		assert.Equal(t, want, bounds)
	})

	t.Run("LastChunkShort", func(t *testing.T) {
		bounds, err := PlanChunks(4, 3)
		require.NoError(t, err)
		require.Len(t, bounds, 2)
		assert.Equal(t, 3, bounds[0].Width())
		assert.Equal(t, 1, bounds[1].Width())
	})

	t.Run("EmptyPayload", func(t *testing.T) {
		bounds, err := PlanChunks(0, 5)
		require.NoError(t, err)
		assert.Empty(t, bounds)
	})

	t.Run("InvalidChunkSize", func(t *testing.T) {
		_, err := PlanChunks(10, 0)
		assert.ErrorIs(t, err, ErrInvalidChunkSize)
		_, err = PlanChunks(10, -1)
		assert.ErrorIs(t, err, ErrInvalidChunkSize)
	})
}

func TestPlanElements(t *testing.T) {
	bounds := PlanElements(4)
	require.Len(t, bounds, 4)
	for i, bd := range bounds {
		assert.Equal(t, i, bd.Start)
		assert.Equal(t, i+1, bd.End)
		assert.Equal(t, 1, bd.Width())
	}

	assert.Empty(t, PlanElements(0))
}
