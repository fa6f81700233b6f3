package dispatch

import "fmt"

// Chunk size limits.
const (
	// MinChunkSize is the minimum allowed chunk size.
	MinChunkSize = 1

	// DefaultChunkSize is the chunk size used when a spec supplies none.
	DefaultChunkSize = 100
)

// Boundary is a half-open [Start, End) range over a payload's leading axis.
type Boundary struct {
	Start int
	End   int
}

// Width returns the number of items covered by the boundary.
func (b Boundary) Width() int {
	return b.End - b.Start
}

// PlanChunks computes the boundary plan for a payload of length n split into
// chunks of at most size items. The plan holds ceil(n/size) contiguous,
// non-overlapping ranges; every range except possibly the last has exactly
// size items. n = 0 yields an empty plan.
func PlanChunks(n, size int) ([]Boundary, error) {
	if size < MinChunkSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, size)
	}

	count := n / size
	if n%size > 0 {
		count++
	}

	bounds := make([]Boundary, 0, count)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		bounds = append(bounds, Boundary{Start: start, End: end})
	}
	return bounds, nil
}

// PlanElements computes the elementwise boundary plan for a payload of
// length n: n ranges of width 1.
func PlanElements(n int) []Boundary {
	bounds := make([]Boundary, n)
	for i := range bounds {
		bounds[i] = Boundary{Start: i, End: i + 1}
	}
	return bounds
}
