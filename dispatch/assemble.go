package dispatch

import (
	"fmt"

	"github.com/sliceworks/batchkit/dense"
)

// assemble merges partial results in boundary order. The merged shape is
// decided by the first partial's classification, not re-derived from the
// original payload:
//   - dense-array partials concatenate along the leading axis in chunked
//     mode and stack onto a new leading axis in elementwise mode;
//   - sequence partials flatten into one ordered sequence in chunked mode;
//   - anything else collects into an ordered sequence of partials.
func assemble(mode Mode, parts []any) (any, error) {
	first := Classify(parts[0])

	switch {
	case first.Kind == KindDenseArray:
		return mergeDense(mode, parts)
	case mode == Chunked && first.Kind == KindSequence:
		return flatten(parts), nil
	default:
		return append([]any(nil), parts...), nil
	}
}

// mergeDense concatenates or stacks dense partial results.
func mergeDense(mode Mode, parts []any) (*dense.Array, error) {
	arrs := make([]*dense.Array, len(parts))
	for i, p := range parts {
		a, ok := p.(*dense.Array)
		if !ok {
			return nil, fmt.Errorf("%w: partial %d is %T, want *dense.Array", ErrMixedResults, i, p)
		}
		arrs[i] = a
	}
	if mode == Elementwise {
		return dense.Stack(arrs...)
	}
	return dense.Concat(arrs...)
}

// flatten extends sequence partials into one ordered sequence. A non-
// sequence partial appearing mid-stream is kept as a single element.
func flatten(parts []any) []any {
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		c := Classify(p)
		if c.Kind != KindSequence {
			out = append(out, p)
			continue
		}
		for i := 0; i < c.Length; i++ {
			out = append(out, c.seq.Index(i).Interface())
		}
	}
	return out
}
