package dispatch

import (
	"fmt"
)

// Func is a wrapped function: it receives the full positional argument
// vector for one invocation and returns one partial result.
type Func func(args []any) (any, error)

// Dispatcher wraps a chunk-wise or element-wise function so callers can
// pass whole payloads. It is safe for concurrent use as long as the
// spec's ChunkSizeFunc is.
type Dispatcher struct {
	spec Spec
	fn   Func
}

// New creates a Dispatcher from a partition spec and a wrapped function.
func New(spec Spec, fn Func) (*Dispatcher, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &Dispatcher{spec: spec, fn: fn}, nil
}

// Spec returns the dispatcher's partition spec.
func (d *Dispatcher) Spec() Spec {
	return d.spec
}

// Call dispatches over positional arguments and returns the merged result.
func (d *Dispatcher) Call(args ...any) (any, error) {
	return d.dispatch(args, nil)
}

// CallNamed dispatches over positional arguments plus named arguments
// resolved through the spec's declared parameter names.
func (d *Dispatcher) CallNamed(args []any, named map[string]any) (any, error) {
	return d.dispatch(args, named)
}

// dispatch runs the orchestration loop: bind, plan, invoke per boundary in
// order, assemble. A wrapped-function error propagates immediately and any
// partial results accumulated for earlier boundaries are discarded.
func (d *Dispatcher) dispatch(args []any, named map[string]any) (any, error) {
	b, err := bind(d.spec, args, named)
	if err != nil {
		return nil, err
	}

	primary := b.primary()

	// Scalar-classified payloads pass through as a single whole-value
	// invocation; the result is returned without reassembly.
	if primary.Kind == KindScalar {
		return d.fn(b.args)
	}

	bounds, err := d.plan(primary.Length)
	if err != nil {
		return nil, err
	}
	if len(bounds) == 0 {
		return emptyResult(primary)
	}

	parts := make([]any, 0, len(bounds))
	for _, bound := range bounds {
		callArgs, invErr := d.invocation(b, bound)
		if invErr != nil {
			return nil, invErr
		}
		out, callErr := d.fn(callArgs)
		if callErr != nil {
			return nil, callErr
		}
		parts = append(parts, out)
	}

	return assemble(d.spec.Mode, parts)
}

// plan computes the boundary plan for a payload of length n.
func (d *Dispatcher) plan(n int) ([]Boundary, error) {
	if d.spec.Mode == Elementwise {
		return PlanElements(n), nil
	}
	return PlanChunks(n, d.spec.chunkSize())
}

// invocation builds the argument vector for one boundary: payload slots
// replaced by views for that range, the ordinal descriptor injected if
// configured, everything else broadcast unchanged.
func (d *Dispatcher) invocation(b *binding, bound Boundary) ([]any, error) {
	callArgs := make([]any, len(b.args))
	copy(callArgs, b.args)

	for j, payload := range b.payloads {
		var (
			v   any
			err error
		)
		if d.spec.Mode == Elementwise {
			v, err = payload.element(bound.Start)
		} else {
			v, err = payload.slice(bound.Start, bound.End)
		}
		if err != nil {
			return nil, fmt.Errorf("payload slot %d: %w", d.spec.SliceOn+j, err)
		}
		callArgs[d.spec.SliceOn+j] = v
	}

	if d.spec.InjectOrdinal {
		callArgs[d.spec.OrdinalOn] = Span{Start: bound.Start, Stop: bound.End}
	}
	return callArgs, nil
}

// emptyResult returns the empty container matching a zero-length payload's
// classification: an empty sequence, or a dense array with a zero leading
// axis.
func emptyResult(primary Classified) (any, error) {
	switch primary.Kind {
	case KindDenseArray:
		empty, err := primary.arr.View(0, 0)
		if err != nil {
			return nil, err
		}
		return empty.Materialize(), nil
	case KindSequence:
		return []any{}, nil
	default:
		return nil, fmt.Errorf("%w: scalar payload has no empty form", ErrMixedResults)
	}
}
