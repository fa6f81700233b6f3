package dispatch

import (
	"fmt"
	"reflect"

	"github.com/sliceworks/batchkit/dense"
)

// Kind is the closed classification of a payload value.
type Kind int

// Payload kinds, in classification priority order.
const (
	// KindScalar marks values that are never split further: strings, byte
	// sequences, numbers, nil, and any other non-collection value.
	KindScalar Kind = iota

	// KindSequence marks ordered, indexable collections.
	KindSequence

	// KindDenseArray marks dense numeric arrays sliceable along their
	// leading axis, including memory-mapped ones.
	KindDenseArray
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindDenseArray:
		return "dense-array"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Classified is the result of classifying a payload value: its kind, its
// length along the leading axis, and handles for view-based slicing.
type Classified struct {
	// Kind is the payload's classification.
	Kind Kind

	// Length is the leading-axis length; zero for scalars.
	Length int

	// value is the original payload.
	value any

	// seq is the reflected collection; valid only for KindSequence.
	seq reflect.Value

	// arr is the dense array; valid only for KindDenseArray.
	arr *dense.Array
}

// Classify inspects a payload value and classifies it as Scalar, Sequence,
// or DenseArray. Strings and byte sequences classify as Scalar even though
// they are indexable: they are never split into characters. Go arrays are
// copied into a slice once so boundaries can be sliced as views later.
func Classify(v any) Classified {
	switch t := v.(type) {
	case nil:
		return Classified{Kind: KindScalar, value: v}
	case string, []byte:
		return Classified{Kind: KindScalar, value: v}
	case *dense.Array:
		if t == nil {
			return Classified{Kind: KindScalar, value: v}
		}
		return Classified{Kind: KindDenseArray, Length: t.Len(), value: v, arr: t}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return Classified{Kind: KindSequence, Length: rv.Len(), value: v, seq: rv}
	case reflect.Array:
		// Fixed-size arrays are not sliceable unless addressable; copy the
		// elements into a slice once up front.
		seq := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem()), rv.Len(), rv.Len())
		reflect.Copy(seq, rv)
		return Classified{Kind: KindSequence, Length: rv.Len(), value: v, seq: seq}
	default:
		return Classified{Kind: KindScalar, value: v}
	}
}

// Value returns the original payload value.
func (c Classified) Value() any {
	return c.value
}

// slice returns the view covering [start, end) of the payload's leading
// axis. Sequence and dense views share the payload's backing storage.
func (c Classified) slice(start, end int) (any, error) {
	switch c.Kind {
	case KindSequence:
		if end > c.Length {
			return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrIndexOutOfRange, start, end, c.Length)
		}
		return c.seq.Slice(start, end).Interface(), nil
	case KindDenseArray:
		v, err := c.arr.View(start, end)
		if err != nil {
			return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrIndexOutOfRange, start, end, c.Length)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: scalar payload cannot be sliced", ErrIndexOutOfRange)
	}
}

// element returns the payload's i-th leading-axis item. Dense rows are
// returned as views with one fewer axis; rows of a 1-D dense array are
// returned as bare float64 values.
func (c Classified) element(i int) (any, error) {
	if i >= c.Length {
		return nil, fmt.Errorf("%w: element %d of %d", ErrIndexOutOfRange, i, c.Length)
	}
	switch c.Kind {
	case KindSequence:
		return c.seq.Index(i).Interface(), nil
	case KindDenseArray:
		if c.arr.NDim() == 1 {
			return c.arr.At(i), nil
		}
		row, err := c.arr.Row(i)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d of %d", ErrIndexOutOfRange, i, c.Length)
		}
		return row, nil
	default:
		return nil, fmt.Errorf("%w: scalar payload has no elements", ErrIndexOutOfRange)
	}
}
