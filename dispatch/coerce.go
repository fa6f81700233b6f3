package dispatch

import (
	"fmt"
	"reflect"

	"github.com/sliceworks/batchkit/dense"
)

// AsDense converts a sequence-like merged result into a dense array:
// numeric elements become a 1-D array, nested equal-width numeric rows a
// 2-D array, and dense-array elements are stacked onto a new leading axis.
// An existing *dense.Array passes through unchanged. Non-sequence values
// (bare numbers, strings) fail with ErrNotCoercible.
func AsDense(v any) (*dense.Array, error) {
	if a, ok := v.(*dense.Array); ok {
		return a, nil
	}

	c := Classify(v)
	if c.Kind != KindSequence {
		return nil, fmt.Errorf("%w: %T", ErrNotCoercible, v)
	}
	if c.Length == 0 {
		return dense.FromValues(), nil
	}

	switch Classify(c.seq.Index(0).Interface()).Kind {
	case KindDenseArray:
		return stackElements(c)
	case KindSequence:
		return rowsFromNested(c)
	default:
		return valuesFrom(c)
	}
}

// valuesFrom builds a 1-D array from a sequence of numeric elements.
func valuesFrom(c Classified) (*dense.Array, error) {
	values := make([]float64, c.Length)
	for i := 0; i < c.Length; i++ {
		f, err := toFloat(c.seq.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		values[i] = f
	}
	return dense.FromValues(values...), nil
}

// rowsFromNested builds a 2-D array from a sequence of numeric rows.
// Ragged rows surface as a shape mismatch from dense.FromRows.
func rowsFromNested(c Classified) (*dense.Array, error) {
	rows := make([][]float64, c.Length)
	for i := 0; i < c.Length; i++ {
		rc := Classify(c.seq.Index(i).Interface())
		if rc.Kind != KindSequence {
			return nil, fmt.Errorf("%w: element %d is %s, want sequence", ErrNotCoercible, i, rc.Kind)
		}
		row := make([]float64, rc.Length)
		for j := 0; j < rc.Length; j++ {
			f, err := toFloat(rc.seq.Index(j).Interface())
			if err != nil {
				return nil, fmt.Errorf("element [%d][%d]: %w", i, j, err)
			}
			row[j] = f
		}
		rows[i] = row
	}
	return dense.FromRows(rows)
}

// stackElements stacks a sequence of dense arrays onto a new leading axis.
func stackElements(c Classified) (*dense.Array, error) {
	arrs := make([]*dense.Array, c.Length)
	for i := 0; i < c.Length; i++ {
		a, ok := c.seq.Index(i).Interface().(*dense.Array)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not a dense array", ErrNotCoercible, i)
		}
		arrs[i] = a
	}
	return dense.Stack(arrs...)
}

// toFloat converts any numeric Go value to float64.
func toFloat(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	default:
		return 0, fmt.Errorf("%w: %T is not numeric", ErrNotCoercible, v)
	}
}
