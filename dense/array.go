package dense

import (
	"errors"
	"fmt"
)

// Common array errors.
var (
	ErrEmptyShape    = errors.New("array shape cannot be empty")
	ErrNegativeDim   = errors.New("array dimensions must be non-negative")
	ErrRangeInvalid  = errors.New("view range is out of bounds")
	ErrShapeMismatch = errors.New("arrays have incompatible shapes")
	ErrNoParts       = errors.New("no arrays to merge")
)

// Array is a row-major float64 array of fixed shape.
// The zero value is not usable; construct with New, FromValues, FromRows or Map.
type Array struct {
	// data holds the elements in row-major order. Views share this slice.
	data []float64

	// shape holds the extent of each axis; len(shape) >= 1.
	shape []int

	// mapping is non-nil only on the owning array returned by Map.
	mapping *fileMapping
}

// New creates a zero-filled array with the given shape.
func New(shape ...int) (*Array, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	return &Array{
		data:  make([]float64, n),
		shape: append([]int(nil), shape...),
	}, nil
}

// FromValues creates a 1-D array holding the given values.
// The values are copied.
func FromValues(values ...float64) *Array {
	return &Array{
		data:  append([]float64(nil), values...),
		shape: []int{len(values)},
	}
}

// FromRows creates a 2-D array from rows of equal width.
// Returns ErrShapeMismatch if row widths differ.
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return &Array{data: nil, shape: []int{0, 0}}, nil
	}
	width := len(rows[0])
	data := make([]float64, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrShapeMismatch, i, len(row), width)
		}
		data = append(data, row...)
	}
	return &Array{data: data, shape: []int{len(rows), width}}, nil
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// NDim returns the number of axes.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Len returns the extent of the leading axis.
func (a *Array) Len() int {
	return a.shape[0]
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return len(a.data)
}

// rowSize returns the number of elements per leading-axis entry.
func (a *Array) rowSize() int {
	n := 1
	for _, d := range a.shape[1:] {
		n *= d
	}
	return n
}

// At returns the element at the given index, one per axis.
func (a *Array) At(index ...int) float64 {
	return a.data[a.flatten(index)]
}

// Set assigns the element at the given index, one per axis.
// Panics if the array is a read-only mapping.
func (a *Array) Set(v float64, index ...int) {
	a.data[a.flatten(index)] = v
}

// flatten converts a multi-axis index into a flat offset.
func (a *Array) flatten(index []int) int {
	if len(index) != len(a.shape) {
		panic(fmt.Sprintf("dense: index has %d axes, array has %d", len(index), len(a.shape)))
	}
	offset := 0
	for axis, i := range index {
		if i < 0 || i >= a.shape[axis] {
			panic(fmt.Sprintf("dense: index %d out of range for axis %d (extent %d)", i, axis, a.shape[axis]))
		}
		offset = offset*a.shape[axis] + i
	}
	return offset
}

// View returns the sub-array covering leading-axis rows [start, end).
// The view shares the backing buffer; no elements are copied.
func (a *Array) View(start, end int) (*Array, error) {
	if start < 0 || end < start || end > a.shape[0] {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrRangeInvalid, start, end, a.shape[0])
	}
	rs := a.rowSize()
	shape := append([]int{end - start}, a.shape[1:]...)
	return &Array{
		data:  a.data[start*rs : end*rs],
		shape: shape,
	}, nil
}

// Row returns row i as a view with one fewer axis.
// For a 1-D array the returned view has shape [1]; use At for the scalar.
func (a *Array) Row(i int) (*Array, error) {
	if a.NDim() == 1 {
		return a.View(i, i+1)
	}
	v, err := a.View(i, i+1)
	if err != nil {
		return nil, err
	}
	return &Array{data: v.data, shape: append([]int(nil), a.shape[1:]...)}, nil
}

// Values returns the elements in row-major order.
// The returned slice aliases the backing buffer; callers must not grow it.
func (a *Array) Values() []float64 {
	return a.data
}

// Materialize returns a copy of the array backed by freshly allocated memory.
// Useful for detaching a view from a memory-mapped file.
func (a *Array) Materialize() *Array {
	return &Array{
		data:  append([]float64(nil), a.data...),
		shape: append([]int(nil), a.shape...),
	}
}

// Equal reports whether two arrays have the same shape and elements.
func (a *Array) Equal(b *Array) bool {
	if b == nil || len(a.shape) != len(b.shape) {
		return false
	}
	for i, d := range a.shape {
		if b.shape[i] != d {
			return false
		}
	}
	for i, v := range a.data {
		if b.data[i] != v {
			return false
		}
	}
	return true
}

// Concat joins arrays along the leading axis, in order.
// All parts must agree on the trailing shape. Allocates a new buffer.
func Concat(parts ...*Array) (*Array, error) {
	if len(parts) == 0 {
		return nil, ErrNoParts
	}
	first := parts[0]
	rows := 0
	size := 0
	for i, p := range parts {
		if err := sameTrailingShape(first, p); err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		rows += p.shape[0]
		size += len(p.data)
	}
	data := make([]float64, 0, size)
	for _, p := range parts {
		data = append(data, p.data...)
	}
	shape := append([]int{rows}, first.shape[1:]...)
	return &Array{data: data, shape: shape}, nil
}

// Stack joins arrays of identical shape along a new leading axis.
// Allocates a new buffer.
func Stack(parts ...*Array) (*Array, error) {
	if len(parts) == 0 {
		return nil, ErrNoParts
	}
	first := parts[0]
	data := make([]float64, 0, len(parts)*len(first.data))
	for i, p := range parts {
		if err := sameShape(first, p); err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		data = append(data, p.data...)
	}
	shape := append([]int{len(parts)}, first.shape...)
	return &Array{data: data, shape: shape}, nil
}

// checkShape validates a shape and returns the total element count.
func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrEmptyShape
	}
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: got %d", ErrNegativeDim, d)
		}
		n *= d
	}
	return n, nil
}

func sameTrailingShape(a, b *Array) error {
	if len(a.shape) != len(b.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, b.shape)
	}
	for i := 1; i < len(a.shape); i++ {
		if a.shape[i] != b.shape[i] {
			return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, b.shape)
		}
	}
	return nil
}

func sameShape(a, b *Array) error {
	if len(a.shape) != len(b.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, b.shape)
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, b.shape)
		}
	}
	return nil
}
