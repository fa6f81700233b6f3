package dense

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// bytesPerElement is the on-disk size of one float64.
const bytesPerElement = 8

// fileMapping tracks the platform resources behind a mapped array.
type fileMapping struct {
	raw []byte
}

// Map opens a raw little-endian float64 file as a read-only array of the
// given shape. On unix platforms the file is memory-mapped, so views of the
// returned array only page in the rows that are actually read. The caller
// must Close the returned array to release the mapping.
func Map(path string, shape ...int) (*Array, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	want := int64(n) * bytesPerElement
	if info.Size() < want {
		return nil, fmt.Errorf("%w: file %s holds %d bytes, shape %v needs %d",
			ErrShapeMismatch, path, info.Size(), shape, want)
	}

	data, mapping, err := mapFloat64(path, n)
	if err != nil {
		return nil, err
	}

	return &Array{
		data:    data,
		shape:   append([]int(nil), shape...),
		mapping: mapping,
	}, nil
}

// Close releases the file mapping behind the array, if any.
// Views created from a mapped array become invalid after Close.
func (a *Array) Close() error {
	if a.mapping == nil {
		return nil
	}
	err := a.mapping.close()
	a.mapping = nil
	a.data = nil
	return err
}

// WriteFile writes the array's elements to path as raw little-endian
// float64 values, the format Map reads. The write is atomic: a temporary
// file is written first and renamed into place.
func WriteFile(path string, a *Array) error {
	buf := make([]byte, len(a.data)*bytesPerElement)
	for i, v := range a.data {
		binary.LittleEndian.PutUint64(buf[i*bytesPerElement:], math.Float64bits(v))
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, buf, 0600); err != nil {
		return fmt.Errorf("failed to write array file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename array file: %w", err)
	}
	return nil
}
