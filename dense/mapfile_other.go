//go:build !unix

package dense

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// mapFloat64 reads the first n float64 values of the file into memory.
// Platforms without unix mmap fall back to a full read behind the same API.
func mapFloat64(path string, n int) ([]float64, *fileMapping, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	data := make([]float64, n)
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*bytesPerElement:]))
	}
	return data, &fileMapping{}, nil
}

// close is a no-op for the in-memory fallback.
func (m *fileMapping) close() error {
	return nil
}
