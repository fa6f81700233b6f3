//go:build unix

package dense

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mapFloat64 memory-maps the first n float64 values of the file read-only
// and reinterprets the mapping in place. No bytes are copied; the kernel
// pages data in as views are read. Assumes a little-endian host, matching
// the on-disk format.
func mapFloat64(path string, n int) ([]float64, *fileMapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if n == 0 {
		return nil, &fileMapping{}, nil
	}

	raw, err := unix.Mmap(int(f.Fd()), 0, n*bytesPerElement, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	data := unsafe.Slice((*float64)(unsafe.Pointer(&raw[0])), n)
	return data, &fileMapping{raw: raw}, nil
}

// close unmaps the file.
func (m *fileMapping) close() error {
	if m.raw == nil {
		return nil
	}
	err := unix.Munmap(m.raw)
	m.raw = nil
	return err
}
