// Package dense provides fixed-shape float64 arrays sliceable along their
// leading axis without copying.
//
// Arrays are row-major and contiguous. View and Row return sub-arrays that
// share the backing buffer, so slicing a memory-mapped array (see Map) only
// pages in the rows a caller actually touches. Key features:
//   - Leading-axis views and single-row views with zero allocation
//   - Memory-mapped read-only arrays backed by raw little-endian files
//   - Concat and Stack for reassembling per-chunk results
//
// Only Concat, Stack and Materialize allocate new buffers; everything else
// operates on views.
package dense
