// Package dispatch wraps functions written against one chunk or one element
// so callers can pass an entire payload of arbitrary size.
//
// A Dispatcher partitions the payload into contiguous chunks (or individual
// elements), invokes the wrapped function once per partition, and reassembles
// the partial results into a single output matching the container kind the
// function produced. Key features:
//   - Chunked and elementwise dispatch modes sharing one skeleton
//   - Multiple payload arguments sliced in lock-step with one boundary plan
//   - Optional ordinal (start, stop) injection for global-offset tracking
//   - Type-preserving reassembly: dense arrays concatenate, sequences flatten
//
// Execution is strictly sequential and synchronous: invocations run in
// boundary order, never concurrently, and a wrapped-function error propagates
// immediately, discarding partial results. Memory-mapped dense payloads are
// sliced as views so only the active chunk is paged in.
package dispatch
