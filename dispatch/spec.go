package dispatch

// Mode selects the partitioning strategy for a dispatch.
type Mode int

const (
	// Chunked dispatch issues one invocation per boundary of up to
	// ChunkSize items.
	Chunked Mode = iota

	// Elementwise dispatch issues one invocation per scalar-like item.
	Elementwise
)

// String returns the mode's name.
func (m Mode) String() string {
	if m == Elementwise {
		return "elementwise"
	}
	return "chunked"
}

// Span is the ordinal descriptor injected into a configured argument slot:
// a chunk's absolute [Start, Stop) position within the original payload.
type Span struct {
	Start int
	Stop  int
}

// Spec describes how a Dispatcher slices a call's arguments.
//
// Payload slots are the SliceCount consecutive argument positions starting
// at SliceOn; each receives sliced data derived from one shared boundary
// plan. All remaining arguments are broadcast unchanged to every
// invocation. The zero value slices a single payload at position 0 in
// chunked mode; a chunk size source must still be supplied.
type Spec struct {
	// Mode selects chunked or elementwise partitioning.
	Mode Mode

	// SliceOn is the position of the first payload slot.
	SliceOn int

	// SliceCount is the number of lock-step payload slots. Zero is
	// treated as one.
	SliceCount int

	// InjectOrdinal enables Span injection at OrdinalOn.
	InjectOrdinal bool

	// OrdinalOn is the argument position that receives the Span ordinal
	// descriptor. Ignored unless InjectOrdinal is set.
	OrdinalOn int

	// ChunkSize is the number of items per chunk in chunked mode.
	ChunkSize int

	// ChunkSizeFunc, when set, supplies the chunk size at call time and
	// takes precedence over ChunkSize. It models configuration held by an
	// owning object and read per call; it must be stable for the duration
	// of one dispatch.
	ChunkSizeFunc func() int

	// Params holds the wrapped function's declared parameter names, in
	// positional order. Required only for CallNamed.
	Params []string
}

// slots returns the number of payload slots, treating zero as one.
func (s Spec) slots() int {
	if s.SliceCount < 1 {
		return 1
	}
	return s.SliceCount
}

// chunkSize resolves the effective chunk size for one dispatch.
func (s Spec) chunkSize() int {
	if s.ChunkSizeFunc != nil {
		return s.ChunkSizeFunc()
	}
	return s.ChunkSize
}

// validate checks slot geometry at construction time.
func (s Spec) validate() error {
	if s.SliceOn < 0 {
		return errInvalidSpecf("first payload slot %d is negative", s.SliceOn)
	}
	if s.SliceCount < 0 {
		return errInvalidSpecf("payload slot count %d is negative", s.SliceCount)
	}
	if s.InjectOrdinal {
		if s.OrdinalOn < 0 {
			return errInvalidSpecf("ordinal slot %d is negative", s.OrdinalOn)
		}
		if s.OrdinalOn >= s.SliceOn && s.OrdinalOn < s.SliceOn+s.slots() {
			return errInvalidSpecf("ordinal slot %d overlaps payload slots [%d, %d)",
				s.OrdinalOn, s.SliceOn, s.SliceOn+s.slots())
		}
	}
	if s.Mode == Chunked && s.ChunkSizeFunc == nil && s.ChunkSize < 0 {
		return errInvalidSpecf("chunk size %d is negative", s.ChunkSize)
	}
	return nil
}
