package dispatch

import (
	"errors"
	"fmt"
)

// Common dispatch errors.
var (
	// ErrNilFunc is returned by New when no wrapped function is supplied.
	ErrNilFunc = errors.New("wrapped function cannot be nil")

	// ErrInvalidSpec is returned by New when slot positions are negative
	// or the ordinal slot overlaps a payload slot.
	ErrInvalidSpec = errors.New("partition spec is invalid")

	// ErrInvalidChunkSize is returned when a chunked dispatch resolves a
	// chunk size below MinChunkSize.
	ErrInvalidChunkSize = errors.New("chunk size must be at least 1")

	// ErrArgumentCount is returned when the declared payload or ordinal
	// slots cannot be resolved against the actual call's arguments.
	ErrArgumentCount = errors.New("payload slots cannot be resolved against call arguments")

	// ErrDuplicateArgument is returned when a parameter is supplied both
	// positionally and by name with conflicting values.
	ErrDuplicateArgument = errors.New("argument supplied both positionally and by name")

	// ErrIndexOutOfRange is returned when a secondary payload slot is
	// shorter than the boundary plan derived from the first slot.
	ErrIndexOutOfRange = errors.New("payload slot is shorter than the boundary plan")

	// ErrNotCoercible is returned by AsDense for values that are not
	// sequence-like.
	ErrNotCoercible = errors.New("value cannot be coerced to a dense array")

	// ErrMixedResults is returned when partial results do not share one
	// container kind and cannot be merged.
	ErrMixedResults = errors.New("partial results have mixed container kinds")
)

// errInvalidSpecf wraps ErrInvalidSpec with a formatted detail message.
func errInvalidSpecf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSpec, fmt.Sprintf(format, args...))
}
