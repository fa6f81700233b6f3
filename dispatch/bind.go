package dispatch

import (
	"fmt"
	"reflect"
)

// binding is the resolved form of one call: the full positional argument
// vector plus the classified payload slots. Broadcast arguments stay in
// place; payload slots are replaced per invocation.
type binding struct {
	// args is the full positional vector with named arguments resolved.
	args []any

	// payloads holds one classification per payload slot, in slot order.
	payloads []Classified
}

// primary returns the classification driving the boundary plan.
func (b *binding) primary() Classified {
	return b.payloads[0]
}

// bind resolves the spec's payload and ordinal slots against the actual
// call's positional and named arguments. Named arguments map onto positions
// through Spec.Params. Only the first slot's length drives the shared
// boundary plan; a shorter secondary slot surfaces as ErrIndexOutOfRange
// later, when the offending slice is attempted.
func bind(spec Spec, args []any, named map[string]any) (*binding, error) {
	width := len(args)

	// Map named arguments onto positions via the declared parameter names.
	byPosition := make(map[int]any, len(named))
	for name, value := range named {
		pos := -1
		for i, p := range spec.Params {
			if p == name {
				pos = i
				break
			}
		}
		if pos < 0 {
			return nil, fmt.Errorf("%w: no declared parameter %q", ErrArgumentCount, name)
		}
		if pos < len(args) {
			if !reflect.DeepEqual(args[pos], value) {
				return nil, fmt.Errorf("%w: parameter %q", ErrDuplicateArgument, name)
			}
			continue
		}
		byPosition[pos] = value
		if pos+1 > width {
			width = pos + 1
		}
	}

	full := make([]any, width)
	supplied := make([]bool, width)
	copy(full, args)
	for i := range args {
		supplied[i] = true
	}
	for pos, v := range byPosition {
		full[pos] = v
		supplied[pos] = true
	}

	// A named argument beyond the positional width must not leave holes:
	// every position up to the widest resolved one needs a value.
	for i, ok := range supplied {
		if !ok {
			return nil, fmt.Errorf("%w: position %d not supplied (call resolved %d arguments)",
				ErrArgumentCount, i, width)
		}
	}

	slots := spec.slots()
	payloads := make([]Classified, 0, slots)
	for j := 0; j < slots; j++ {
		pos := spec.SliceOn + j
		if pos >= width {
			return nil, fmt.Errorf("%w: payload slot %d not supplied (call resolved %d arguments)",
				ErrArgumentCount, pos, width)
		}
		payloads = append(payloads, Classify(full[pos]))
	}

	if spec.InjectOrdinal && spec.OrdinalOn >= width {
		return nil, fmt.Errorf("%w: ordinal slot %d not supplied (call resolved %d arguments)",
			ErrArgumentCount, spec.OrdinalOn, width)
	}

	return &binding{args: full, payloads: payloads}, nil
}
