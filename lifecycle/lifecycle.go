// Package lifecycle provides the small wrappers that surround batch
// pipelines: boolean lifecycle flags set after a call completes or checked
// before one starts, and a recorder that captures a call's arguments by
// parameter name.
package lifecycle

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/sliceworks/batchkit/dispatch"
)

// Common lifecycle errors.
var (
	// ErrPreconditionNotMet is returned by a Require wrapper when the
	// guarded flag is still false.
	ErrPreconditionNotMet = errors.New("required lifecycle flag is not set")

	// ErrDuplicateArgument is returned by a Recorder when a parameter is
	// supplied both positionally and by name with conflicting values.
	ErrDuplicateArgument = errors.New("argument supplied both positionally and by name")
)

// Flags holds named boolean lifecycle flags on an owning object.
// The zero value is ready to use. Safe for concurrent access.
type Flags struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// Set marks the named flag true.
func (f *Flags) Set(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.flags == nil {
		f.flags = make(map[string]bool)
	}
	f.flags[name] = true
}

// Clear marks the named flag false.
func (f *Flags) Clear(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.flags == nil {
		return
	}
	f.flags[name] = false
}

// IsSet reports whether the named flag is true.
func (f *Flags) IsSet(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.flags[name]
}

// AfterSuccess wraps fn so that flag is set on flags after fn returns
// without error. The return value passes through untouched; an error skips
// the flag and the owning object's state is unaffected.
func AfterSuccess(flags *Flags, flag string, fn dispatch.Func) dispatch.Func {
	return func(args []any) (any, error) {
		out, err := fn(args)
		if err != nil {
			return nil, err
		}
		flags.Set(flag)
		return out, nil
	}
}

// Require wraps fn behind a flag precondition: when the flag is false the
// wrapped function is not called and ErrPreconditionNotMet is returned.
func Require(flags *Flags, flag string, fn dispatch.Func) dispatch.Func {
	return func(args []any) (any, error) {
		if !flags.IsSet(flag) {
			return nil, fmt.Errorf("%w: %q", ErrPreconditionNotMet, flag)
		}
		return fn(args)
	}
}

// Recorder captures one call's arguments as a parameter-name-to-value
// mapping: positional arguments map through the declared parameter names
// in order, then named arguments overlay. Parameters beyond the declared
// names are ignored, mirroring variadic tails.
type Recorder struct {
	params   []string
	mu       sync.RWMutex
	captured map[string]any
}

// NewRecorder creates a Recorder for a callable with the given declared
// parameter names, in positional order.
func NewRecorder(params ...string) *Recorder {
	return &Recorder{params: append([]string(nil), params...)}
}

// Record builds and stores the name-to-value mapping for one call.
// A name supplied both positionally and by keyword with conflicting values
// fails with ErrDuplicateArgument and leaves the stored capture unchanged.
func (r *Recorder) Record(args []any, named map[string]any) error {
	captured := make(map[string]any, len(r.params))
	for i, name := range r.params {
		if i >= len(args) {
			break
		}
		captured[name] = args[i]
	}
	for name, value := range named {
		if prev, ok := captured[name]; ok && !reflect.DeepEqual(prev, value) {
			return fmt.Errorf("%w: parameter %q", ErrDuplicateArgument, name)
		}
		// Only declared parameters are captured.
		for _, p := range r.params {
			if p == name {
				captured[name] = value
				break
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.captured = captured
	return nil
}

// Captured returns the mapping stored by the most recent Record call.
func (r *Recorder) Captured() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]any, len(r.captured))
	for k, v := range r.captured {
		out[k] = v
	}
	return out
}

// Wrap returns a dispatch.Func that records positional arguments before
// delegating to fn.
func (r *Recorder) Wrap(fn dispatch.Func) dispatch.Func {
	return func(args []any) (any, error) {
		if err := r.Record(args, nil); err != nil {
			return nil, err
		}
		return fn(args)
	}
}
