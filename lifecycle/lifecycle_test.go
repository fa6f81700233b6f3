package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	var f Flags
	assert.False(t, f.IsSet("updated"))

	f.Set("updated")
	assert.True(t, f.IsSet("updated"))
	assert.False(t, f.IsSet("trained"))

	f.Clear("updated")
	assert.False(t, f.IsSet("updated"))
}

func TestAfterSuccess(t *testing.T) {
	t.Run("SetsFlagAfterReturn", func(t *testing.T) {
		var f Flags
		fn := AfterSuccess(&f, "updated", func(args []any) (any, error) {
			// The flag is only set once the call completes.
			assert.False(t, f.IsSet("updated"))
			return "out", nil
		})

		out, err := fn(nil)
		require.NoError(t, err)
		assert.Equal(t, "out", out)
		assert.True(t, f.IsSet("updated"))
	})

	t.Run("ErrorSkipsFlag", func(t *testing.T) {
		var f Flags
		boom := errors.New("boom")
		fn := AfterSuccess(&f, "updated", func(args []any) (any, error) {
			return nil, boom
		})

		_, err := fn(nil)
		assert.ErrorIs(t, err, boom)
		assert.False(t, f.IsSet("updated"))
	})
}

func TestRequire(t *testing.T) {
	var f Flags
	calls := 0
	fn := Require(&f, "trained", func(args []any) (any, error) {
		calls++
		return "out", nil
	})

	_, err := fn(nil)
	assert.ErrorIs(t, err, ErrPreconditionNotMet)
	assert.Equal(t, 0, calls)

	f.Set("trained")
	out, err := fn(nil)
	require.NoError(t, err)
	assert.Equal(t, "out", out)
	assert.Equal(t, 1, calls)
}

func TestRecorder(t *testing.T) {
	t.Run("PositionalAndNamed", func(t *testing.T) {
		r := NewRecorder("a", "b", "c")
		require.NoError(t, r.Record([]any{"a", "b"}, map[string]any{"c": 5, "d": "ignored"}))
		assert.Equal(t, map[string]any{"a": "a", "b": "b", "c": 5}, r.Captured())
	})

	t.Run("DuplicateConflicting", func(t *testing.T) {
		r := NewRecorder("a", "b")
		require.NoError(t, r.Record([]any{1, 2}, nil))

		err := r.Record([]any{"a", "b"}, map[string]any{"b": "c"})
		assert.ErrorIs(t, err, ErrDuplicateArgument)
		// The stored capture is unchanged after a failed record.
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, r.Captured())
	})

	t.Run("DuplicateEqualAllowed", func(t *testing.T) {
		r := NewRecorder("a")
		require.NoError(t, r.Record([]any{1}, map[string]any{"a": 1}))
		assert.Equal(t, map[string]any{"a": 1}, r.Captured())
	})

	t.Run("VariadicTailIgnored", func(t *testing.T) {
		r := NewRecorder("a", "b")
		require.NoError(t, r.Record([]any{1, 2, 3, 4}, nil))
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, r.Captured())
	})

	t.Run("Wrap", func(t *testing.T) {
		r := NewRecorder("x", "y")
		fn := r.Wrap(func(args []any) (any, error) { return args[0], nil })

		out, err := fn([]any{10, 20})
		require.NoError(t, err)
		assert.Equal(t, 10, out)
		assert.Equal(t, map[string]any{"x": 10, "y": 20}, r.Captured())
	})
}
