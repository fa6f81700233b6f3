package store

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOnce_Add(t *testing.T) {
	s := NewWriteOnce(zerolog.Nop())

	require.NoError(t, s.Add([]string{"k1", "k2"}, [][]byte{[]byte("v1"), []byte("v2")}))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"k1", "k2"}, s.Keys())

	v, ok := s.Query("k1")
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), v)

	_, ok = s.Query("absent")
	assert.False(t, ok)

	t.Run("LengthMismatch", func(t *testing.T) {
		err := s.Add([]string{"k3"}, nil)
		assert.ErrorIs(t, err, ErrKeyMismatch)
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		err := s.Add([]string{"k1"}, [][]byte{[]byte("other")})
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("DuplicateKeyWithinBatch", func(t *testing.T) {
		fresh := NewWriteOnce(zerolog.Nop())
		err := fresh.Add([]string{"a", "a"}, [][]byte{[]byte("v1"), []byte("v2")})
		assert.ErrorIs(t, err, ErrDuplicateKey)

		// The failed batch leaves no partial state behind.
		assert.Equal(t, 0, fresh.Len())
		assert.Empty(t, fresh.Keys())
	})

	t.Run("EmptyKey", func(t *testing.T) {
		err := s.Add([]string{""}, [][]byte{[]byte("v")})
		assert.ErrorIs(t, err, ErrEmptyKey)
	})

	t.Run("QueryReturnsCopy", func(t *testing.T) {
		v, ok := s.Query("k2")
		require.True(t, ok)
		v[0] = 'X'

		again, _ := s.Query("k2")
		assert.Equal(t, []byte("v2"), again)
	})
}

func TestWriteOnce_UpdateDelete(t *testing.T) {
	s := NewWriteOnce(zerolog.Nop())
	require.NoError(t, s.Add([]string{"k1", "k2"}, [][]byte{[]byte("v1"), []byte("v2")}))

	require.NoError(t, s.Update([]string{"k1"}, [][]byte{[]byte("v1b")}))
	v, _ := s.Query("k1")
	assert.Equal(t, []byte("v1b"), v)

	assert.ErrorIs(t, s.Update([]string{"nope"}, [][]byte{[]byte("v")}), ErrKeyNotFound)

	require.NoError(t, s.Delete([]string{"k2", "never-there"}))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"k1"}, s.Keys())
}

func TestWriteOnce_Sealed(t *testing.T) {
	s := NewWriteOnce(zerolog.Nop())
	require.NoError(t, s.Add([]string{"k1"}, [][]byte{[]byte("v1")}))
	s.Seal()
	require.True(t, s.Sealed())

	// Post-seal mutations return normally and change nothing.
	require.NoError(t, s.Add([]string{"k2"}, [][]byte{[]byte("v2")}))
	require.NoError(t, s.Update([]string{"k1"}, [][]byte{[]byte("changed")}))
	require.NoError(t, s.Delete([]string{"k1"}))

	assert.Equal(t, 1, s.Len())
	v, ok := s.Query("k1")
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), v)
}

func TestDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.json")

	src := NewWriteOnce(zerolog.Nop())
	require.NoError(t, src.Add(
		[]string{"doc1", "doc2", "doc3"},
		[][]byte{[]byte("payload one"), []byte{0x00, 0xFF, 0x10}, []byte("payload three")},
	))
	require.NoError(t, src.WriteDump(path))

	t.Run("LoadSealsAndServes", func(t *testing.T) {
		s, err := LoadDump(path, zerolog.Nop())
		require.NoError(t, err)
		assert.True(t, s.Sealed())
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []string{"doc1", "doc2", "doc3"}, s.Keys())

		v, ok := s.Query("doc2")
		require.True(t, ok)
		assert.Equal(t, []byte{0x00, 0xFF, 0x10}, v)

		// A second add is accepted but has no effect.
		require.NoError(t, s.Add([]string{"doc4"}, [][]byte{[]byte("late")}))
		_, ok = s.Query("doc4")
		assert.False(t, ok)
		v, _ = s.Query("doc1")
		assert.Equal(t, []byte("payload one"), v)
	})

	t.Run("MissingDump", func(t *testing.T) {
		_, err := LoadDump(filepath.Join(t.TempDir(), "absent.json"), zerolog.Nop())
		assert.ErrorIs(t, err, ErrDumpNotFound)
	})

	t.Run("CorruptDump", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, writeTestFile(bad, "not json"))
		_, err := LoadDump(bad, zerolog.Nop())
		assert.Error(t, err)
	})

	t.Run("SealedStoreMayDump", func(t *testing.T) {
		loaded, err := LoadDump(path, zerolog.Nop())
		require.NoError(t, err)

		again := filepath.Join(t.TempDir(), "again.json")
		require.NoError(t, loaded.WriteDump(again))

		reload, err := LoadDump(again, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, 3, reload.Len())
	})
}
