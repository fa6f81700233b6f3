package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// dumpEntry is one key/value pair in a dump file. Values are opaque bytes,
// base64-encoded by the JSON marshaler.
type dumpEntry struct {
	Key   string `json:"key"`
	Value []byte `json:"value"`
}

// LoadDump reads the dump at path into a fresh store, performs one warm-up
// point lookup with a random placeholder key to force lazy index structures
// to materialize, and seals the store. All subsequent mutations are
// warn-and-ignore.
func LoadDump(path string, logger zerolog.Logger) (*WriteOnce, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDumpNotFound, path)
		}
		return nil, fmt.Errorf("failed to read dump file: %w", err)
	}

	var entries []dumpEntry
	if unmarshalErr := json.Unmarshal(data, &entries); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal dump file %s: %w", path, unmarshalErr)
	}

	s := NewWriteOnce(logger)
	keys := make([]string, len(entries))
	values := make([][]byte, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		values[i] = e.Value
	}
	if addErr := s.Add(keys, values); addErr != nil {
		return nil, fmt.Errorf("failed to load dump %s: %w", path, addErr)
	}

	// Warm up with a placeholder key that cannot collide with real data.
	s.Query(ulid.Make().String())

	s.Seal()
	s.logger.Info().Str("path", path).Int("entries", s.Len()).Msg("dump loaded, store sealed")
	return s, nil
}

// WriteDump writes the store's entries to path in insertion order, in the
// format LoadDump reads. The write is atomic: a temporary file is written
// first and renamed into place. Sealed stores may still be dumped.
func (s *WriteOnce) WriteDump(path string) error {
	s.mu.RLock()
	entries := make([]dumpEntry, 0, len(s.order))
	for _, key := range s.order {
		entries = append(entries, dumpEntry{Key: key, Value: s.entries[key]})
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dump: %w", err)
	}

	tempPath := path + ".tmp"
	if writeErr := os.WriteFile(tempPath, data, 0600); writeErr != nil {
		return fmt.Errorf("failed to write dump file: %w", writeErr)
	}
	if renameErr := os.Rename(tempPath, path); renameErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename dump file: %w", renameErr)
	}
	return nil
}
