// Package store provides the write-once key/value collaborator that
// consumes batch-produced output: one bulk load, then immutable serving.
//
// Mutation calls arriving after the store is sealed are accepted
// syntactically, logged as warnings, and perform no change; queries keep
// returning the loaded data. This makes the store safe to hand to pipeline
// code that blindly calls add/update/delete.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Common store errors.
var (
	ErrKeyMismatch  = errors.New("keys and values must have the same length")
	ErrEmptyKey     = errors.New("key cannot be empty")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrKeyNotFound  = errors.New("key not found")
	ErrDumpNotFound = errors.New("dump file not found")
)

// WriteOnce is a key/value store that accepts mutations until sealed.
// After Seal (normally performed by LoadDump), add/update/delete calls
// log a warning and return normally with no effect. Thread-safe.
type WriteOnce struct {
	mu      sync.RWMutex
	entries map[string][]byte

	// order preserves insertion order for deterministic dumps.
	order []string

	sealed bool
	logger zerolog.Logger
}

// NewWriteOnce creates an empty, unsealed store.
func NewWriteOnce(logger zerolog.Logger) *WriteOnce {
	return &WriteOnce{
		entries: make(map[string][]byte),
		logger:  logger.With().Str("component", "store").Logger(),
	}
}

// Add inserts parallel ordered slices of unique keys and opaque byte
// payloads. On a sealed store the call logs a warning and changes nothing.
func (s *WriteOnce) Add(keys []string, values [][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		s.logger.Warn().Msg("store is write-once, add ignored")
		return nil
	}
	if len(keys) != len(values) {
		return fmt.Errorf("%w: %d keys, %d values", ErrKeyMismatch, len(keys), len(values))
	}
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key == "" {
			return ErrEmptyKey
		}
		if _, exists := s.entries[key]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q repeated in batch", ErrDuplicateKey, key)
		}
		seen[key] = struct{}{}
	}
	for i, key := range keys {
		s.entries[key] = append([]byte(nil), values[i]...)
		s.order = append(s.order, key)
	}
	return nil
}

// Update replaces the values of existing keys. On a sealed store the call
// logs a warning and changes nothing.
func (s *WriteOnce) Update(keys []string, values [][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		s.logger.Warn().Msg("store is write-once, update ignored")
		return nil
	}
	if len(keys) != len(values) {
		return fmt.Errorf("%w: %d keys, %d values", ErrKeyMismatch, len(keys), len(values))
	}
	for _, key := range keys {
		if _, exists := s.entries[key]; !exists {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
	}
	for i, key := range keys {
		s.entries[key] = append([]byte(nil), values[i]...)
	}
	return nil
}

// Delete removes keys. On a sealed store the call logs a warning and
// changes nothing. Missing keys are ignored.
func (s *WriteOnce) Delete(keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		s.logger.Warn().Msg("store is write-once, delete ignored")
		return nil
	}
	for _, key := range keys {
		if _, exists := s.entries[key]; !exists {
			continue
		}
		delete(s.entries, key)
		for i, k := range s.order {
			if k == key {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Query returns the payload stored for key, or false when absent.
// The returned slice is a copy.
func (s *WriteOnce) Query(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), value...), true
}

// Len returns the number of stored entries.
func (s *WriteOnce) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Keys returns the stored keys in insertion order.
func (s *WriteOnce) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Seal makes the store immutable. Sealing is idempotent.
func (s *WriteOnce) Seal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sealed = true
}

// Sealed reports whether the store has been sealed.
func (s *WriteOnce) Sealed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sealed
}
