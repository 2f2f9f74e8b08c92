// Package store is the persistence layer: a flat key/value store with
// JSON-encoded values, kept in memory and rewritten to a single JSON
// file on every mutation. It is the Go counterpart of the browser
// storage the rest of the application treats as its source of truth.
//
// The contract is availability over correctness: there is no other
// source of truth to reconcile against, so a malformed file or a
// malformed value is logged and treated as absent rather than surfaced
// as an error.
package store

import (
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Store is a file-backed key/value store. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	data   map[string]json.RawMessage
	path   string
	logger *zap.Logger
}

// Open loads the store file at path. A missing, empty, or corrupt file
// yields an empty store; opening never fails.
func Open(path string, logger *zap.Logger) *Store {
	s := &Store{
		data:   make(map[string]json.RawMessage),
		path:   path,
		logger: logger,
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("store file unreadable, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return
	}
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.logger.Warn("store file corrupt, starting empty",
			zap.String("path", s.path), zap.Error(err))
		s.data = make(map[string]json.RawMessage)
	}
}

func (s *Store) save() {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		s.logger.Error("store encode failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		s.logger.Error("store write failed",
			zap.String("path", s.path), zap.Error(err))
	}
}

// Get decodes the value stored under key into v and reports whether a
// usable value was present. A malformed stored value counts as absent.
func (s *Store) Get(key string, v any) bool {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.logger.Warn("stored value malformed, treating as absent",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set stores v under key and rewrites the backing file. Failures are
// logged, not returned.
func (s *Store) Set(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("value encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	s.mu.Lock()
	s.data[key] = raw
	s.save()
	s.mu.Unlock()
}

// Delete removes key and rewrites the backing file. Deleting an absent
// key is a no-op.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	if _, ok := s.data[key]; ok {
		delete(s.data, key)
		s.save()
	}
	s.mu.Unlock()
}

// Keys returns the stored keys in unspecified order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}
