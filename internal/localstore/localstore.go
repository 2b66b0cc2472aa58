// Package localstore is the offline-first persistence layer. It keeps one
// JSON value per (entity-type, date-key) pair plus a few user-global keys,
// over an injected key-value backend: in-memory for tests, SQLite-file for
// production.
package localstore

import (
	"encoding/json"
	"fmt"
	"time"
)

// KV is the storage backend contract. Values are opaque strings; absence is
// reported via the ok result, not an error.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Store wraps a KV backend with the daybook key scheme and JSON codec.
type Store struct {
	kv KV

	// Now is the clock used for record timestamps; overridable in tests.
	Now func() time.Time
}

// New constructs a Store over the given backend.
func New(kv KV) *Store {
	return &Store{kv: kv, Now: time.Now}
}

// Close releases the underlying backend.
func (s *Store) Close() error { return s.kv.Close() }

// getJSON unmarshals the value at key into out. Returns false (and leaves
// out untouched) when the key is absent.
func (s *Store) getJSON(key string, out interface{}) (bool, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) setJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Set(key, string(raw))
}
