// Package store contains the per-node in-memory table.
//
// The store keeps no history and no versions: a key maps to at most one
// current value, a delete removes the mapping, and the last write to arrive
// at the mutex wins. Durability lives in the shared Postgres store, not here;
// this table serves the owner's reads fast and, on the other successors,
// holds the replica copies the owner pushes to them.
package store

import "sync"

// Store is an in-memory key-value map safe for concurrent use. Operations on
// a single key are serialized by the lock; there is no ordering across keys.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns a copy of the value for key, or false if the key is absent.
// The copy keeps callers from aliasing the map's backing array.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

// Set stores value under key, replacing any previous value. The value is
// copied on the way in for the same aliasing reason Get copies on the way out.
func (s *Store) Set(key string, value []byte) {
	in := make([]byte, len(value))
	copy(in, value)

	s.mu.Lock()
	s.data[key] = in
	s.mu.Unlock()
}

// Delete removes key and reports whether it was present.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.data[key]
	delete(s.data, key)
	return ok
}

// Exists reports whether key is present.
func (s *Store) Exists(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

// Keys returns all current keys in no particular order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
