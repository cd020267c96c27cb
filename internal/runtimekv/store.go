// Package runtimekv holds the runtime key/value override layer.
//
// Overrides are plain string pairs set by the bootstrap or by
// collaborators at runtime; the admin endpoint only reads sorted
// snapshots of them. Last write wins per key; there is no atomicity
// across keys.
package runtimekv

import (
	"sort"
	"sync"
)

// Entry is one override in a snapshot.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Store is a concurrent map of runtime overrides.
type Store struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]string)}
}

// Set stores an override.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
}

// Get returns the override for key and whether it exists.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

// Delete removes an override.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Snapshot returns every override sorted by key.
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	out := make([]Entry, 0, len(s.entries))
	for k, v := range s.entries {
		out = append(out, Entry{Key: k, Value: v})
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
