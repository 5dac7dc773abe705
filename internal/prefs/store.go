// Package prefs provides the key-value preference store.
//
// Only small string preferences live here (the theme mode). Callers depend on
// the Store interface so tests can substitute a MemoryStore for the on-disk
// FileStore.
package prefs

import (
	"maps"
	"sync"
)

// Store is a persistent string key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
}

// MemoryStore is an in-process Store. Failures can be injected with
// FailReads and FailWrites.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	writes int

	FailReads  error
	FailWrites error
}

// NewMemoryStore returns a MemoryStore seeded with initial.
func NewMemoryStore(initial map[string]string) *MemoryStore {
	values := make(map[string]string, len(initial))
	maps.Copy(values, initial)
	return &MemoryStore{values: values}
}

// Get implements Store.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads != nil {
		return "", false, m.FailReads
	}
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Store.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	m.writes++
	return nil
}

// Writes returns how many successful Set calls were made.
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
