package session

import (
	"sort"
	"sync"
)

// InMemoryStore is a volatile Store implementation keeping snapshots in a
// process-local map. It is safe for concurrent access and best suited for
// tests or ephemeral sessions. Snapshots are cloned on save and load to
// prevent external mutation of internal state.
type InMemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
}

// NewInMemoryStore constructs an empty in-memory snapshot store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{snapshots: make(map[string]*Snapshot)}
}

// Save stores a clone of the snapshot keyed by its id.
func (s *InMemoryStore) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snap.ID] = snap.Clone()
	return nil
}

// Load returns a clone of the stored snapshot or ErrNotFound.
func (s *InMemoryStore) Load(id string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[id]
	if !ok {
		return nil, ErrNotFound
	}
	return snap.Clone(), nil
}

// List returns all stored snapshot ids, sorted for determinism.
func (s *InMemoryStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.snapshots))
	for id := range s.snapshots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
