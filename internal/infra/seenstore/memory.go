package seenstore

import (
	"context"
	"sync"
)

// MemoryStore is the process local set of product order ids already handed to dispatch.
// It only grows and is lost on restart.
type MemoryStore struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ids: make(map[string]struct{})}
}

// MarkNew adds ids and returns those not previously present, in input order.
// Check and insert happen under one lock, so an id is returned by at most one call.
func (s *MemoryStore) MarkNew(_ context.Context, ids []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := s.ids[id]; ok {
			continue
		}
		s.ids[id] = struct{}{}
		fresh = append(fresh, id)
	}
	return fresh, nil
}

// Seed marks ids as seen without reporting them, returning how many were added.
func (s *MemoryStore) Seed(ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, id := range ids {
		if _, ok := s.ids[id]; ok {
			continue
		}
		s.ids[id] = struct{}{}
		added++
	}
	return added
}

func (s *MemoryStore) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
