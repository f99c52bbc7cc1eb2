package identity

import (
	"context"
	"sync"

	"github.com/kith-app/kith/pkg/domain"
)

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[domain.UserID]*Identity
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[domain.UserID]*Identity),
	}
}

func (s *MemoryStore) Save(_ context.Context, ident *Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *ident
	s.byID[ident.ID] = &cp
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id domain.UserID) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ident, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *ident
	return &cp, nil
}

func (s *MemoryStore) Delete(_ context.Context, id domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

// Len reports the number of stored identities. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
