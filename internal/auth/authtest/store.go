// Package authtest provides an in-memory SessionStore for tests.
package authtest

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/hotel-services/internal/auth"
)

type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]uint
	Revoked  []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]uint)}
}

func (s *MemoryStore) Save(_ context.Context, sess *auth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess.AccountID
	return nil
}

func (s *MemoryStore) Active(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok, nil
}

func (s *MemoryStore) Revoke(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	s.Revoked = append(s.Revoked, id)
	return nil
}

func (s *MemoryStore) RevokeAll(_ context.Context, accountID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, owner := range s.sessions {
		if owner == accountID {
			delete(s.sessions, id)
			s.Revoked = append(s.Revoked, id)
		}
	}
	return nil
}

var _ auth.SessionStore = (*MemoryStore)(nil)
