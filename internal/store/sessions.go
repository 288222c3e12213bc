// internal/store/sessions.go
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brewline/pos-backend/internal/models"
)

// SessionStore holds the identities currently logged in. Sessions live in
// memory only; a restart starts logged out.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]models.User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]models.User),
	}
}

// Login installs a new session identity, replacing any existing session
// for the same display name.
func (s *SessionStore) Login(name string, role models.UserRole) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, u := range s.sessions {
		if u.Name == name {
			delete(s.sessions, id)
		}
	}

	user := models.User{
		ID:         uuid.New(),
		Name:       name,
		Role:       role,
		LoggedInAt: time.Now(),
	}
	s.sessions[user.ID] = user
	return user
}

// Logout removes the session. Idempotent.
func (s *SessionStore) Logout(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Get returns the live session for id, if any.
func (s *SessionStore) Get(id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.sessions[id]
	if !ok {
		return models.User{}, ErrSessionNotFound
	}
	return u, nil
}

// Count reports how many sessions are live.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
