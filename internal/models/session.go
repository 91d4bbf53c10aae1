package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session records which user is logged in within one client connection.
// It is created empty, set on login and cleared on logout. Sessions live in
// process memory only.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu          sync.RWMutex
	currentUser *string
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}
}

// CurrentUser returns the logged-in username, if any.
func (s *Session) CurrentUser() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return "", false
	}
	return *s.currentUser, true
}

// SetCurrentUser marks username as logged in.
func (s *Session) SetCurrentUser(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = &username
}

// ClearCurrentUser logs the current user out.
func (s *Session) ClearCurrentUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}
