package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
)

// ErrSessionNotFound is returned for unknown or dropped session IDs.
var ErrSessionNotFound = errors.New("session not found")

// SessionMemoryRepository keeps live sessions in process memory.
// Sessions are lost on restart.
type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
}

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: make(map[uuid.UUID]*models.Session)}
}

func (r *SessionMemoryRepository) Save(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *SessionMemoryRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *SessionMemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
