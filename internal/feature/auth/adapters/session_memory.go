package adapters

import (
	"context"
	"sync"

	"globalhub_backend/internal/feature/auth/domain/entity"
	"globalhub_backend/internal/feature/auth/usecase"
)

// sessionMemory is an in-memory implementation of the SessionRepository
// interface. It backs tests and serves as the fallback when Redis is
// unavailable; sessions then live only as long as the process.
type sessionMemory struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

// Compile-time check to ensure sessionMemory implements SessionRepository.
var _ usecase.SessionRepository = (*sessionMemory)(nil)

// NewSessionMemory creates a new instance of sessionMemory.
func NewSessionMemory() *sessionMemory {
	return &sessionMemory{sessions: map[string]entity.Session{}}
}

// Create persists a new session in memory.
func (r *sessionMemory) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

// FindByID retrieves a session by its ID.
// Expired sessions are treated as absent, matching the Redis TTL behavior.
func (r *sessionMemory) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, usecase.ErrSessionNotFound
	}
	if session.IsExpired() {
		r.Delete(ctx, id)
		return nil, usecase.ErrSessionNotFound
	}
	return &session, nil
}

// Delete removes a session. Deleting an absent session is a no-op.
func (r *sessionMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
