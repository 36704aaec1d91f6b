package usecase

import (
	"context"

	"globalhub_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the key-value persistence layer for sessions.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID.
	// Returns ErrSessionNotFound when the session is absent or expired.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes a session from storage. Deleting a session that does not
	// exist is not an error; logout must be idempotent.
	Delete(ctx context.Context, id string) error
}
