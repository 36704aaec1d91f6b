package di

import (
	authadapters "globalhub_backend/internal/feature/auth/adapters"
	"globalhub_backend/internal/feature/auth/usecase"
	"globalhub_backend/internal/platform/session"

	"github.com/redis/go-redis/v9"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to an in-process store (sessions are then lost
// on restart, which is acceptable for local development).
func NewSessionRepository(rdb *redis.Client) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionMemory()
}
