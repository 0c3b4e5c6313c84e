// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "quote_backend/internal/feature/auth/adapters"
	"quote_backend/internal/feature/auth/usecase"
	"quote_backend/internal/platform/session"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation so sessions
// can be shared across instances. Otherwise, it falls back to the database.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return authadapters.NewSessionGorm(db)
}
