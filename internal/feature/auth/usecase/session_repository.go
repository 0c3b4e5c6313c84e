package usecase

import (
	"context"

	"quote_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
//
// Implementations must be safe for concurrent use by distinct tokens; a Redis
// backend and a GORM backend both satisfy this contract (see internal/platform/session
// and the adapters package).
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID (the cookie token value).
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Revoke marks a session as revoked by setting RevokedAt.
	// Returns ErrSessionNotFound when no such session exists.
	Revoke(ctx context.Context, id string) error
}
