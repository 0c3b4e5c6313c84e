package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"quote_backend/internal/feature/auth/domain/entity"
	"quote_backend/internal/feature/auth/usecase"
)

// SessionRedis implements usecase.SessionRepository using Redis.
// Session expiry is enforced by the key TTL, so expired sessions disappear
// without any cleanup job.
type SessionRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure SessionRedis implements SessionRepository.
var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

// sessionKey returns the Redis key for a session.
func (r *SessionRedis) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// Create persists a new session to Redis with a TTL matching its expiry.
func (r *SessionRedis) Create(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	return r.client.Set(ctx, r.sessionKey(session.ID), data, ttl).Err()
}

// FindByID retrieves a session by its token value.
func (r *SessionRedis) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Revoke marks a session as revoked.
// The revoked record is kept with a short TTL for audit purposes.
func (r *SessionRedis) Revoke(ctx context.Context, id string) error {
	session, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()
	session.RevokedAt = &now

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return r.client.Set(ctx, r.sessionKey(id), data, 24*time.Hour).Err()
}
