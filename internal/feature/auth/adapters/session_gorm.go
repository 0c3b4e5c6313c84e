package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"quote_backend/internal/feature/auth/domain/entity"
	"quote_backend/internal/feature/auth/usecase"
)

// sessionGorm is a GORM implementation of the SessionRepository interface.
// It is the fallback backend when Redis is not available; sessions then live
// in the same database as the rest of the data and survive restarts.
type sessionGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure sessionGorm implements SessionRepository.
var _ usecase.SessionRepository = (*sessionGorm)(nil)

// NewSessionGorm creates a new instance of sessionGorm.
func NewSessionGorm(db *gorm.DB) *sessionGorm {
	return &sessionGorm{db: db}
}

// Create persists a new session to the database.
func (r *sessionGorm) Create(ctx context.Context, session *entity.Session) error {
	model := SessionModelFromEntity(session)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID retrieves a session by its token value.
func (r *sessionGorm) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var model SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Revoke marks a session as revoked by its token value.
func (r *sessionGorm) Revoke(ctx context.Context, id string) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("id = ?", id).
		Update("revoked_at", now)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}
