// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"quote_backend/internal/feature/auth/domain/entity"
	"quote_backend/internal/feature/auth/usecase"
)

// userGorm is a GORM implementation of the UserRepository interface.
// It works against both the postgres driver (production) and the sqlite
// driver (local fallback and tests).
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm with the given gorm.DB connection.
// Constructor for dependency injection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// GORM's error translation covers most cases; raw driver errors can still
// surface, so the postgres SQLSTATE and the sqlite message are checked too.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create inserts a user into the database.
// Returns usecase.ErrEmailAlreadyExists when a user with the same email exists.
// The unique index on email is the only duplicate check, so there is no
// check-then-insert race between concurrent signups.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// Returns usecase.ErrUserNotFound when no such user exists.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// Returns usecase.ErrUserNotFound when no such user exists.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ListAll retrieves every user ordered by ID.
func (r *userGorm) ListAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
