package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"quote_backend/internal/feature/auth/domain/entity"
)

// SessionTTL is the fixed lifetime of a session, counted from issuance.
// There is no sliding window; logging in again issues a fresh session.
const SessionTTL = 24 * time.Hour

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// Returns ErrEmailAlreadyExists when a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the given email address.
	// Returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the given ID.
	// Returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// ListAll retrieves every user, ordered by ID.
	ListAll(ctx context.Context) ([]*entity.User, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
	}
}

// newSessionID allocates a new opaque session token (64-character hex string).
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Signup registers a new user with a hashed password and returns the created record.
// It does not log the user in; the duplicate-email check is the unique index on
// the users table, not a separate lookup, so concurrent signups cannot both win.
func (u *authUsecase) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and creates a session bound to the user ID.
// It returns the user and the session token to be delivered as a cookie.
// To mitigate timing attacks, a bcrypt comparison runs even when the user does not exist.
func (u *authUsecase) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword is always called.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// One generic error for unknown email and wrong password.
	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := newSessionID()
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        token,
		UserID:    user.ID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	return user, token, nil
}

// Logout destroys the session identified by token.
// Destroying an unknown or already-destroyed session is not an error; the
// cleanup is best effort and only a store failure is reported.
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if err := u.sessions.Revoke(ctx, token); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// ResolveSession returns the user ID bound to the given session token.
// It fails when the session does not exist, has expired, or has been revoked.
func (u *authUsecase) ResolveSession(ctx context.Context, token string) (uint, error) {
	session, err := u.sessions.FindByID(ctx, token)
	if err != nil {
		return 0, err
	}
	if session.IsRevoked() {
		return 0, ErrSessionRevoked
	}
	if session.IsExpired() {
		return 0, ErrSessionExpired
	}
	return session.UserID, nil
}

// CurrentUser returns the user record for an authenticated user ID.
func (u *authUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// ListUsers returns every registered user. Used by the /db-check endpoint.
func (u *authUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return u.users.ListAll(ctx)
}
