// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login when the email is unknown or the password is wrong.
	// The same error covers both cases so responses do not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionNotFound is returned when a session cannot be found by token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionRevoked is returned when attempting to use a revoked session.
	ErrSessionRevoked = errors.New("session has been revoked")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")
)
