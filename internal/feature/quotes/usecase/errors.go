// Package usecase implements the business logic for the quotes feature.
package usecase

import "errors"

var (
	// ErrEmptyContent is returned when a quote's content is empty or whitespace-only.
	ErrEmptyContent = errors.New("quote content is required")

	// ErrQuoteNotFound is returned when a quote cannot be found by ID.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrNotQuoteOwner is returned when a caller tries to mutate a quote owned by another user.
	ErrNotQuoteOwner = errors.New("quote belongs to another user")
)
