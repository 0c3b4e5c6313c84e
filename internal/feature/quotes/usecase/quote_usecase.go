package usecase

import (
	"context"
	"strings"

	"quote_backend/internal/feature/quotes/domain/entity"
)

// QuoteRepository abstracts the persistence layer for quote entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type QuoteRepository interface {
	// Create persists a new quote to the storage.
	Create(ctx context.Context, quote *entity.Quote) error

	// List retrieves all quotes ordered by creation time descending.
	List(ctx context.Context) ([]entity.Quote, error)

	// ListByTag retrieves the quotes whose tags contain the exact string tag,
	// ordered by creation time descending.
	ListByTag(ctx context.Context, tag string) ([]entity.Quote, error)

	// FindByID retrieves a quote by ID.
	// Returns ErrQuoteNotFound when no such quote exists.
	FindByID(ctx context.Context, id uint) (*entity.Quote, error)

	// ReplaceOwned replaces content/author/tags of the quote identified by id,
	// guarded by an ownership condition evaluated in the same statement:
	// anonymous quotes match any actor, owned quotes only their owner.
	// Returns ErrQuoteNotFound or ErrNotQuoteOwner accordingly.
	ReplaceOwned(ctx context.Context, id uint, actor *uint, content string, author *string, tags []string) (*entity.Quote, error)

	// Delete removes a quote by ID. Deleting a missing quote is not an error.
	Delete(ctx context.Context, id uint) error
}

// QuoteUsecase provides business logic for quote operations.
type QuoteUsecase struct {
	repo QuoteRepository
}

// NewQuoteUsecase creates a new QuoteUsecase with the given repository.
func NewQuoteUsecase(r QuoteRepository) *QuoteUsecase {
	return &QuoteUsecase{repo: r}
}

// Create validates and persists a new quote.
// The owner is the acting user resolved from the session, or nil for
// anonymous requests; any client-supplied identity is ignored upstream.
func (u *QuoteUsecase) Create(ctx context.Context, actor *uint, content string, author *string, tags []string) (*entity.Quote, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if tags == nil {
		tags = []string{}
	}

	quote := &entity.Quote{
		Content: content,
		Author:  author,
		Tags:    tags,
		UserID:  actor,
	}
	if err := u.repo.Create(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// List returns all quotes, or only those carrying the given tag when tag is
// non-empty. Ordered by creation time descending in both cases.
func (u *QuoteUsecase) List(ctx context.Context, tag string) ([]entity.Quote, error) {
	if tag != "" {
		return u.repo.ListByTag(ctx, tag)
	}
	return u.repo.List(ctx)
}

// Get returns the quote with the given ID.
func (u *QuoteUsecase) Get(ctx context.Context, id uint) (*entity.Quote, error) {
	return u.repo.FindByID(ctx, id)
}

// Update replaces a quote's content, author, and tags wholesale.
// The ownership check compares the stored owner against the session-derived
// actor; the owner itself is never changed by an update.
func (u *QuoteUsecase) Update(ctx context.Context, id uint, actor *uint, content string, author *string, tags []string) (*entity.Quote, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if tags == nil {
		tags = []string{}
	}
	return u.repo.ReplaceOwned(ctx, id, actor, content, author, tags)
}

// Delete removes the quote with the given ID.
// It succeeds whether or not the quote existed.
func (u *QuoteUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
