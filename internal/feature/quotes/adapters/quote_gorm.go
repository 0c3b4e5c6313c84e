// Package adapters provides repository implementations for the quotes feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"quote_backend/internal/feature/quotes/domain/entity"
	"quote_backend/internal/feature/quotes/usecase"
)

// quoteGorm is a GORM implementation of the QuoteRepository interface.
type quoteGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure quoteGorm implements QuoteRepository.
var _ usecase.QuoteRepository = (*quoteGorm)(nil)

// NewQuoteGorm creates a new instance of quoteGorm with the given gorm.DB connection.
func NewQuoteGorm(db *gorm.DB) *quoteGorm {
	return &quoteGorm{db: db}
}

// Create inserts a quote into the database.
func (r *quoteGorm) Create(ctx context.Context, q *entity.Quote) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// List retrieves all quotes ordered by creation time descending.
// Ties on created_at fall back to ID so the order stays deterministic.
func (r *quoteGorm) List(ctx context.Context) ([]entity.Quote, error) {
	var quotes []entity.Quote
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// ListByTag retrieves the quotes whose tags contain the exact string tag.
// Tags live in a JSON-serialized column, so membership is tested here rather
// than with a dialect-specific JSON operator; the ordered full fetch matches
// the no-pagination listing contract.
func (r *quoteGorm) ListByTag(ctx context.Context, tag string) ([]entity.Quote, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]entity.Quote, 0, len(all))
	for _, q := range all {
		if q.HasTag(tag) {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

// FindByID retrieves a quote by ID.
// Returns usecase.ErrQuoteNotFound when no such quote exists.
func (r *quoteGorm) FindByID(ctx context.Context, id uint) (*entity.Quote, error) {
	var q entity.Quote
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&q).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrQuoteNotFound
		}
		return nil, err
	}
	return &q, nil
}

// ReplaceOwned replaces content/author/tags with the ownership check folded
// into the UPDATE's WHERE clause, so a concurrent owner change cannot slip
// between a read and the write. RowsAffected disambiguates afterwards:
// zero rows means either the quote is gone or the actor is not the owner.
func (r *quoteGorm) ReplaceOwned(ctx context.Context, id uint, actor *uint, content string, author *string, tags []string) (*entity.Quote, error) {
	tx := r.db.WithContext(ctx).
		Model(&entity.Quote{}).
		Where("id = ?", id)
	if actor != nil {
		tx = tx.Where("user_id IS NULL OR user_id = ?", *actor)
	} else {
		tx = tx.Where("user_id IS NULL")
	}

	result := tx.
		Select("Content", "Author", "Tags").
		Updates(entity.Quote{Content: content, Author: author, Tags: tags})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, usecase.ErrNotQuoteOwner
	}

	return r.FindByID(ctx, id)
}

// Delete removes a quote by ID.
// Deleting a missing quote is a no-op, matching the idempotent delete contract.
func (r *quoteGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Quote{}, id).Error
}
