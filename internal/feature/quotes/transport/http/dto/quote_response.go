package dto

import (
	"time"

	"quote_backend/internal/feature/quotes/domain/entity"
)

// QuoteResponse represents a quote in API responses.
type QuoteResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Author    *string   `json:"author"`
	Tags      []string  `json:"tags"`
	UserID    *uint     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QuoteFromEntity converts a domain entity to the response shape.
// Tags always serialize as a JSON array, never null.
func QuoteFromEntity(q *entity.Quote) QuoteResponse {
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}
	return QuoteResponse{
		ID:        q.ID,
		Content:   q.Content,
		Author:    q.Author,
		Tags:      tags,
		UserID:    q.UserID,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// QuotesFromEntities converts a listing result to the response shape.
func QuotesFromEntities(quotes []entity.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		out = append(out, QuoteFromEntity(&quotes[i]))
	}
	return out
}
