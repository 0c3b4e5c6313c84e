// Package entity defines the domain entities for the quotes feature.
package entity

import "time"

// Quote represents a shared quote.
// Author and UserID are nullable: a nil Author means the quote is
// unattributed, a nil UserID means it is anonymous (owned by nobody).
// Tags keep their insertion order and are not deduplicated.
type Quote struct {
	ID      uint    `gorm:"primaryKey"`
	Content string  `gorm:"type:text;not null"`
	Author  *string `gorm:"size:255"`

	// Tags is stored as a JSON-serialized column so the same schema works on
	// postgres and sqlite.
	Tags []string `gorm:"serializer:json;type:text"`

	UserID *uint `gorm:"index"`

	// CreatedAt is the default sort key for listings (descending).
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasTag reports whether the quote's tags contain the exact string tag.
func (q *Quote) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
