package dto

import (
	"time"

	"quote_backend/internal/feature/auth/domain/entity"
)

// UserResponse represents a user in API responses.
// It contains only the public-facing fields; the password hash is never serialized.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserFromEntity converts a domain entity to the response shape.
func UserFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
