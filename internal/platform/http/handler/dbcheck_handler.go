package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"quote_backend/internal/feature/auth/domain/entity"
	"quote_backend/internal/feature/auth/transport/http/dto"
)

// UserLister lists all registered users.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserLister interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
}

// DBCheckHandler handles the /db-check endpoint, a connectivity probe that
// lists the registered users (public fields only).
type DBCheckHandler struct {
	users UserLister
}

// NewDBCheckHandler creates a new instance of DBCheckHandler.
func NewDBCheckHandler(users UserLister) *DBCheckHandler {
	return &DBCheckHandler{users: users}
}

// Check handles GET /db-check.
// A successful round trip to the database returns the user list; any failure
// returns 500.
func (h *DBCheckHandler) Check(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("db check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database connection failed"})
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserFromEntity(u))
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}
