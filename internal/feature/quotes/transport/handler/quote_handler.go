// Package handler provides HTTP handlers for the quotes feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quote_backend/internal/feature/quotes/domain/entity"
	"quote_backend/internal/feature/quotes/transport/http/dto"
	"quote_backend/internal/feature/quotes/usecase"
	"quote_backend/internal/platform/session"
)

// QuoteUsecase defines the usecase for quote operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type QuoteUsecase interface {
	Create(ctx context.Context, actor *uint, content string, author *string, tags []string) (*entity.Quote, error)
	List(ctx context.Context, tag string) ([]entity.Quote, error)
	Get(ctx context.Context, id uint) (*entity.Quote, error)
	Update(ctx context.Context, id uint, actor *uint, content string, author *string, tags []string) (*entity.Quote, error)
	Delete(ctx context.Context, id uint) error
}

// QuoteHandler handles HTTP requests for quote operations.
type QuoteHandler struct {
	quotes QuoteUsecase
}

// NewQuoteHandler creates a new instance of QuoteHandler.
func NewQuoteHandler(quotes QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// parseID parses the :id path parameter. Non-integer input is treated the
// same as an unknown quote.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /quote.
// - 400 when content is missing, empty, or whitespace-only
// - 201 with the persisted quote otherwise
// The owner is the session user; anonymous requests create unowned quotes.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quote content is required"})
		return
	}

	quote, err := h.quotes.Create(c.Request.Context(), session.UserID(c), req.Content, req.Author, req.Tags)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyContent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quote content is required"})
			return
		}
		slog.Error("quote create failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create quote"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "quote created successfully",
		"quote":   dto.QuoteFromEntity(quote),
	})
}

// List handles GET /quote and GET /quote?tag=.
// With a tag parameter only quotes whose tags contain that exact string are
// returned. Always ordered by creation time descending, full result set.
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.quotes.List(c.Request.Context(), c.Query("tag"))
	if err != nil {
		slog.Error("quote list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch quotes"})
		return
	}
	c.JSON(http.StatusOK, dto.QuotesFromEntities(quotes))
}

// Get handles GET /quote/:id.
// Unknown and non-integer IDs both return 404.
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}

	quote, err := h.quotes.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
			return
		}
		slog.Error("quote fetch failed", "error", err, "quote_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch quote"})
		return
	}

	c.JSON(http.StatusOK, dto.QuoteFromEntity(quote))
}

// Update handles PUT /quote/:id.
// - 400 when content is missing or whitespace-only
// - 404 when the quote does not exist (or the ID is not an integer)
// - 403 when the quote is owned by a different user than the session's
// - 200 with the replaced quote otherwise
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}

	var req dto.UpdateQuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quote content is required"})
		return
	}

	quote, err := h.quotes.Update(c.Request.Context(), id, session.UserID(c), req.Content, req.Author, req.Tags)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyContent):
			c.JSON(http.StatusBadRequest, gin.H{"error": "quote content is required"})
		case errors.Is(err, usecase.ErrQuoteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		case errors.Is(err, usecase.ErrNotQuoteOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only update your own quotes"})
		default:
			slog.Error("quote update failed", "error", err, "quote_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update quote"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "quote updated successfully",
		"quote":   dto.QuoteFromEntity(quote),
	})
}

// Delete handles DELETE /quote/:id.
// The delete is idempotent: the success message is returned whether or not
// the quote existed, and a non-integer ID simply has nothing to delete.
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if ok {
		if err := h.quotes.Delete(c.Request.Context(), id); err != nil {
			slog.Error("quote delete failed", "error", err, "quote_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete quote"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "quote deleted successfully"})
}
