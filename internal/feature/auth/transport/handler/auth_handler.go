// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"quote_backend/internal/feature/auth/domain/entity"
	"quote_backend/internal/feature/auth/transport/http/dto"
	"quote_backend/internal/feature/auth/usecase"
	"quote_backend/internal/platform/session"
)

// sessionCookieMaxAge is the cookie Max-Age in seconds, matching the session TTL.
var sessionCookieMaxAge = int(usecase.SessionTTL.Seconds())

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns the created record.
	Signup(ctx context.Context, email, password string) (*entity.User, error)
	// Login authenticates a user and returns the user plus a session token.
	Login(ctx context.Context, email, password, userAgent, ipAddress string) (*entity.User, string, error)
	// Logout destroys the session identified by token.
	Logout(ctx context.Context, token string) error
	// CurrentUser returns the user record for an authenticated user ID.
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
// It depends on the AuthUsecase interface and processes JSON requests/responses.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
// Constructor for dependency injection.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles the user registration API endpoint.
// - Binds the request JSON to SignupReq; validation failure returns 400
// - Duplicate email returns 409
// - Success returns 201 with the new user's ID; the user is not logged in
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("signup conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"message": "user created successfully", "userId": user.ID})
}

// Login handles the user login API endpoint.
// - Binds the request JSON to LoginReq; validation failure returns 400
// - Unknown email and wrong password both return 401 with the same message
// - Success sets the session cookie and returns 200 with the user's ID
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	// httpOnly cookie; Secure is off because the service may sit behind plain HTTP.
	c.SetCookie(session.CookieName, token, sessionCookieMaxAge, "/", "", false, true)

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "userId": user.ID})
}

// Logout handles the user logout API endpoint.
// The session named by the cookie is destroyed best effort and the cookie is
// always cleared; only a session store failure yields 500.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)

	if err == nil && token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

// Me handles the "who am I" API endpoint.
// It relies on the session middleware having resolved the cookie; without a
// valid session, or when the session's user no longer exists, it returns 401.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := session.UserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), *userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		slog.Error("current user lookup failed", "error", err, "user_id", *userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.UserFromEntity(user)})
}
