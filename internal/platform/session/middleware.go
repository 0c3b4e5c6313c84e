// Package session provides the session cookie middleware and the Redis-backed
// session store.
package session

import (
	"context"

	"github.com/gin-gonic/gin"
)

// CookieName is the name of the cookie carrying the session token.
const CookieName = "quote_session"

// ContextUserID is the gin context key holding the authenticated user's ID.
const ContextUserID = "userID"

// Resolver resolves a session token to the bound user ID.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type Resolver interface {
	// ResolveSession returns the user ID for a valid session token and an
	// error when the session is missing, expired, or revoked.
	ResolveSession(ctx context.Context, token string) (uint, error)
}

// Identify returns a Gin middleware that resolves the session cookie and, when
// it names a valid session, stores the user ID under ContextUserID.
//
// It never aborts the request: the acting identity is optional for most quote
// operations, and handlers that require a login check the context themselves.
func Identify(sessions Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := sessions.ResolveSession(c.Request.Context(), token)
		if err != nil {
			// Invalid cookie is the same as no cookie.
			c.Next()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the gin context, or nil when
// the request carries no valid session.
func UserID(c *gin.Context) *uint {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
