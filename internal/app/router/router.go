// Package router registers the HTTP routes for the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "quote_backend/internal/feature/auth/transport/handler"
	quotehandler "quote_backend/internal/feature/quotes/transport/handler"
	"quote_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all routes registered.
// The identify middleware resolves the session cookie into the request
// context; it never rejects a request, so it wraps every route that cares
// about the acting user.
func NewRouter(authH *authhandler.AuthHandler, quoteH *quotehandler.QuoteHandler,
	checkH *handler.DBCheckHandler, identify gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	// Global middleware must be attached before any route is registered;
	// gin captures each route's handler chain at registration time.
	// Browser clients may live anywhere.
	r.Use(cors.Default())

	// Liveness and connectivity probes
	r.GET("/", handler.Root)
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	r.GET("/db-check", checkH.Check)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/me", identify, authH.Me)
	}

	quote := r.Group("/quote")
	quote.Use(identify)
	{
		quote.POST("", quoteH.Create)
		quote.GET("", quoteH.List)
		quote.GET("/:id", quoteH.Get)
		quote.PUT("/:id", quoteH.Update)
		quote.DELETE("/:id", quoteH.Delete)
	}

	return r
}
