package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"quote_backend/internal/app/di"
	"quote_backend/internal/app/router"
	authadapters "quote_backend/internal/feature/auth/adapters"
	authhandler "quote_backend/internal/feature/auth/transport/handler"
	authusecase "quote_backend/internal/feature/auth/usecase"
	quoteadapters "quote_backend/internal/feature/quotes/adapters"
	quotehandler "quote_backend/internal/feature/quotes/transport/handler"
	quoteusecase "quote_backend/internal/feature/quotes/usecase"
	platformhandler "quote_backend/internal/platform/http/handler"
	infraredis "quote_backend/internal/platform/redis"
	"quote_backend/internal/platform/session"

	infradb "quote_backend/internal/platform/db"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Redis (optional: sessions fall back to the database without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions stored in database.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	quoteRepo := quoteadapters.NewQuoteGorm(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo)
	quoteUC := quoteusecase.NewQuoteUsecase(quoteRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	quoteH := quotehandler.NewQuoteHandler(quoteUC)
	checkH := platformhandler.NewDBCheckHandler(authUC)

	// Session middleware resolves the cookie into the request context
	identify := session.Identify(authUC)

	r := router.NewRouter(authH, quoteH, checkH, identify)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
