// Package db opens the GORM database connection for the service.
package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "quote_backend/internal/feature/auth/adapters"
	authentity "quote_backend/internal/feature/auth/domain/entity"
	quoteentity "quote_backend/internal/feature/quotes/domain/entity"
)

// OpenDB connects to postgres using the DB_* environment variables, retrying
// for up to a minute so the service survives a database that is still coming
// up. With no DB_HOST or Cloud SQL instance configured it falls back to a
// local sqlite file for development.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	instance := os.Getenv("INSTANCE_CONNECTION_NAME")

	if host == "" && instance == "" {
		return openSQLite()
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	var dsn string
	if instance != "" {
		dsn = fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable",
			instance, user, pass, name)
	} else {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, pass, name)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		migrate(db)
	}

	return db
}

// openSQLite opens the local development database and always migrates it.
func openSQLite() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("./quotes.db"), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	dbPath, _ := filepath.Abs("./quotes.db")
	log.Println("USING_SQLITE:", dbPath)

	migrate(db)
	return db
}

func migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&authentity.User{},
		&authadapters.SessionModel{},
		&quoteentity.Quote{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
}
