package database

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

var (
	db   *sql.DB
	once sync.Once
)

// Config holds database configuration
type Config struct {
	Path string
}

// Init opens the pre-built restaurant dataset. The file is read exactly once
// at startup and never written, so no journaling or migration setup applies.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		db, err = sql.Open("sqlite", "file:"+cfg.Path+"?mode=ro")
		if err != nil {
			return
		}

		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(2)

		err = db.Ping()
		if err != nil {
			return
		}

		log.Printf("Dataset opened: %s", cfg.Path)
	})

	if err != nil {
		return fmt.Errorf("failed to open dataset %s: %w", cfg.Path, err)
	}
	return nil
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call Init() first.")
	}
	return db
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
