package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. DB_TYPE selects the
// backend: "postgres" connects to DATABASE_URL, anything else opens a
// SQLite file under the data directory.
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "postgres" {
		return connectPostgres()
	}
	return connectSQLite()
}

func connectPostgres() error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	DB = db
	return initializeSchema()
}

func connectSQLite() error {
	// Create data directory if it doesn't exist
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "quizbot.db")
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	DB = db
	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS quiz_sessions (
			user_id BIGINT PRIMARY KEY,
			difficulty TEXT NOT NULL,
			current_prompt TEXT NOT NULL,
			correct INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL DEFAULT 0,
			version INTEGER NOT NULL DEFAULT 1,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create quiz_sessions table: %v", err)
	}

	return nil
}
