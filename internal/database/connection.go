package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config holds the database connection settings
type Config struct {
	Driver string // "sqlite3" or "postgres"
	DSN    string // file path for sqlite3, connection string for postgres
}

// DefaultConfig returns a file-backed sqlite configuration
func DefaultConfig() Config {
	return Config{
		Driver: "sqlite3",
		DSN:    filepath.Join("data", "norwegian_language.db"),
	}
}

// ConfigFromEnv builds a Config from DB_DRIVER and DB_DSN, falling back
// to the sqlite default when unset
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		cfg.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DSN = dsn
	}
	return cfg
}

// Connect establishes a connection and initializes the schema
func Connect(cfg Config) (*sqlx.DB, error) {
	if cfg.Driver == "sqlite3" && cfg.DSN != ":memory:" {
		if dir := filepath.Dir(cfg.DSN); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %v", err)
			}
		}
	}

	db, err := sqlx.Connect(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if cfg.Driver == "sqlite3" {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// initializeSchema creates the tables if they don't exist
func initializeSchema(db *sqlx.DB) error {
	statements := []struct {
		table string
		ddl   string
	}{
		{"verb_forms", `
			CREATE TABLE IF NOT EXISTS verb_forms (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				infinitive TEXT UNIQUE NOT NULL,
				presens TEXT,
				preteritum TEXT,
				pres_perfektum TEXT,
				english TEXT
			)
		`},
		{"themes", `
			CREATE TABLE IF NOT EXISTS themes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL
			)
		`},
		{"texts", `
			CREATE TABLE IF NOT EXISTS texts (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				theme_id INTEGER,
				content TEXT,
				FOREIGN KEY (theme_id) REFERENCES themes(id)
			)
		`},
		{"tests", `
			CREATE TABLE IF NOT EXISTS tests (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				question TEXT NOT NULL,
				correct_answer TEXT NOT NULL,
				options TEXT NOT NULL,
				test_type TEXT NOT NULL,
				theme_id INTEGER,
				FOREIGN KEY (theme_id) REFERENCES themes(id)
			)
		`},
		{"quiz_results", `
			CREATE TABLE IF NOT EXISTS quiz_results (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				test_type TEXT NOT NULL,
				total INTEGER NOT NULL,
				correct INTEGER NOT NULL,
				taken_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`},
	}

	for _, stmt := range statements {
		ddl := stmt.ddl
		if db.DriverName() == "postgres" {
			ddl = postgresDDL(ddl)
		}
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("failed to create %s table: %v", stmt.table, err)
		}
	}

	return nil
}

// postgresDDL rewrites the sqlite auto-increment column for PostgreSQL
func postgresDDL(ddl string) string {
	return strings.Replace(ddl, "INTEGER PRIMARY KEY AUTOINCREMENT", "SERIAL PRIMARY KEY", -1)
}
