package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) a SQLite database at the given path and enables
// WAL journal mode.
func Open(path string) (*sql.DB, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id       TEXT PRIMARY KEY,
    username      TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    creation_time TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS day_entries (
    user_id         TEXT NOT NULL,
    date            TEXT NOT NULL,
    todos           TEXT NOT NULL DEFAULT '[]',
    tag_allocations TEXT NOT NULL DEFAULT '{}',
    variable_values TEXT NOT NULL DEFAULT '{}',
    PRIMARY KEY (user_id, date)
);
CREATE TABLE IF NOT EXISTS journals (
    journal_id TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL,
    date       TEXT NOT NULL,
    title      TEXT NOT NULL DEFAULT '',
    content    TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_journals_user_date ON journals (user_id, date);
CREATE TABLE IF NOT EXISTS user_configs (
    user_id   TEXT PRIMARY KEY,
    tags      TEXT NOT NULL DEFAULT '[]',
    variables TEXT NOT NULL DEFAULT '[]',
    habits    TEXT NOT NULL DEFAULT '[]'
);
`

// Bootstrap creates the schema when missing.
func Bootstrap(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
