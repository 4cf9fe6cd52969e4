// Package cache stores sheet snapshots in a local SQLite database so the
// CLI can work offline and skip refetching unchanged sheets.
package cache

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound indicates no snapshot is stored for the sheet.
var ErrNotFound = errors.New("sheet not cached")

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens (creating if needed) the snapshot database at dataSourceName
// and applies the schema. ":memory:" gives a private in-memory store.
func Open(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and
	// serializes writers.
	db.SetMaxOpenConns(1)

	c := &DB{db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (db *DB) migrate() error {
	migration := `
CREATE TABLE IF NOT EXISTS sheets (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    version INTEGER NOT NULL DEFAULT 0,
    row_count INTEGER NOT NULL DEFAULT 0,
    data BLOB NOT NULL,
    fetched_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sheets_name ON sheets(name);
`
	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
