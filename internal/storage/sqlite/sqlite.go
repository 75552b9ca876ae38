// Package sqlite opens the SQLite database the student repository runs on.
//
// The blank import registers the "sqlite3" driver with database/sql; the
// returned *sqlx.DB is a connection pool that is safe for concurrent use.
package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/aanand-mishra/student-store/internal/config"

	_ "github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver registered by go-sqlite3.
const DriverName = "sqlite3"

// schema is the table the repository expects. CREATE TABLE IF NOT EXISTS is
// idempotent, so it runs on every startup.
const schema = `
	CREATE TABLE IF NOT EXISTS student (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT,
		score    NUMERIC,
		birthday DATE
	)
`

// New opens the database at cfg.StoragePath.
func New(cfg *config.Config) (*sqlx.DB, error) {
	return Open(context.Background(), cfg.StoragePath)
}

// Open connects to the SQLite database at path and creates the student
// table if it does not exist yet.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: open db: %w", err)
	}

	// Every connection to ":memory:" gets its own empty database.
	if isMemory(path) {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.Open: ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.Open: create table: %w", err)
	}

	return db, nil
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}
