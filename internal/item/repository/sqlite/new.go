package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"catalog-service/internal/item/repository"
	"catalog-service/pkg/log"
)

// created_at holds unix milliseconds; price holds the decimal string.
const schema = `
	CREATE TABLE IF NOT EXISTS items (
		id         TEXT PRIMARY KEY,
		name       TEXT    NOT NULL,
		price      TEXT    NOT NULL,
		created_at INTEGER NOT NULL
	)`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for items.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// EnsureSchema creates the items table when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite.EnsureSchema: %w", err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/sqlite.%s", method)
}
