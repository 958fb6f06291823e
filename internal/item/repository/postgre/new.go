package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"catalog-service/internal/item/repository"
	"catalog-service/pkg/log"
)

const schema = `
	CREATE TABLE IF NOT EXISTS items (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		price      NUMERIC(12, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for items.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// EnsureSchema creates the items table when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgre.EnsureSchema: %w", err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/postgre.%s", method)
}
