package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Schema for the two resource tables. books.author_id is ON DELETE
// RESTRICT: deleting an author that still has books fails at the
// database rather than silently orphaning or cascading.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id         BIGSERIAL PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		bio        TEXT NOT NULL,
		birth_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id           BIGSERIAL PRIMARY KEY,
		title        VARCHAR(255) NOT NULL,
		description  TEXT NOT NULL,
		publish_date DATE NOT NULL,
		author_id    BIGINT NOT NULL REFERENCES authors(id) ON DELETE RESTRICT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_authors_name ON authors(name)`,
	`CREATE INDEX IF NOT EXISTS idx_books_title ON books(title)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id)`,
}

// Migrate applies the schema. Every statement is idempotent, so running
// it on every startup is safe.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	log.Info().Int("statements", len(migrations)).Msg("[DATABASE] Schema migrated")
	return nil
}
