package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order; every statement must be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS consultations (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		answered_count INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS consultation_facts (
		consultation_id TEXT NOT NULL REFERENCES consultations(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		attribute_id TEXT NOT NULL,
		PRIMARY KEY (consultation_id, seq)
	)`,
	`CREATE TABLE IF NOT EXISTS consultation_results (
		consultation_id TEXT NOT NULL REFERENCES consultations(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		kind TEXT NOT NULL CHECK (kind IN ('suggested', 'fallback')),
		career_name TEXT NOT NULL,
		PRIMARY KEY (consultation_id, kind, seq)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_consultations_completed_at
		ON consultations(completed_at DESC)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
