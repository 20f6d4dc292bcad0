package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS career_paths (
		id          TEXT PRIMARY KEY,
		user        TEXT NOT NULL,
		goal        TEXT NOT NULL DEFAULT '',
		chosen_role TEXT NOT NULL,
		roadmap     BLOB NOT NULL,
		active      INTEGER NOT NULL DEFAULT 1 CHECK(active IN (0, 1)),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_career_paths_user ON career_paths(user, created_at)`,

	// At most one active path per user.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_career_paths_active
		ON career_paths(user) WHERE active = 1`,

	`ALTER TABLE career_paths ADD COLUMN encoding_version INTEGER NOT NULL DEFAULT 1`,

	`CREATE TABLE IF NOT EXISTS session_state (
		user       TEXT PRIMARY KEY,
		phase      TEXT NOT NULL DEFAULT 'exploring'
		           CHECK(phase IN ('exploring','learning','achieving')),
		updated_at TEXT NOT NULL
	)`,
}
