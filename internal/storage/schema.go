package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// Profile mirrors the original per-user key-value store: each field is
		// a separate row so a corrupt value degrades that field only.
		`CREATE TABLE IF NOT EXISTS profile (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS completions (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			time_required TEXT NOT NULL DEFAULT '',
			energy_level TEXT NOT NULL DEFAULT '',
			resources TEXT NOT NULL DEFAULT '[]',
			indoor INTEGER NOT NULL DEFAULT 1,
			description TEXT NOT NULL DEFAULT '',
			instructions TEXT NOT NULL DEFAULT '[]',
			age_range TEXT NOT NULL DEFAULT '',
			fun_fact TEXT NOT NULL DEFAULT '',
			completed_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS journal_entries (
			completion_id TEXT PRIMARY KEY,
			rating INTEGER NOT NULL DEFAULT 2,
			notes TEXT NOT NULL DEFAULT '',
			stickers TEXT NOT NULL DEFAULT '[]',
			updated_at DATETIME NOT NULL,
			FOREIGN KEY(completion_id) REFERENCES completions(id)
		);`,
		`CREATE TABLE IF NOT EXISTS active_challenges (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS claimed_challenges (
			id TEXT PRIMARY KEY,
			claimed_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS owned_items (
			id TEXT PRIMARY KEY,
			purchased_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS pet (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			type TEXT NOT NULL,
			happiness REAL NOT NULL,
			last_fed DATETIME NOT NULL,
			adopted_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_completed_at ON completions(completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
