package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type JournalRepo struct {
	db DBTX
}

func NewJournalRepo(db DBTX) *JournalRepo {
	return &JournalRepo{db: db}
}

func (r *JournalRepo) Upsert(ctx context.Context, e *JournalEntry) error {
	stickers, err := json.Marshal(e.Stickers)
	if err != nil {
		return fmt.Errorf("journal marshal stickers: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO journal_entries (completion_id, rating, notes, stickers, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(completion_id) DO UPDATE SET
			rating = excluded.rating,
			notes = excluded.notes,
			stickers = excluded.stickers,
			updated_at = excluded.updated_at
	`, e.CompletionID, e.Rating, e.Notes, string(stickers), e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("journal upsert: %w", err)
	}
	return nil
}

func (r *JournalRepo) Get(ctx context.Context, completionID string) (*JournalEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT completion_id, rating, notes, stickers, updated_at
		FROM journal_entries
		WHERE completion_id = ?
	`, completionID)

	var e JournalEntry
	var stickers string
	if err := row.Scan(&e.CompletionID, &e.Rating, &e.Notes, &stickers, &e.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("journal get: %w", err)
	}
	_ = json.Unmarshal([]byte(stickers), &e.Stickers)
	return &e, nil
}

func (r *JournalRepo) ListAll(ctx context.Context) (map[string]JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT completion_id, rating, notes, stickers, updated_at FROM journal_entries
	`)
	if err != nil {
		return nil, fmt.Errorf("journal list: %w", err)
	}
	defer rows.Close()

	out := map[string]JournalEntry{}
	for rows.Next() {
		var e JournalEntry
		var stickers string
		if err := rows.Scan(&e.CompletionID, &e.Rating, &e.Notes, &stickers, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("journal scan: %w", err)
		}
		_ = json.Unmarshal([]byte(stickers), &e.Stickers)
		out[e.CompletionID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal rows: %w", err)
	}
	return out, nil
}
