package storage

import (
	"context"
	"fmt"
	"time"
)

type ChallengeRepo struct {
	db DBTX
}

func NewChallengeRepo(db DBTX) *ChallengeRepo {
	return &ChallengeRepo{db: db}
}

// ActiveIDs returns the persisted active challenge ids in sample order.
func (r *ChallengeRepo) ActiveIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM active_challenges ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("active challenges list: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("active challenges scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("active challenges rows: %w", err)
	}
	return ids, nil
}

func (r *ChallengeRepo) SetActive(ctx context.Context, ids []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM active_challenges`); err != nil {
		return fmt.Errorf("active challenges clear: %w", err)
	}
	for i, id := range ids {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO active_challenges (id, position) VALUES (?, ?)`, id, i); err != nil {
			return fmt.Errorf("active challenges insert: %w", err)
		}
	}
	return nil
}

func (r *ChallengeRepo) ClaimedIDs(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM claimed_challenges`)
	if err != nil {
		return nil, fmt.Errorf("claimed challenges list: %w", err)
	}
	defer rows.Close()

	claimed := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("claimed challenges scan: %w", err)
		}
		claimed[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("claimed challenges rows: %w", err)
	}
	return claimed, nil
}

func (r *ChallengeRepo) IsClaimed(ctx context.Context, id string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM claimed_challenges WHERE id = ?`, id)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("claimed challenge check: %w", err)
	}
	return n > 0, nil
}

func (r *ChallengeRepo) InsertClaimed(ctx context.Context, id string, at time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO claimed_challenges (id, claimed_at) VALUES (?, ?)`, id, at); err != nil {
		return fmt.Errorf("claimed challenge insert: %w", err)
	}
	return nil
}
