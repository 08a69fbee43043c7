package storage

import (
	"context"
	"fmt"
	"time"
)

type ItemRepo struct {
	db DBTX
}

func NewItemRepo(db DBTX) *ItemRepo {
	return &ItemRepo{db: db}
}

func (r *ItemRepo) Insert(ctx context.Context, id string, at time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO owned_items (id, purchased_at) VALUES (?, ?)`, id, at); err != nil {
		return fmt.Errorf("owned item insert: %w", err)
	}
	return nil
}

func (r *ItemRepo) IsOwned(ctx context.Context, id string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM owned_items WHERE id = ?`, id)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("owned item check: %w", err)
	}
	return n > 0, nil
}

func (r *ItemRepo) ListOwned(ctx context.Context) ([]OwnedItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, purchased_at FROM owned_items ORDER BY purchased_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("owned items list: %w", err)
	}
	defer rows.Close()

	var out []OwnedItem
	for rows.Next() {
		var it OwnedItem
		if err := rows.Scan(&it.ID, &it.PurchasedAt); err != nil {
			return nil, fmt.Errorf("owned items scan: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("owned items rows: %w", err)
	}
	return out, nil
}
