package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type PetRepo struct {
	db DBTX
}

func NewPetRepo(db DBTX) *PetRepo {
	return &PetRepo{db: db}
}

// Get returns the pet, or nil when none has been adopted yet.
func (r *PetRepo) Get(ctx context.Context) (*Pet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT type, happiness, last_fed, adopted_at FROM pet WHERE id = 1`)

	var p Pet
	if err := row.Scan(&p.Type, &p.Happiness, &p.LastFed, &p.AdoptedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("pet get: %w", err)
	}
	return &p, nil
}

func (r *PetRepo) Upsert(ctx context.Context, p *Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet (id, type, happiness, last_fed, adopted_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			happiness = excluded.happiness,
			last_fed = excluded.last_fed,
			adopted_at = excluded.adopted_at
	`, p.Type, p.Happiness, p.LastFed, p.AdoptedAt)
	if err != nil {
		return fmt.Errorf("pet upsert: %w", err)
	}
	return nil
}
