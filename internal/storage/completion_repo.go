package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type CompletionRepo struct {
	db DBTX
}

func NewCompletionRepo(db DBTX) *CompletionRepo {
	return &CompletionRepo{db: db}
}

func (r *CompletionRepo) Insert(ctx context.Context, c *Completion) error {
	resources, err := json.Marshal(c.Resources)
	if err != nil {
		return fmt.Errorf("completion marshal resources: %w", err)
	}
	instructions, err := json.Marshal(c.Instructions)
	if err != nil {
		return fmt.Errorf("completion marshal instructions: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO completions
			(id, title, category, time_required, energy_level, resources, indoor,
			 description, instructions, age_range, fun_fact, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Title, c.Category, c.TimeRequired, c.EnergyLevel, string(resources),
		boolToInt(c.Indoor), c.Description, string(instructions), c.AgeRange, c.FunFact, c.CompletedAt)
	if err != nil {
		return fmt.Errorf("completion insert: %w", err)
	}
	return nil
}

// ListAll returns the full history in insertion order.
func (r *CompletionRepo) ListAll(ctx context.Context) ([]Completion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT seq, id, title, category, time_required, energy_level, resources,
		       indoor, description, instructions, age_range, fun_fact, completed_at
		FROM completions
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion list rows: %w", err)
	}
	return out, nil
}

func (r *CompletionRepo) Get(ctx context.Context, id string) (*Completion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT seq, id, title, category, time_required, energy_level, resources,
		       indoor, description, instructions, age_range, fun_fact, completed_at
		FROM completions
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("completion get: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("completion get rows: %w", err)
		}
		return nil, nil
	}
	return scanCompletion(rows)
}

func (r *CompletionRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completions`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count: %w", err)
	}
	return n, nil
}

func scanCompletion(rows *sql.Rows) (*Completion, error) {
	var c Completion
	var resources, instructions string
	var indoor int
	if err := rows.Scan(&c.Seq, &c.ID, &c.Title, &c.Category, &c.TimeRequired,
		&c.EnergyLevel, &resources, &indoor, &c.Description, &instructions,
		&c.AgeRange, &c.FunFact, &c.CompletedAt); err != nil {
		return nil, fmt.Errorf("completion scan: %w", err)
	}
	c.Indoor = indoor != 0
	// Malformed list columns degrade to empty rather than failing the read.
	_ = json.Unmarshal([]byte(resources), &c.Resources)
	_ = json.Unmarshal([]byte(instructions), &c.Instructions)
	return &c, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
