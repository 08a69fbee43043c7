package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// ResetAll wipes every table. There is no schema versioning; a format change
// means a manual reset, and this is that path.
func ResetAll(ctx context.Context, db *sql.DB) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		tables := []string{
			"journal_entries",
			"completions",
			"active_challenges",
			"claimed_challenges",
			"owned_items",
			"pet",
			"profile",
		}
		for _, t := range tables {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+t); err != nil {
				return fmt.Errorf("reset %s: %w", t, err)
			}
		}
		return nil
	})
}
