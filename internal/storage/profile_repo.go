package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// Profile field keys. Each is stored and read independently so a corrupt
// value never takes down the whole profile load.
const (
	KeyPoints           = "points"
	KeyDailyStreak      = "daily_streak"
	KeyLastActivityDate = "last_activity_date"
	KeyActiveTheme      = "active_theme"
	KeyActiveEffect     = "active_effect"
	KeyActiveCostume    = "active_costume"
	KeyPendingActivity  = "pending_activity"
)

const dateLayout = "2006-01-02"

type ProfileRepo struct {
	db DBTX
}

func NewProfileRepo(db DBTX) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM profile WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("profile get %s: %w", key, err)
	}
	return v, true, nil
}

// GetString returns the stored value, or "" when the key is absent.
func (r *ProfileRepo) GetString(ctx context.Context, key string) (string, error) {
	v, _, err := r.get(ctx, key)
	return v, err
}

// GetInt returns the stored integer. An absent or unparsable value degrades
// to zero rather than failing the load.
func (r *ProfileRepo) GetInt(ctx context.Context, key string) (int, error) {
	v, ok, err := r.get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// GetDate returns the stored calendar date. Absent or unparsable values
// report ok=false.
func (r *ProfileRepo) GetDate(ctx context.Context, key string) (time.Time, bool, error) {
	v, ok, err := r.get(ctx, key)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	d, err := time.ParseInLocation(dateLayout, v, time.Local)
	if err != nil {
		return time.Time{}, false, nil
	}
	return d, true, nil
}

func (r *ProfileRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profile (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("profile set %s: %w", key, err)
	}
	return nil
}

func (r *ProfileRepo) SetInt(ctx context.Context, key string, n int) error {
	return r.Set(ctx, key, strconv.Itoa(n))
}

func (r *ProfileRepo) SetDate(ctx context.Context, key string, d time.Time) error {
	return r.Set(ctx, key, d.Format(dateLayout))
}

func (r *ProfileRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profile WHERE key = ?`, key); err != nil {
		return fmt.Errorf("profile delete %s: %w", key, err)
	}
	return nil
}
