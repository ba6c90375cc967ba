package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// UsageRepository persists per-day upstream API call counts. Lets the quota
// tracker survive process restarts within the same day.
type UsageRepository struct {
	db *sqlx.DB
}

// NewUsageRepository creates a new usage repository
func NewUsageRepository(database *sqlx.DB) *UsageRepository {
	return &UsageRepository{db: database}
}

// Usage returns the recorded call count for the given day, zero if none recorded
func (r *UsageRepository) Usage(ctx context.Context, day string) (int, error) {
	var calls int
	err := r.db.GetContext(ctx, &calls, "SELECT calls FROM api_usage WHERE day = ?", day)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get usage for %s: %w", day, err)
	}
	return calls, nil
}

// SaveUsage records the call count for the given day, replacing any prior value
func (r *UsageRepository) SaveUsage(ctx context.Context, day string, calls int) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO api_usage (day, calls, updated_at) VALUES (?, ?, datetime('now'))
			ON CONFLICT(day) DO UPDATE SET calls = excluded.calls, updated_at = excluded.updated_at
		`
		if _, err := r.db.ExecContext(ctx, query, day, calls); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("save usage: %w", err)}
		}
		return nil
	})
}

// Cleanup removes usage rows older than the given day, keeping the table small
func (r *UsageRepository) Cleanup(ctx context.Context, before string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM api_usage WHERE day < ?", before); err != nil {
		return fmt.Errorf("cleanup usage before %s: %w", before, err)
	}
	return nil
}
