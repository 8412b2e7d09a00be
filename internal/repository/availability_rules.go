package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

// GetAvailabilityRule returns the active rule for the stylist on the given
// weekday (0 = Sunday), or (nil, nil) when there is none. The schema enforces
// one rule per (stylist, weekday); ordering by updated_at keeps the read
// deterministic even against legacy duplicate rows.
func (r *Repository) GetAvailabilityRule(ctx context.Context, stylistID int64, dayOfWeek int32) (*domain.AvailabilityRule, error) {
	query := `
		SELECT id, start_time::text, end_time::text, is_available, created_at, updated_at
		FROM availability_rules
		WHERE stylist_id = $1 AND day_of_week = $2 AND is_available
		ORDER BY updated_at DESC
		LIMIT 1
	`

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rule := &domain.AvailabilityRule{
		StylistID: stylistID,
		DayOfWeek: dayOfWeek,
	}

	dst := []any{&rule.ID, &rule.StartTime, &rule.EndTime, &rule.IsAvailable, &rule.CreatedAt, &rule.UpdatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, stylistID, dayOfWeek).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return rule, nil
}

func (r *Repository) GetStylistAvailability(stylistID int64) ([]*domain.AvailabilityRule, error) {
	query := `
		SELECT id, day_of_week, start_time::text, end_time::text, is_available, created_at, updated_at
		FROM availability_rules
		WHERE stylist_id = $1
		ORDER BY day_of_week
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, stylistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := []*domain.AvailabilityRule{}
	for rows.Next() {
		rule := &domain.AvailabilityRule{StylistID: stylistID}
		dst := []any{&rule.ID, &rule.DayOfWeek, &rule.StartTime, &rule.EndTime, &rule.IsAvailable, &rule.CreatedAt, &rule.UpdatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}

// ReplaceStylistAvailability swaps the stylist's whole weekly schedule in one
// transaction, the same way the schedule editor submits it.
func (r *Repository) ReplaceStylistAvailability(stylistID int64, rules []*domain.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM availability_rules WHERE stylist_id = $1`
	if _, err := tx.ExecContext(ctx, query, stylistID); err != nil {
		return err
	}

	for _, rule := range rules {
		query := `
			INSERT INTO availability_rules (stylist_id, day_of_week, start_time, end_time, is_available)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`
		args := []any{stylistID, rule.DayOfWeek, rule.StartTime, rule.EndTime, rule.IsAvailable}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return err
		}
		rule.StylistID = stylistID
	}

	return tx.Commit()
}
