package repository

import (
	"context"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

// UpsertReview creates or replaces the user's review of a salon and refreshes
// the salon's denormalized rating and reviews_count in the same transaction.
func (r *Repository) UpsertReview(review *domain.Review) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO reviews (salon_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (salon_id, user_id)
		DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment
		RETURNING id, created_at
	`

	args := []any{review.SalonID, review.UserID, review.Rating, review.Comment}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt); err != nil {
		return err
	}

	query = `
		UPDATE salons
		SET
			rating = (SELECT ROUND(AVG(rating), 1) FROM reviews WHERE salon_id = $1),
			reviews_count = (SELECT COUNT(*) FROM reviews WHERE salon_id = $1)
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, query, review.SalonID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetSalonReviews(salonID int64) ([]*domain.Review, error) {
	query := `
		SELECT r.id, r.user_id, u.full_name, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.salon_id = $1
		ORDER BY r.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, salonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		review := &domain.Review{SalonID: salonID}
		dst := []any{&review.ID, &review.UserID, &review.UserFullName, &review.Rating, &review.Comment, &review.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
