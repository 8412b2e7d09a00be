package repository

import (
	"context"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

func (r *Repository) CreateSalonImage(image *domain.SalonImage) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Only one primary image per salon.
	if image.IsPrimary {
		query := `UPDATE salon_images SET is_primary = FALSE WHERE salon_id = $1 AND is_primary`
		if _, err := tx.ExecContext(ctx, query, image.SalonID); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO salon_images (salon_id, image_url, is_primary)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := tx.QueryRowContext(ctx, query, image.SalonID, image.ImageURL, image.IsPrimary).Scan(&image.ID, &image.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetSalonImages(salonID int64) ([]*domain.SalonImage, error) {
	query := `
		SELECT id, image_url, is_primary, created_at
		FROM salon_images
		WHERE salon_id = $1
		ORDER BY is_primary DESC, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, salonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []*domain.SalonImage{}
	for rows.Next() {
		image := &domain.SalonImage{SalonID: salonID}
		if err := rows.Scan(&image.ID, &image.ImageURL, &image.IsPrimary, &image.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return images, nil
}

func (r *Repository) DeleteSalonImage(salonID int64, imageID int64) error {
	query := `
		DELETE FROM salon_images WHERE id = $1 AND salon_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, imageID, salonID); err != nil {
		return err
	}

	return nil
}
