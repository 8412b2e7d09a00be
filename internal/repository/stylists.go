package repository

import (
	"context"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

func (r *Repository) CreateStylist(stylist *domain.Stylist) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO stylists (salon_id, name, specialty, experience, bio, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	args := []any{stylist.SalonID, stylist.Name, stylist.Specialty, stylist.Experience, stylist.Bio, stylist.ImageURL}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&stylist.ID, &stylist.CreatedAt, &stylist.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetStylistByID(id int64) (*domain.Stylist, error) {
	query := `
		SELECT salon_id, name, specialty, experience, bio, image_url, created_at, version
		FROM stylists
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	stylist := &domain.Stylist{
		ID: id,
	}

	dst := []any{&stylist.SalonID, &stylist.Name, &stylist.Specialty, &stylist.Experience, &stylist.Bio, &stylist.ImageURL, &stylist.CreatedAt, &stylist.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return stylist, nil
}

func (r *Repository) GetStylists(salonID int64) ([]*domain.Stylist, error) {
	query := `
		SELECT id, name, specialty, experience, bio, image_url, created_at, version
		FROM stylists
		WHERE salon_id = $1
		ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, salonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stylists := []*domain.Stylist{}
	for rows.Next() {
		stylist := &domain.Stylist{SalonID: salonID}
		dst := []any{&stylist.ID, &stylist.Name, &stylist.Specialty, &stylist.Experience, &stylist.Bio, &stylist.ImageURL, &stylist.CreatedAt, &stylist.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		stylists = append(stylists, stylist)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stylists, nil
}

func (r *Repository) UpdateStylist(stylist *domain.Stylist) error {
	query := `
		UPDATE stylists
		SET
			name = $1,
			specialty = $2,
			experience = $3,
			bio = $4,
			image_url = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{stylist.Name, stylist.Specialty, stylist.Experience, stylist.Bio, stylist.ImageURL, stylist.ID, stylist.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&stylist.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStylist(salonID int64, stylistID int64) error {
	query := `
		DELETE FROM stylists WHERE id = $1 AND salon_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, stylistID, salonID); err != nil {
		return err
	}

	return nil
}
