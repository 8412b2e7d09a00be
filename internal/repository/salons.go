package repository

import (
	"context"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

// SalonFilter narrows the public salon listing. Both fields are optional and
// matched case-insensitively as substrings.
type SalonFilter struct {
	City    string
	Service string
}

func (r *Repository) CreateSalon(salon *domain.Salon) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO salons (name, slug, description, address, city, state, zip, phone, website, hours, latitude, longitude, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, rating, reviews_count, created_at, version
	`

	args := []any{
		salon.Name,
		salon.Slug,
		salon.Description,
		salon.Address,
		salon.City,
		salon.State,
		salon.Zip,
		salon.Phone,
		salon.Website,
		salon.Hours,
		salon.Latitude,
		salon.Longitude,
		salon.ImageURL,
	}
	dst := []any{&salon.ID, &salon.Rating, &salon.ReviewsCount, &salon.CreatedAt, &salon.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetSalons(filter SalonFilter) ([]*domain.Salon, error) {
	// The service filter mirrors the client search form: any salon offering
	// a service whose name matches.
	query := `
		SELECT id, name, slug, description, address, city, state, zip, phone, website, hours, latitude, longitude, rating, reviews_count, image_url, created_at, version
		FROM salons
		WHERE ($1 = '' OR city ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR id IN (SELECT salon_id FROM services WHERE name ILIKE '%' || $2 || '%'))
		ORDER BY rating DESC, name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, filter.City, filter.Service)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	salons := []*domain.Salon{}
	for rows.Next() {
		var salon domain.Salon
		dst := []any{
			&salon.ID,
			&salon.Name,
			&salon.Slug,
			&salon.Description,
			&salon.Address,
			&salon.City,
			&salon.State,
			&salon.Zip,
			&salon.Phone,
			&salon.Website,
			&salon.Hours,
			&salon.Latitude,
			&salon.Longitude,
			&salon.Rating,
			&salon.ReviewsCount,
			&salon.ImageURL,
			&salon.CreatedAt,
			&salon.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		salons = append(salons, &salon)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return salons, nil
}

func (r *Repository) GetSalonByID(id int64) (*domain.Salon, error) {
	query := `
		SELECT name, slug, description, address, city, state, zip, phone, website, hours, latitude, longitude, rating, reviews_count, image_url, created_at, version
		FROM salons
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	salon := &domain.Salon{
		ID: id,
	}

	dst := []any{
		&salon.Name,
		&salon.Slug,
		&salon.Description,
		&salon.Address,
		&salon.City,
		&salon.State,
		&salon.Zip,
		&salon.Phone,
		&salon.Website,
		&salon.Hours,
		&salon.Latitude,
		&salon.Longitude,
		&salon.Rating,
		&salon.ReviewsCount,
		&salon.ImageURL,
		&salon.CreatedAt,
		&salon.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return salon, nil
}

func (r *Repository) UpdateSalon(salon *domain.Salon) error {
	// The slug is fixed at creation, links in the wild should not break.
	query := `
		UPDATE salons
		SET
			name = $1,
			description = $2,
			address = $3,
			city = $4,
			state = $5,
			zip = $6,
			phone = $7,
			website = $8,
			hours = $9,
			latitude = $10,
			longitude = $11,
			image_url = $12,
			version = version + 1
		WHERE id = $13 AND version = $14
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		salon.Name,
		salon.Description,
		salon.Address,
		salon.City,
		salon.State,
		salon.Zip,
		salon.Phone,
		salon.Website,
		salon.Hours,
		salon.Latitude,
		salon.Longitude,
		salon.ImageURL,
		salon.ID,
		salon.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&salon.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSalon(id int64) error {
	query := `
		DELETE FROM salons WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
