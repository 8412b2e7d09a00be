package repository

import (
	"context"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

func (r *Repository) CreateServiceGroup(group *domain.ServiceGroup) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO service_groups (salon_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, group.SalonID, group.Name, group.Description).Scan(&group.ID, &group.CreatedAt, &group.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetServiceGroups(salonID int64) ([]*domain.ServiceGroup, error) {
	query := `
		SELECT id, name, description, created_at, version
		FROM service_groups
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

	groups := []*domain.ServiceGroup{}
	for rows.Next() {
		group := &domain.ServiceGroup{SalonID: salonID}
		if err := rows.Scan(&group.ID, &group.Name, &group.Description, &group.CreatedAt, &group.Version); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *Repository) DeleteServiceGroup(salonID int64, groupID int64) error {
	// Services keep existing when their group goes away, the FK is SET NULL.
	query := `
		DELETE FROM service_groups WHERE id = $1 AND salon_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, groupID, salonID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateService(service *domain.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO services (salon_id, group_id, name, description, price_cents, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	args := []any{service.SalonID, service.GroupID, service.Name, service.Description, service.PriceCents, service.DurationMinutes}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&service.ID, &service.CreatedAt, &service.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetServiceByID(id int64) (*domain.Service, error) {
	query := `
		SELECT salon_id, group_id, name, description, price_cents, duration_minutes, created_at, version
		FROM services
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	service := &domain.Service{
		ID: id,
	}

	dst := []any{&service.SalonID, &service.GroupID, &service.Name, &service.Description, &service.PriceCents, &service.DurationMinutes, &service.CreatedAt, &service.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return service, nil
}

func (r *Repository) GetServices(salonID int64) ([]*domain.Service, error) {
	query := `
		SELECT id, group_id, name, description, price_cents, duration_minutes, created_at, version
		FROM services
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

	services := []*domain.Service{}
	for rows.Next() {
		service := &domain.Service{SalonID: salonID}
		dst := []any{&service.ID, &service.GroupID, &service.Name, &service.Description, &service.PriceCents, &service.DurationMinutes, &service.CreatedAt, &service.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func (r *Repository) UpdateService(service *domain.Service) error {
	query := `
		UPDATE services
		SET
			group_id = $1,
			name = $2,
			description = $3,
			price_cents = $4,
			duration_minutes = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{service.GroupID, service.Name, service.Description, service.PriceCents, service.DurationMinutes, service.ID, service.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&service.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteService(salonID int64, serviceID int64) error {
	query := `
		DELETE FROM services WHERE id = $1 AND salon_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, serviceID, salonID); err != nil {
		return err
	}

	return nil
}
