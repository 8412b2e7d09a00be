package repository

import (
	"context"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

func (r *Repository) CreateStaff(staff *domain.Staff) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO staff (salon_id, name, email, phone, position, invite_token, invite_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, active, created_at, version
	`

	args := []any{staff.SalonID, staff.Name, staff.Email, staff.Phone, staff.Position, staff.InviteToken, staff.InviteExpiresAt}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&staff.ID, &staff.Active, &staff.CreatedAt, &staff.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetSalonStaff(salonID int64) ([]*domain.Staff, error) {
	query := `
		SELECT id, user_id, name, email, phone, position, active, invite_expires_at, created_at, version
		FROM staff
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

	members := []*domain.Staff{}
	for rows.Next() {
		member := &domain.Staff{SalonID: salonID}
		dst := []any{&member.ID, &member.UserID, &member.Name, &member.Email, &member.Phone, &member.Position, &member.Active, &member.InviteExpiresAt, &member.CreatedAt, &member.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *Repository) GetStaffByID(id int64) (*domain.Staff, error) {
	query := `
		SELECT salon_id, user_id, name, email, phone, position, active, invite_token, invite_expires_at, created_at, version
		FROM staff
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	staff := &domain.Staff{
		ID: id,
	}

	dst := []any{&staff.SalonID, &staff.UserID, &staff.Name, &staff.Email, &staff.Phone, &staff.Position, &staff.Active, &staff.InviteToken, &staff.InviteExpiresAt, &staff.CreatedAt, &staff.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *Repository) GetStaffByInviteToken(token string) (*domain.Staff, error) {
	query := `
		SELECT id, salon_id, user_id, name, email, phone, position, active, invite_token, invite_expires_at, created_at, version
		FROM staff
		WHERE invite_token = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	staff := &domain.Staff{}

	dst := []any{&staff.ID, &staff.SalonID, &staff.UserID, &staff.Name, &staff.Email, &staff.Phone, &staff.Position, &staff.Active, &staff.InviteToken, &staff.InviteExpiresAt, &staff.CreatedAt, &staff.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, token).Scan(dst...); err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *Repository) UpdateStaff(staff *domain.Staff) error {
	query := `
		UPDATE staff
		SET
			user_id = $1,
			name = $2,
			email = $3,
			phone = $4,
			position = $5,
			active = $6,
			invite_token = $7,
			invite_expires_at = $8,
			version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{staff.UserID, staff.Name, staff.Email, staff.Phone, staff.Position, staff.Active, staff.InviteToken, staff.InviteExpiresAt, staff.ID, staff.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&staff.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStaff(salonID int64, staffID int64) error {
	query := `
		DELETE FROM staff WHERE id = $1 AND salon_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, staffID, salonID); err != nil {
		return err
	}

	return nil
}
