package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

// activeStatuses renders domain.ActiveAppointmentStatuses as a SQL literal
// list so the interval and conflict queries stay in lockstep with the domain
// definition of which statuses block a stylist's time.
var activeStatuses = func() string {
	quoted := make([]string, len(domain.ActiveAppointmentStatuses))
	for i, s := range domain.ActiveAppointmentStatuses {
		quoted[i] = "'" + string(s) + "'"
	}
	return strings.Join(quoted, ", ")
}()

// GetBookedIntervals returns the spans of the stylist's pending and confirmed
// appointments on the given date. Cancelled and completed appointments do not
// block availability.
func (r *Repository) GetBookedIntervals(ctx context.Context, stylistID int64, date time.Time) ([]domain.BookedInterval, error) {
	query := fmt.Sprintf(`
		SELECT start_time::text, end_time::text
		FROM appointments
		WHERE stylist_id = $1 AND appointment_date = $2::date AND status IN (%s)
		ORDER BY start_time
	`, activeStatuses)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, stylistID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	intervals := []domain.BookedInterval{}
	for rows.Next() {
		var interval domain.BookedInterval
		if err := rows.Scan(&interval.StartTime, &interval.EndTime); err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return intervals, nil
}

// CreateAppointment inserts a booking after re-checking, inside the
// transaction, that no active appointment overlaps the requested span. The
// availability read is advisory only; this is the write-time guard that makes
// it meaningful under concurrent bookings.
func (r *Repository) CreateAppointment(appt *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// The overlap check below cannot see a competing transaction's
	// uncommitted insert, so two overlapping bookings could both pass it.
	// Taking the stylist row lock first serializes bookings per stylist: the
	// second transaction waits until the first commits, and its check then
	// sees the new row.
	query := `SELECT id FROM stylists WHERE id = $1 FOR UPDATE`
	var lockedStylistID int64
	if err := tx.QueryRowContext(ctx, query, appt.StylistID).Scan(&lockedStylistID); err != nil {
		return err
	}

	query = fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE stylist_id = $1
			  AND appointment_date = $2::date
			  AND status IN (%s)
			  AND start_time < $4::time
			  AND end_time > $3::time
		)
	`, activeStatuses)

	var conflict bool
	if err := tx.QueryRowContext(ctx, query, appt.StylistID, appt.Date, appt.StartTime, appt.EndTime).Scan(&conflict); err != nil {
		return err
	}
	if conflict {
		return ErrAppointmentConflict
	}

	query = `
		INSERT INTO appointments (salon_id, service_id, stylist_id, user_id, appointment_date, start_time, end_time, status, notes)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8, $9)
		RETURNING id, created_at, version
	`

	args := []any{
		appt.SalonID,
		appt.ServiceID,
		appt.StylistID,
		appt.UserID,
		appt.Date,
		appt.StartTime,
		appt.EndTime,
		appt.Status,
		appt.Notes,
	}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &appt.CreatedAt, &appt.Version); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetAppointmentByID(id int64) (*domain.Appointment, error) {
	query := `
		SELECT salon_id, service_id, stylist_id, user_id, appointment_date, start_time::text, end_time::text, status, notes, created_at, version
		FROM appointments
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	appt := &domain.Appointment{
		ID: id,
	}

	dst := []any{&appt.SalonID, &appt.ServiceID, &appt.StylistID, &appt.UserID, &appt.Date, &appt.StartTime, &appt.EndTime, &appt.Status, &appt.Notes, &appt.CreatedAt, &appt.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return appt, nil
}

func (r *Repository) GetAppointmentsByUserID(userID int64) ([]*domain.Appointment, error) {
	query := `
		SELECT id, salon_id, service_id, stylist_id, appointment_date, start_time::text, end_time::text, status, notes, created_at, version
		FROM appointments
		WHERE user_id = $1
		ORDER BY appointment_date DESC, start_time DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := []*domain.Appointment{}
	for rows.Next() {
		appt := &domain.Appointment{UserID: userID}
		dst := []any{&appt.ID, &appt.SalonID, &appt.ServiceID, &appt.StylistID, &appt.Date, &appt.StartTime, &appt.EndTime, &appt.Status, &appt.Notes, &appt.CreatedAt, &appt.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *Repository) GetSalonAppointments(salonID int64, date time.Time) ([]*domain.Appointment, error) {
	query := `
		SELECT id, service_id, stylist_id, user_id, appointment_date, start_time::text, end_time::text, status, notes, created_at, version
		FROM appointments
		WHERE salon_id = $1 AND appointment_date = $2::date
		ORDER BY start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, salonID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := []*domain.Appointment{}
	for rows.Next() {
		appt := &domain.Appointment{SalonID: salonID}
		dst := []any{&appt.ID, &appt.ServiceID, &appt.StylistID, &appt.UserID, &appt.Date, &appt.StartTime, &appt.EndTime, &appt.Status, &appt.Notes, &appt.CreatedAt, &appt.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return appts, nil
}

func (r *Repository) UpdateAppointmentStatus(appt *domain.Appointment) error {
	query := `
		UPDATE appointments
		SET
			status = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, appt.Status, appt.ID, appt.Version).Scan(&appt.Version); err != nil {
		return err
	}

	return nil
}
