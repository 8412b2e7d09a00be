package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/glowbook-dev/glowbook/backend/internal/config"
	"github.com/glowbook-dev/glowbook/backend/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("open mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	cfg.Database.TransactionTimeout = 5

	return NewRepository(cfg, db), mock
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		SalonID:   1,
		ServiceID: 2,
		StylistID: 7,
		UserID:    3,
		Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "10:00",
		Status:    domain.AppointmentPending,
	}
}

// The stylist row lock must be taken before the overlap check runs. Without
// it, two concurrent transactions booking overlapping spans with different
// start times would both pass the check, since neither can see the other's
// uncommitted insert. Expectations are ordered, so this fails if the check
// runs first.
func TestCreateAppointment_LocksStylistBeforeOverlapCheck(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM stylists WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(`INSERT INTO appointments`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "version"}).
			AddRow(int64(42), time.Now(), int64(1)))
	mock.ExpectCommit()

	appt := testAppointment()
	if err := repo.CreateAppointment(appt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.ID != 42 {
		t.Fatalf("expected id 42, got %d", appt.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateAppointment_OverlapReturnsConflict(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM stylists WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	if err := repo.CreateAppointment(testAppointment()); !errors.Is(err, ErrAppointmentConflict) {
		t.Fatalf("expected ErrAppointmentConflict, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// The status filter is rendered from domain.ActiveAppointmentStatuses, so the
// queries and the domain definition of a blocking appointment cannot drift.
func TestGetBookedIntervals_FiltersToActiveStatuses(t *testing.T) {
	repo, mock := newTestRepository(t)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`status IN \('pending', 'confirmed'\)`).
		WithArgs(int64(7), date).
		WillReturnRows(sqlmock.NewRows([]string{"start_time", "end_time"}).
			AddRow("09:00:00", "10:00:00"))

	intervals, err := repo.GetBookedIntervals(context.Background(), 7, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(intervals) != 1 || intervals[0].StartTime != "09:00:00" || intervals[0].EndTime != "10:00:00" {
		t.Fatalf("unexpected intervals: %+v", intervals)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
