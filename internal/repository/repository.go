package repository

import (
	"database/sql"
	"errors"

	"github.com/glowbook-dev/glowbook/backend/internal/config"
)

// ErrAppointmentConflict is returned when a booking would overlap an existing
// pending or confirmed appointment for the same stylist and date.
var ErrAppointmentConflict = errors.New("appointment conflicts with an existing booking")

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}
