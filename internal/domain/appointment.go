package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ActiveAppointmentStatuses are the statuses that keep a stylist's time blocked.
// Cancelled and completed appointments release their interval.
var ActiveAppointmentStatuses = []AppointmentStatus{AppointmentPending, AppointmentConfirmed}

type Appointment struct {
	ID        int64             `json:"id"`
	SalonID   int64             `json:"salonID"`
	ServiceID int64             `json:"serviceID"`
	StylistID int64             `json:"stylistID"`
	UserID    int64             `json:"userID"`
	Date      time.Time         `json:"date"`      // calendar date, time-of-day ignored
	StartTime string            `json:"startTime"` // HH:MM:SS
	EndTime   string            `json:"endTime"`   // HH:MM:SS
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes"`
	CreatedAt time.Time         `json:"createdAt"`
	Version   int32             `json:"-"`
}

// BookedInterval is the slice of an appointment the availability calculator
// cares about: a wall-clock span on a single date for a single stylist.
type BookedInterval struct {
	StartTime string `json:"startTime"` // HH:MM:SS
	EndTime   string `json:"endTime"`   // HH:MM:SS
}
