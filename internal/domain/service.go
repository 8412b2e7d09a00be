package domain

import "time"

type ServiceGroup struct {
	ID          int64     `json:"id"`
	SalonID     int64     `json:"salonID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}

type Service struct {
	ID              int64     `json:"id"`
	SalonID         int64     `json:"salonID"`
	GroupID         *int64    `json:"groupID"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PriceCents      int64     `json:"priceCents"`
	DurationMinutes int32     `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	Version         int32     `json:"-"`
}
