package domain

import "time"

type Stylist struct {
	ID         int64     `json:"id"`
	SalonID    int64     `json:"salonID"`
	Name       string    `json:"name"`
	Specialty  string    `json:"specialty"`
	Experience string    `json:"experience"`
	Bio        string    `json:"bio"`
	ImageURL   string    `json:"imageURL"`
	CreatedAt  time.Time `json:"createdAt"`
	Version    int32     `json:"-"`
}

// AvailabilityRule is a stylist's open window for one weekday.
// DayOfWeek uses the 0=Sunday convention everywhere, matching time.Weekday.
type AvailabilityRule struct {
	ID          int64     `json:"id"`
	StylistID   int64     `json:"stylistID"`
	DayOfWeek   int32     `json:"dayOfWeek"`
	StartTime   string    `json:"startTime"` // HH:MM:SS
	EndTime     string    `json:"endTime"`   // HH:MM:SS
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
