package domain

import "time"

type Staff struct {
	ID              int64      `json:"id"`
	SalonID         int64      `json:"salonID"`
	UserID          *int64     `json:"userID"` // set once the invite is accepted
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Position        string     `json:"position"`
	Active          bool       `json:"active"`
	InviteToken     *string    `json:"-"`
	InviteExpiresAt *time.Time `json:"inviteExpiresAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	Version         int32      `json:"-"`
}
