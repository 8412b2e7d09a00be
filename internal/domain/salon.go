package domain

import "time"

type Salon struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	Phone        string    `json:"phone"`
	Website      string    `json:"website"`
	Hours        string    `json:"hours"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Rating       float64   `json:"rating"`
	ReviewsCount int32     `json:"reviewsCount"`
	ImageURL     string    `json:"imageURL"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

type SalonImage struct {
	ID        int64     `json:"id"`
	SalonID   int64     `json:"salonID"`
	ImageURL  string    `json:"imageURL"`
	IsPrimary bool      `json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
}

type Review struct {
	ID           int64     `json:"id"`
	SalonID      int64     `json:"salonID"`
	UserID       int64     `json:"userID"`
	UserFullName string    `json:"userFullName,omitempty"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}
