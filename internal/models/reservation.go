package models

import "time"

// Reservation is a booking request against a single (date, time slot)
// pair. DateKey is the calendar-day component of Date, denormalized so
// the active-slot unique index and day lookups work on plain strings.
type Reservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	Service string `gorm:"size:100" json:"service"`

	Date     time.Time `gorm:"not null" json:"date"`
	DateKey  string    `gorm:"size:10;index;not null" json:"-"`
	TimeSlot string    `gorm:"size:5;not null" json:"time_slot"`
	Duration int       `json:"duration"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	UserID *uint `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
