// File: studiobook/models/timeslot.go
package models

import "time"

// TimeSlot is a studio's pre-defined booking window on a given date.
type TimeSlot struct {
	ID              string    `json:"id"`
	StudioID        string    `json:"studio_id"`
	PackageID       string    `json:"package_id,omitempty"` // empty means any package
	Date            string    `json:"date"`                 // "2006-01-02"
	StartTime       string    `json:"start_time"`           // "HH:MM" or "HH:MM:SS"
	EndTime         string    `json:"end_time"`
	MaxCapacity     int       `json:"max_capacity"`
	CurrentBookings int       `json:"current_bookings"`
	IsAvailable     bool      `json:"is_available"`
	OverridePrice   *float64  `json:"override_price,omitempty"` // overrides the package base price
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

// Bookable reports whether the slot can accept one more booking. Every
// availability decision goes through this single predicate.
func (s TimeSlot) Bookable() bool {
	return s.IsAvailable && s.CurrentBookings < s.MaxCapacity
}

// AvailableCapacity returns the remaining booking capacity, never negative.
func (s TimeSlot) AvailableCapacity() int {
	if s.CurrentBookings >= s.MaxCapacity {
		return 0
	}
	return s.MaxCapacity - s.CurrentBookings
}

// TimeSlotCreate is the payload for adding slots to a studio.
type TimeSlotCreate struct {
	Date          string   `json:"date" binding:"required"`
	StartTime     string   `json:"start_time" binding:"required"`
	EndTime       string   `json:"end_time" binding:"required"`
	MaxCapacity   int      `json:"max_capacity,omitempty"` // defaults to 1
	IsAvailable   *bool    `json:"is_available,omitempty"` // defaults to true
	OverridePrice *float64 `json:"override_price,omitempty"`
	PackageID     string   `json:"package_id,omitempty"`
}

// TimeSlotUpdate carries a partial slot update; nil fields are left untouched.
type TimeSlotUpdate struct {
	Date          *string  `json:"date,omitempty"`
	StartTime     *string  `json:"start_time,omitempty"`
	EndTime       *string  `json:"end_time,omitempty"`
	MaxCapacity   *int     `json:"max_capacity,omitempty"`
	IsAvailable   *bool    `json:"is_available,omitempty"`
	OverridePrice *float64 `json:"override_price,omitempty"`
	PackageID     *string  `json:"package_id,omitempty"`
}

// AvailableSlot is the public booking-page view of an open slot.
type AvailableSlot struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	AvailableCapacity int     `json:"available_capacity"`
	Price             float64 `json:"price"` // override price when set, else package base
}

// AvailabilityQuery narrows the public available-slots listing.
type AvailabilityQuery struct {
	PackageID string
	DateFrom  string // "2006-01-02", defaults to today
	DateTo    string // defaults to today + booking window
}
