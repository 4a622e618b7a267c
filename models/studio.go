package models

import "time"

// Studio is a bookable photo studio owned by a studio_owner account.
type Studio struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Slug                  string    `json:"slug"` // public booking URL segment
	Description           string    `json:"description,omitempty"`
	Email                 string    `json:"email,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	Website               string    `json:"website,omitempty"`
	AddressLine1          string    `json:"address_line1,omitempty"`
	AddressLine2          string    `json:"address_line2,omitempty"`
	City                  string    `json:"city,omitempty"`
	State                 string    `json:"state,omitempty"`
	PostalCode            string    `json:"postal_code,omitempty"`
	Country               string    `json:"country,omitempty"`
	Timezone              string    `json:"timezone"`
	Currency              string    `json:"currency"`
	BookingWindowDays     int       `json:"booking_window_days"`
	MinBookingNoticeHours int       `json:"min_booking_notice_hours"`
	IsActive              bool      `json:"is_active"`
	OwnerID               string    `json:"owner_id"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at,omitzero"`
}

// StudioCreate is the payload for registering a new studio.
type StudioCreate struct {
	Name                  string `json:"name" binding:"required"`
	Slug                  string `json:"slug" binding:"required"`
	Description           string `json:"description,omitempty"`
	Email                 string `json:"email,omitempty"`
	Phone                 string `json:"phone,omitempty"`
	Website               string `json:"website,omitempty"`
	AddressLine1          string `json:"address_line1,omitempty"`
	AddressLine2          string `json:"address_line2,omitempty"`
	City                  string `json:"city,omitempty"`
	State                 string `json:"state,omitempty"`
	PostalCode            string `json:"postal_code,omitempty"`
	Country               string `json:"country,omitempty"`
	Timezone              string `json:"timezone,omitempty"`
	Currency              string `json:"currency,omitempty"`
	BookingWindowDays     int    `json:"booking_window_days,omitempty"`
	MinBookingNoticeHours int    `json:"min_booking_notice_hours,omitempty"`
}

// StudioUpdate carries a partial studio update; nil fields are left untouched.
type StudioUpdate struct {
	Name                  *string `json:"name,omitempty"`
	Description           *string `json:"description,omitempty"`
	Email                 *string `json:"email,omitempty"`
	Phone                 *string `json:"phone,omitempty"`
	Website               *string `json:"website,omitempty"`
	AddressLine1          *string `json:"address_line1,omitempty"`
	AddressLine2          *string `json:"address_line2,omitempty"`
	City                  *string `json:"city,omitempty"`
	State                 *string `json:"state,omitempty"`
	PostalCode            *string `json:"postal_code,omitempty"`
	Country               *string `json:"country,omitempty"`
	Timezone              *string `json:"timezone,omitempty"`
	Currency              *string `json:"currency,omitempty"`
	BookingWindowDays     *int    `json:"booking_window_days,omitempty"`
	MinBookingNoticeHours *int    `json:"min_booking_notice_hours,omitempty"`
	IsActive              *bool   `json:"is_active,omitempty"`
}
