package models

import "time"

// Package is a bookable session offering (e.g. "Family Portrait, 60 min").
type Package struct {
	ID                    string           `json:"id"`
	StudioID              string           `json:"studio_id"`
	Name                  string           `json:"name"`
	Slug                  string           `json:"slug"`
	Description           string           `json:"description,omitempty"`
	SessionType           SessionType      `json:"session_type"`
	DurationMinutes       int              `json:"duration_minutes"`
	MinDurationMinutes    int              `json:"min_duration_minutes,omitempty"`
	MaxDurationMinutes    int              `json:"max_duration_minutes,omitempty"`
	AllowCustomDuration   bool             `json:"allow_custom_duration"`
	BasePrice             float64          `json:"base_price"`
	Currency              string           `json:"currency"`
	BufferTimeBefore      int              `json:"buffer_time_before"` // minutes
	BufferTimeAfter       int              `json:"buffer_time_after"`  // minutes
	MaxBookingsPerDay     int              `json:"max_bookings_per_day,omitempty"`
	MinBookingNoticeHours int              `json:"min_booking_notice_hours,omitempty"`
	MaxBookingDaysAhead   int              `json:"max_booking_days_ahead,omitempty"`
	IncludedEquipment     []string         `json:"included_equipment,omitempty"`
	OptionalEquipment     []string         `json:"optional_equipment,omitempty"`
	SpecialInstructions   string           `json:"special_instructions,omitempty"`
	CustomQuestions       []CustomQuestion `json:"custom_questions,omitempty"`
	Status                PackageStatus    `json:"status"`
	IsPublic              bool             `json:"is_public"`
	RequiresApproval      bool             `json:"requires_approval"`
	FeaturedImageURL      string           `json:"featured_image_url,omitempty"`
	DisplayOrder          int              `json:"display_order"`
	Color                 string           `json:"color,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at,omitzero"`
}

// CustomQuestion is an extra form field a studio attaches to a package.
type CustomQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Type        string   `json:"type"` // text, textarea, select, radio, checkbox, number, email, phone, date
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"` // for select/radio/checkbox
	Placeholder string   `json:"placeholder,omitempty"`
	HelpText    string   `json:"help_text,omitempty"`
}

// PackageCreate is the payload for adding a package to a studio.
type PackageCreate struct {
	Name                  string           `json:"name" binding:"required"`
	Slug                  string           `json:"slug" binding:"required"`
	Description           string           `json:"description,omitempty"`
	SessionType           SessionType      `json:"session_type" binding:"required"`
	DurationMinutes       int              `json:"duration_minutes" binding:"required"`
	MinDurationMinutes    int              `json:"min_duration_minutes,omitempty"`
	MaxDurationMinutes    int              `json:"max_duration_minutes,omitempty"`
	AllowCustomDuration   bool             `json:"allow_custom_duration,omitempty"`
	BasePrice             float64          `json:"base_price"`
	Currency              string           `json:"currency,omitempty"`
	BufferTimeBefore      int              `json:"buffer_time_before,omitempty"`
	BufferTimeAfter       int              `json:"buffer_time_after,omitempty"`
	MaxBookingsPerDay     int              `json:"max_bookings_per_day,omitempty"`
	MinBookingNoticeHours int              `json:"min_booking_notice_hours,omitempty"`
	MaxBookingDaysAhead   int              `json:"max_booking_days_ahead,omitempty"`
	IncludedEquipment     []string         `json:"included_equipment,omitempty"`
	OptionalEquipment     []string         `json:"optional_equipment,omitempty"`
	SpecialInstructions   string           `json:"special_instructions,omitempty"`
	CustomQuestions       []CustomQuestion `json:"custom_questions,omitempty"`
	Status                PackageStatus    `json:"status,omitempty"`
	IsPublic              *bool            `json:"is_public,omitempty"`
	RequiresApproval      bool             `json:"requires_approval,omitempty"`
	FeaturedImageURL      string           `json:"featured_image_url,omitempty"`
	DisplayOrder          int              `json:"display_order,omitempty"`
	Color                 string           `json:"color,omitempty"`
}

// PackageUpdate carries a partial package update; nil fields are left untouched.
type PackageUpdate struct {
	Name                  *string           `json:"name,omitempty"`
	Description           *string           `json:"description,omitempty"`
	SessionType           *SessionType      `json:"session_type,omitempty"`
	DurationMinutes       *int              `json:"duration_minutes,omitempty"`
	MinDurationMinutes    *int              `json:"min_duration_minutes,omitempty"`
	MaxDurationMinutes    *int              `json:"max_duration_minutes,omitempty"`
	AllowCustomDuration   *bool             `json:"allow_custom_duration,omitempty"`
	BasePrice             *float64          `json:"base_price,omitempty"`
	Currency              *string           `json:"currency,omitempty"`
	BufferTimeBefore      *int              `json:"buffer_time_before,omitempty"`
	BufferTimeAfter       *int              `json:"buffer_time_after,omitempty"`
	MaxBookingsPerDay     *int              `json:"max_bookings_per_day,omitempty"`
	MinBookingNoticeHours *int              `json:"min_booking_notice_hours,omitempty"`
	MaxBookingDaysAhead   *int              `json:"max_booking_days_ahead,omitempty"`
	IncludedEquipment     []string          `json:"included_equipment,omitempty"`
	OptionalEquipment     []string          `json:"optional_equipment,omitempty"`
	SpecialInstructions   *string           `json:"special_instructions,omitempty"`
	CustomQuestions       []CustomQuestion  `json:"custom_questions,omitempty"`
	Status                *PackageStatus    `json:"status,omitempty"`
	IsPublic              *bool             `json:"is_public,omitempty"`
	RequiresApproval      *bool             `json:"requires_approval,omitempty"`
	FeaturedImageURL      *string           `json:"featured_image_url,omitempty"`
	DisplayOrder          *int              `json:"display_order,omitempty"`
	Color                 *string           `json:"color,omitempty"`
}

// PackageFilter narrows package listings.
type PackageFilter struct {
	Status   PackageStatus
	IsPublic *bool
	Skip     int
	Limit    int
}

// DuplicatePackageRequest names the copy created from an existing package.
type DuplicatePackageRequest struct {
	NewName string `json:"new_name" binding:"required"`
	NewSlug string `json:"new_slug" binding:"required"`
}
