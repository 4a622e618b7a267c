// File: studiobook/models/appointment.go
package models

import "time"

// Appointment is a booked session. The backend embeds snapshots of the
// customer and slot so list views render without extra lookups.
type Appointment struct {
	ID                  string            `json:"id"`
	StudioID            string            `json:"studio_id"`
	CustomerID          string            `json:"customer_id"`
	TimeSlotID          string            `json:"time_slot_id"`
	PackageID           string            `json:"package_id,omitempty"`
	Customer            *Customer         `json:"customer,omitempty"`
	TimeSlot            *TimeSlot         `json:"time_slot,omitempty"`
	SessionType         SessionType       `json:"session_type"`
	DurationMinutes     int               `json:"duration_minutes"`
	EquipmentRequested  []string          `json:"equipment_requested,omitempty"`
	SpecialRequirements string            `json:"special_requirements,omitempty"`
	CustomFormResponses map[string]any    `json:"custom_form_responses,omitempty"`
	BasePrice           float64           `json:"base_price"`
	EquipmentCost       float64           `json:"equipment_cost"`
	TotalPrice          float64           `json:"total_price"`
	Status              AppointmentStatus `json:"status"`
	Notes               string            `json:"notes,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at,omitzero"`
	ConfirmedAt         *time.Time        `json:"confirmed_at,omitempty"`
	CancelledAt         *time.Time        `json:"cancelled_at,omitempty"`
	CancellationReason  string            `json:"cancellation_reason,omitempty"`
}

// Active reports whether the appointment still occupies its slot.
func (a Appointment) Active() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}

// AppointmentUpdate carries a partial appointment update; nil fields are left untouched.
type AppointmentUpdate struct {
	Status              *AppointmentStatus `json:"status,omitempty"`
	Notes               *string            `json:"notes,omitempty"`
	SpecialRequirements *string            `json:"special_requirements,omitempty"`
	EquipmentRequested  []string           `json:"equipment_requested,omitempty"`
}

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	StudioID string
	Status   AppointmentStatus
	DateFrom string // "2006-01-02"
	DateTo   string
	Skip     int
	Limit    int
}

// PublicBookingRequest is the unauthenticated booking-page payload.
type PublicBookingRequest struct {
	CustomerEmail       string         `json:"customer_email" binding:"required"`
	CustomerFirstName   string         `json:"customer_first_name" binding:"required"`
	CustomerLastName    string         `json:"customer_last_name" binding:"required"`
	CustomerPhone       string         `json:"customer_phone,omitempty"`
	PackageID           string         `json:"package_id" binding:"required"`
	TimeSlotID          string         `json:"time_slot_id" binding:"required"`
	DurationMinutes     int            `json:"duration_minutes,omitempty"` // defaults to the package duration
	EquipmentRequested  []string       `json:"equipment_requested,omitempty"`
	SpecialRequirements string         `json:"special_requirements,omitempty"`
	CustomFormResponses map[string]any `json:"custom_form_responses,omitempty"`
}
