// File: studiobook/schemas/booking_form.go
package schemas

import (
	"fmt"
	"strconv"
	"time"

	"studiobook/models"
	"studiobook/utils"
)

// BookingForm is everything the public booking page collects before a
// reservation is submitted.
type BookingForm struct {
	FirstName           string         `json:"first_name"`
	LastName            string         `json:"last_name"`
	Email               string         `json:"email"`
	Phone               string         `json:"phone"`
	PackageID           string         `json:"package_id"`
	TimeSlotID          string         `json:"time_slot_id"`
	DurationMinutes     int            `json:"duration_minutes,omitempty"` // 0 means package default
	EquipmentRequested  []string       `json:"equipment_requested,omitempty"`
	SpecialRequirements string         `json:"special_requirements,omitempty"`
	CustomResponses     map[string]any `json:"custom_responses,omitempty"` // keyed by question id
	AgreedToTerms       bool           `json:"agreed_to_terms"`
}

// Request converts a validated form into the public booking payload.
func (f BookingForm) Request() models.PublicBookingRequest {
	return models.PublicBookingRequest{
		CustomerEmail:       f.Email,
		CustomerFirstName:   f.FirstName,
		CustomerLastName:    f.LastName,
		CustomerPhone:       f.Phone,
		PackageID:           f.PackageID,
		TimeSlotID:          f.TimeSlotID,
		DurationMinutes:     f.DurationMinutes,
		EquipmentRequested:  f.EquipmentRequested,
		SpecialRequirements: f.SpecialRequirements,
		CustomFormResponses: f.CustomResponses,
	}
}

// ValidateBookingForm checks the booking form, including answers to the
// package's custom questions when pkg is supplied. A nil pkg skips the
// question checks.
func ValidateBookingForm(f BookingForm, pkg *models.Package) Result {
	var r Result

	if len(f.FirstName) < 2 {
		r.add("first_name", "First name must be at least 2 characters")
	}
	if len(f.LastName) < 2 {
		r.add("last_name", "Last name must be at least 2 characters")
	}
	if !utils.IsValidEmail(f.Email) {
		r.add("email", "Please enter a valid email address")
	}
	if f.Phone != "" && !utils.IsValidPhone(f.Phone) {
		r.add("phone", "Phone number must be at least 10 digits")
	}
	if f.PackageID == "" {
		r.add("package_id", "Package is required")
	}
	if f.TimeSlotID == "" {
		r.add("time_slot_id", "Time slot is required")
	}
	if f.DurationMinutes != 0 && (f.DurationMinutes < MinDurationMinutes || f.DurationMinutes > MaxDurationMinutes) {
		r.add("duration_minutes", "Duration must be between 30 and 480 minutes")
	}
	if !f.AgreedToTerms {
		r.add("agreed_to_terms", "You must agree to the terms and conditions")
	}

	if pkg != nil {
		validateCustomResponses(&r, pkg.CustomQuestions, f.CustomResponses)
	}

	return r
}

func validateCustomResponses(r *Result, questions []models.CustomQuestion, responses map[string]any) {
	for _, q := range questions {
		answer, present := responses[q.ID]
		if !present || answerEmpty(answer) {
			if q.Required {
				r.add(q.ID, fmt.Sprintf("%q is required", q.Question))
			}
			continue
		}

		switch q.Type {
		case "number":
			if !answerIsNumber(answer) {
				r.add(q.ID, fmt.Sprintf("%q must be a number", q.Question))
			}
		case "email":
			s, ok := answer.(string)
			if !ok || !utils.IsValidEmail(s) {
				r.add(q.ID, fmt.Sprintf("%q must be a valid email address", q.Question))
			}
		case "phone":
			s, ok := answer.(string)
			if !ok || !utils.IsValidPhone(s) {
				r.add(q.ID, fmt.Sprintf("%q must be a valid phone number", q.Question))
			}
		case "date":
			s, ok := answer.(string)
			if !ok {
				r.add(q.ID, fmt.Sprintf("%q must be a date", q.Question))
			} else if _, err := time.Parse(utils.DateLayout, s); err != nil {
				r.add(q.ID, fmt.Sprintf("%q must be a date in YYYY-MM-DD format", q.Question))
			}
		}
	}
}

func answerEmpty(v any) bool {
	switch a := v.(type) {
	case nil:
		return true
	case string:
		return a == ""
	case []any:
		return len(a) == 0
	}
	return false
}

func answerIsNumber(v any) bool {
	switch a := v.(type) {
	case float64, int:
		return true
	case string:
		_, err := strconv.ParseFloat(a, 64)
		return err == nil
	}
	return false
}
