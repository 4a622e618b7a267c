package schemas

import "studiobook/models"

// Appointment durations the studios will actually staff.
const (
	MinDurationMinutes = 30
	MaxDurationMinutes = 480
)

// ValidateAppointment checks an appointment before it enters the cache.
func ValidateAppointment(a models.Appointment) Result {
	var r Result

	if !models.ValidSessionType(a.SessionType) {
		r.add("session_type", "Invalid session type")
	}
	if a.DurationMinutes < MinDurationMinutes || a.DurationMinutes > MaxDurationMinutes {
		r.add("duration_minutes", "Duration must be between 30 and 480 minutes")
	}
	if a.CustomerID == "" {
		r.add("customer_id", "Customer is required")
	}
	if a.TimeSlotID == "" {
		r.add("time_slot_id", "Time slot is required")
	}

	return r
}
