package schemas

import (
	"regexp"
	"time"

	"studiobook/models"
	"studiobook/utils"
)

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// ValidateTimeSlot checks a slot before it enters the cache or a create
// payload. Start and end are checked for shape only; no ordering between
// them is enforced.
func ValidateTimeSlot(s models.TimeSlot) Result {
	var r Result

	if s.Date == "" {
		r.add("date", "Date is required")
	} else if _, err := time.Parse(utils.DateLayout, s.Date); err != nil {
		r.add("date", "Date must be in YYYY-MM-DD format")
	}
	if s.StartTime == "" {
		r.add("start_time", "Start time is required")
	} else if !clockPattern.MatchString(s.StartTime) {
		r.add("start_time", "Start time must be in HH:MM format")
	}
	if s.EndTime == "" {
		r.add("end_time", "End time is required")
	} else if !clockPattern.MatchString(s.EndTime) {
		r.add("end_time", "End time must be in HH:MM format")
	}
	if s.MaxCapacity < 1 {
		r.add("max_capacity", "Maximum capacity must be at least 1")
	}
	if s.CurrentBookings < 0 {
		r.add("current_bookings", "Current bookings cannot be negative")
	} else if s.MaxCapacity >= 1 && s.CurrentBookings > s.MaxCapacity {
		r.add("current_bookings", "Current bookings cannot exceed maximum capacity")
	}

	return r
}
