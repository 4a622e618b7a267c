package schemas

import (
	"testing"

	"studiobook/models"
)

func validSlot() models.TimeSlot {
	return models.TimeSlot{
		ID:          "slot-1",
		StudioID:    "studio-1",
		Date:        "2026-09-01",
		StartTime:   "09:00",
		EndTime:     "10:00",
		MaxCapacity: 1,
		IsAvailable: true,
	}
}

func TestValidateTimeSlotPasses(t *testing.T) {
	if r := ValidateTimeSlot(validSlot()); !r.OK() {
		t.Fatalf("expected valid slot, got %v", r.Errors)
	}
}

func TestValidateTimeSlotDate(t *testing.T) {
	s := validSlot()
	s.Date = ""
	if got := ValidateTimeSlot(s).ErrorFor("date"); got != "Date is required" {
		t.Errorf("empty date: %q", got)
	}

	s.Date = "09/01/2026"
	if got := ValidateTimeSlot(s).ErrorFor("date"); got != "Date must be in YYYY-MM-DD format" {
		t.Errorf("malformed date: %q", got)
	}
}

func TestValidateTimeSlotClockShapes(t *testing.T) {
	accepted := []string{"09:00", "9:05", "23:59", "00:00", "14:30:00"}
	for _, clock := range accepted {
		s := validSlot()
		s.StartTime = clock
		if got := ValidateTimeSlot(s).ErrorFor("start_time"); got != "" {
			t.Errorf("start %q rejected: %q", clock, got)
		}
	}

	rejected := []string{"24:00", "12:60", "noon", "1200", "12:3"}
	for _, clock := range rejected {
		s := validSlot()
		s.EndTime = clock
		if got := ValidateTimeSlot(s).ErrorFor("end_time"); got != "End time must be in HH:MM format" {
			t.Errorf("end %q: got %q", clock, got)
		}
	}

	s := validSlot()
	s.StartTime = ""
	if got := ValidateTimeSlot(s).ErrorFor("start_time"); got != "Start time is required" {
		t.Errorf("empty start: %q", got)
	}
}

func TestValidateTimeSlotAllowsReversedTimes(t *testing.T) {
	// Shape only; ordering is the backend's call.
	s := validSlot()
	s.StartTime = "15:00"
	s.EndTime = "09:00"
	if r := ValidateTimeSlot(s); !r.OK() {
		t.Fatalf("reversed times should still pass shape checks, got %v", r.Errors)
	}
}

func TestValidateTimeSlotCapacity(t *testing.T) {
	s := validSlot()
	s.MaxCapacity = 0
	if got := ValidateTimeSlot(s).ErrorFor("max_capacity"); got != "Maximum capacity must be at least 1" {
		t.Errorf("max_capacity: %q", got)
	}

	s = validSlot()
	s.CurrentBookings = -1
	if got := ValidateTimeSlot(s).ErrorFor("current_bookings"); got != "Current bookings cannot be negative" {
		t.Errorf("negative bookings: %q", got)
	}

	s = validSlot()
	s.MaxCapacity = 2
	s.CurrentBookings = 3
	if got := ValidateTimeSlot(s).ErrorFor("current_bookings"); got != "Current bookings cannot exceed maximum capacity" {
		t.Errorf("overbooked: %q", got)
	}

	s = validSlot()
	s.MaxCapacity = 2
	s.CurrentBookings = 2
	if r := ValidateTimeSlot(s); !r.OK() {
		t.Fatalf("full slot is still a valid record, got %v", r.Errors)
	}
}
