package models

import "testing"

func TestTimeSlotBookable(t *testing.T) {
	tests := []struct {
		name string
		slot TimeSlot
		want bool
	}{
		{"open", TimeSlot{IsAvailable: true, MaxCapacity: 2, CurrentBookings: 1}, true},
		{"full", TimeSlot{IsAvailable: true, MaxCapacity: 2, CurrentBookings: 2}, false},
		{"disabled", TimeSlot{IsAvailable: false, MaxCapacity: 2, CurrentBookings: 0}, false},
		{"zero capacity", TimeSlot{IsAvailable: true, MaxCapacity: 0, CurrentBookings: 0}, false},
	}
	for _, tt := range tests {
		if got := tt.slot.Bookable(); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestTimeSlotAvailableCapacity(t *testing.T) {
	slot := TimeSlot{MaxCapacity: 3, CurrentBookings: 1}
	if got := slot.AvailableCapacity(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	overbooked := TimeSlot{MaxCapacity: 1, CurrentBookings: 2}
	if got := overbooked.AvailableCapacity(); got != 0 {
		t.Fatalf("capacity should floor at 0, got %d", got)
	}
}

func TestAppointmentActive(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentPending, true},
		{AppointmentConfirmed, true},
		{AppointmentCancelled, false},
		{AppointmentCompleted, false},
		{AppointmentNoShow, false},
	}
	for _, tt := range tests {
		appt := Appointment{Status: tt.status}
		if got := appt.Active(); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.status, tt.want, got)
		}
	}
}

func TestValidSessionType(t *testing.T) {
	for _, s := range []SessionType{SessionPortrait, SessionFamily, SessionProfessional, SessionCreative, SessionProduct, SessionEvent} {
		if !ValidSessionType(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if ValidSessionType("underwater") {
		t.Error("unknown session type should be invalid")
	}
}
