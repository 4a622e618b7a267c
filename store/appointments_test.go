package store

import (
	"context"
	"testing"

	"studiobook/models"
)

func seedAppointments(ctx context.Context, s *Store) {
	s.SetAppointments(ctx, []models.Appointment{
		{
			ID:         "appt-1",
			CustomerID: "cust-1",
			TimeSlotID: "slot-1",
			Status:     models.AppointmentConfirmed,
			TimeSlot:   &models.TimeSlot{ID: "slot-1", Date: "2026-09-02", StartTime: "14:00"},
		},
		{
			ID:         "appt-2",
			CustomerID: "cust-2",
			TimeSlotID: "slot-2",
			Status:     models.AppointmentPending,
			TimeSlot:   &models.TimeSlot{ID: "slot-2", Date: "2026-09-01", StartTime: "09:00"},
		},
		{
			ID:         "appt-3",
			CustomerID: "cust-1",
			TimeSlotID: "slot-3",
			Status:     models.AppointmentCancelled,
			TimeSlot:   &models.TimeSlot{ID: "slot-3", Date: "2026-09-03", StartTime: "11:00"},
		},
	})
}

func TestSetAppointmentStatusConfirm(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)
	seedAppointments(ctx, s)

	appt, err := s.SetAppointmentStatus(ctx, "appt-2", models.AppointmentConfirmed, "")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if appt.Status != models.AppointmentConfirmed {
		t.Fatalf("expected confirmed, got %s", appt.Status)
	}
	if appt.ConfirmedAt == nil {
		t.Fatal("confirmed_at not stamped")
	}
	if appt.UpdatedAt.IsZero() {
		t.Fatal("updated_at not stamped")
	}
}

func TestSetAppointmentStatusCancel(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)
	seedAppointments(ctx, s)

	appt, err := s.SetAppointmentStatus(ctx, "appt-1", models.AppointmentCancelled, "customer request")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if appt.CancelledAt == nil {
		t.Fatal("cancelled_at not stamped")
	}
	if appt.CancellationReason != "customer request" {
		t.Fatalf("reason not recorded: %q", appt.CancellationReason)
	}

	if _, err := s.SetAppointmentStatus(ctx, "appt-999", models.AppointmentCancelled, ""); err == nil {
		t.Fatal("expected error for unknown appointment")
	}
}

func TestUpdateAppointment(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)
	seedAppointments(ctx, s)

	notes := "bring the backdrop"
	updated, err := s.UpdateAppointment(ctx, "appt-1", models.AppointmentUpdate{Notes: &notes})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Notes != "bring the backdrop" {
		t.Fatalf("notes not applied: %q", updated.Notes)
	}
	if updated.Status != models.AppointmentConfirmed {
		t.Fatalf("status must be untouched, got %s", updated.Status)
	}

	status := models.AppointmentCompleted
	updated, err = s.UpdateAppointment(ctx, "appt-1", models.AppointmentUpdate{Status: &status})
	if err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if updated.Status != models.AppointmentCompleted {
		t.Fatalf("expected completed, got %s", updated.Status)
	}
	if updated.Notes != "bring the backdrop" {
		t.Fatal("earlier notes lost on partial update")
	}
}

func TestAppointmentLookups(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)
	seedAppointments(ctx, s)

	byCustomer := s.AppointmentsByCustomer("cust-1")
	if len(byCustomer) != 2 {
		t.Fatalf("expected 2 appointments for cust-1, got %d", len(byCustomer))
	}

	pending := s.AppointmentsByStatus(models.AppointmentPending)
	if len(pending) != 1 || pending[0].ID != "appt-2" {
		t.Fatalf("unexpected pending set: %+v", pending)
	}

	onDate := s.AppointmentsForDate("2026-09-02")
	if len(onDate) != 1 || onDate[0].ID != "appt-1" {
		t.Fatalf("unexpected appointments for date: %+v", onDate)
	}
}

func TestUpcomingAppointments(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)
	seedAppointments(ctx, s)

	upcoming := s.UpcomingAppointments("2026-09-01")
	// appt-3 is cancelled and must not appear.
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming appointments, got %d", len(upcoming))
	}
	if upcoming[0].ID != "appt-2" || upcoming[1].ID != "appt-1" {
		t.Fatalf("expected soonest first, got %s then %s", upcoming[0].ID, upcoming[1].ID)
	}

	if got := s.UpcomingAppointments("2026-09-03"); len(got) != 0 {
		t.Fatalf("expected nothing after the window, got %+v", got)
	}
}

func TestRemoveAppointment(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)
	seedAppointments(ctx, s)

	if err := s.RemoveAppointment(ctx, "appt-2"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok := s.GetAppointmentByID("appt-2"); ok {
		t.Fatal("appointment still present after removal")
	}
	if err := s.RemoveAppointment(ctx, "appt-2"); err == nil {
		t.Fatal("expected error removing an absent appointment")
	}
}

func TestUpsertAppointment(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)
	seedAppointments(ctx, s)

	s.UpsertAppointment(ctx, models.Appointment{ID: "appt-1", CustomerID: "cust-1", Status: models.AppointmentCompleted})
	appt, ok := s.GetAppointmentByID("appt-1")
	if !ok || appt.Status != models.AppointmentCompleted {
		t.Fatalf("upsert did not replace: %+v", appt)
	}

	s.UpsertAppointment(ctx, models.Appointment{ID: "appt-4", CustomerID: "cust-3"})
	if got := len(s.Appointments()); got != 4 {
		t.Fatalf("expected 4 appointments, got %d", got)
	}
}
