package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"studiobook/models"

	"go.uber.org/zap"
)

// SetAppointments replaces the whole collection, the refresh path.
func (s *Store) SetAppointments(ctx context.Context, appointments []models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append([]models.Appointment(nil), appointments...)
	s.persistLocked(ctx)
}

// AddAppointment appends an appointment.
func (s *Store) AddAppointment(ctx context.Context, appt models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append(s.appointments, appt)
	s.persistLocked(ctx)
}

// UpsertAppointment replaces the appointment with the same id, or
// appends it.
func (s *Store) UpsertAppointment(ctx context.Context, appt models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == appt.ID {
			s.appointments[i] = appt
			s.persistLocked(ctx)
			return
		}
	}
	s.appointments = append(s.appointments, appt)
	s.persistLocked(ctx)
}

// UpdateAppointment merges the non-zero fields of patch into the
// appointment with the given id.
func (s *Store) UpdateAppointment(ctx context.Context, appointmentID string, patch models.AppointmentUpdate) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.appointmentIndexLocked(appointmentID)
	if i < 0 {
		return nil, fmt.Errorf("appointment %s not found", appointmentID)
	}

	appt := &s.appointments[i]
	if patch.Status != nil {
		s.applyStatusLocked(appt, *patch.Status, "")
	}
	if patch.Notes != nil {
		appt.Notes = *patch.Notes
	}
	if patch.SpecialRequirements != nil {
		appt.SpecialRequirements = *patch.SpecialRequirements
	}
	if patch.EquipmentRequested != nil {
		appt.EquipmentRequested = patch.EquipmentRequested
	}
	appt.UpdatedAt = time.Now()

	s.persistLocked(ctx)
	out := *appt
	return &out, nil
}

// SetAppointmentStatus moves an appointment through its lifecycle,
// stamping confirmed_at and cancelled_at on the matching transitions.
func (s *Store) SetAppointmentStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus, reason string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.appointmentIndexLocked(appointmentID)
	if i < 0 {
		return nil, fmt.Errorf("appointment %s not found", appointmentID)
	}

	appt := &s.appointments[i]
	s.applyStatusLocked(appt, status, reason)
	appt.UpdatedAt = time.Now()

	s.logger.Debug("Appointment status changed",
		zap.String("appointmentID", appointmentID),
		zap.String("status", string(status)))
	s.persistLocked(ctx)
	out := *appt
	return &out, nil
}

func (s *Store) applyStatusLocked(appt *models.Appointment, status models.AppointmentStatus, reason string) {
	appt.Status = status
	now := time.Now()
	switch status {
	case models.AppointmentConfirmed:
		appt.ConfirmedAt = &now
	case models.AppointmentCancelled:
		appt.CancelledAt = &now
		if reason != "" {
			appt.CancellationReason = reason
		}
	}
}

// RemoveAppointment deletes the appointment with the given id.
func (s *Store) RemoveAppointment(ctx context.Context, appointmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.appointmentIndexLocked(appointmentID)
	if i < 0 {
		return fmt.Errorf("appointment %s not found", appointmentID)
	}
	s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
	s.persistLocked(ctx)
	return nil
}

// GetAppointmentByID returns a copy of the appointment with the given id.
func (s *Store) GetAppointmentByID(appointmentID string) (*models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.appointmentIndexLocked(appointmentID); i >= 0 {
		out := s.appointments[i]
		return &out, true
	}
	return nil, false
}

// Appointments returns a copy of the whole collection in insertion order.
func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Appointment(nil), s.appointments...)
}

// AppointmentsByCustomer returns a customer's appointments.
func (s *Store) AppointmentsByCustomer(customerID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, appt := range s.appointments {
		if appt.CustomerID == customerID {
			out = append(out, appt)
		}
	}
	return out
}

// AppointmentsByStatus returns the appointments in one lifecycle state.
func (s *Store) AppointmentsByStatus(status models.AppointmentStatus) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, appt := range s.appointments {
		if appt.Status == status {
			out = append(out, appt)
		}
	}
	return out
}

// AppointmentsForDate returns the appointments whose slot falls on the
// given date.
func (s *Store) AppointmentsForDate(date string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, appt := range s.appointments {
		if appt.TimeSlot != nil && appt.TimeSlot.Date == date {
			out = append(out, appt)
		}
	}
	return out
}

// UpcomingAppointments returns active appointments on or after the given
// date, soonest first. Appointments without a slot snapshot are skipped.
func (s *Store) UpcomingAppointments(fromDate string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, appt := range s.appointments {
		if !appt.Active() || appt.TimeSlot == nil {
			continue
		}
		if appt.TimeSlot.Date >= fromDate {
			out = append(out, appt)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TimeSlot.Date != out[j].TimeSlot.Date {
			return out[i].TimeSlot.Date < out[j].TimeSlot.Date
		}
		return out[i].TimeSlot.StartTime < out[j].TimeSlot.StartTime
	})
	return out
}

func (s *Store) appointmentIndexLocked(appointmentID string) int {
	for i := range s.appointments {
		if s.appointments[i].ID == appointmentID {
			return i
		}
	}
	return -1
}
