// File: studiobook/store/timeslots.go
package store

import (
	"context"
	"fmt"
	"sort"

	"studiobook/models"

	"go.uber.org/zap"
)

// SetTimeSlots replaces the whole collection, the refresh path.
func (s *Store) SetTimeSlots(ctx context.Context, slots []models.TimeSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeSlots = append([]models.TimeSlot(nil), slots...)
	s.persistLocked(ctx)
}

// AddTimeSlot appends a slot. Ids are not deduplicated here; refresh
// paths use UpsertTimeSlot instead.
func (s *Store) AddTimeSlot(ctx context.Context, slot models.TimeSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeSlots = append(s.timeSlots, slot)
	s.persistLocked(ctx)
}

// UpsertTimeSlot replaces the slot with the same id, or appends it.
func (s *Store) UpsertTimeSlot(ctx context.Context, slot models.TimeSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.timeSlots {
		if s.timeSlots[i].ID == slot.ID {
			s.timeSlots[i] = slot
			s.persistLocked(ctx)
			return
		}
	}
	s.timeSlots = append(s.timeSlots, slot)
	s.persistLocked(ctx)
}

// UpdateTimeSlot merges the non-zero fields of patch into the slot with
// the given id.
func (s *Store) UpdateTimeSlot(ctx context.Context, slotID string, patch models.TimeSlotUpdate) (*models.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.timeSlotIndexLocked(slotID)
	if i < 0 {
		return nil, fmt.Errorf("time slot %s not found", slotID)
	}

	slot := &s.timeSlots[i]
	if patch.Date != nil {
		slot.Date = *patch.Date
	}
	if patch.StartTime != nil {
		slot.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		slot.EndTime = *patch.EndTime
	}
	if patch.MaxCapacity != nil {
		slot.MaxCapacity = *patch.MaxCapacity
	}
	if patch.IsAvailable != nil {
		slot.IsAvailable = *patch.IsAvailable
	}
	if patch.OverridePrice != nil {
		slot.OverridePrice = patch.OverridePrice
	}
	if patch.PackageID != nil {
		slot.PackageID = *patch.PackageID
	}

	s.persistLocked(ctx)
	out := *slot
	return &out, nil
}

// RemoveTimeSlot deletes the slot with the given id.
func (s *Store) RemoveTimeSlot(ctx context.Context, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.timeSlotIndexLocked(slotID)
	if i < 0 {
		return fmt.Errorf("time slot %s not found", slotID)
	}
	s.timeSlots = append(s.timeSlots[:i], s.timeSlots[i+1:]...)
	s.persistLocked(ctx)
	return nil
}

// GetTimeSlotByID returns a copy of the slot with the given id.
func (s *Store) GetTimeSlotByID(slotID string) (*models.TimeSlot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.timeSlotIndexLocked(slotID); i >= 0 {
		out := s.timeSlots[i]
		return &out, true
	}
	return nil, false
}

// TimeSlots returns a copy of the whole collection in insertion order.
func (s *Store) TimeSlots() []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TimeSlot(nil), s.timeSlots...)
}

// BookTimeSlot records one booking against a slot. The slot must be
// bookable: available and under capacity. The count can never exceed
// MaxCapacity through this path.
func (s *Store) BookTimeSlot(ctx context.Context, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.timeSlotIndexLocked(slotID)
	if i < 0 {
		return fmt.Errorf("time slot %s not found", slotID)
	}
	slot := &s.timeSlots[i]
	if !slot.Bookable() {
		return fmt.Errorf("time slot %s is not available or fully booked", slotID)
	}

	slot.CurrentBookings++
	s.logger.Debug("Booked time slot",
		zap.String("slotID", slotID),
		zap.Int("currentBookings", slot.CurrentBookings),
		zap.Int("maxCapacity", slot.MaxCapacity))
	s.persistLocked(ctx)
	return nil
}

// ReleaseTimeSlot undoes one booking, flooring the count at zero. The
// availability flag is left alone: whether the slot can be booked is
// always derived from Bookable, never written back.
func (s *Store) ReleaseTimeSlot(ctx context.Context, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.timeSlotIndexLocked(slotID)
	if i < 0 {
		return fmt.Errorf("time slot %s not found", slotID)
	}
	slot := &s.timeSlots[i]
	if slot.CurrentBookings > 0 {
		slot.CurrentBookings--
	}

	s.logger.Debug("Released time slot",
		zap.String("slotID", slotID),
		zap.Int("currentBookings", slot.CurrentBookings))
	s.persistLocked(ctx)
	return nil
}

// AvailableTimeSlots returns the bookable slots for a date, ordered by
// date and start time. An empty date matches every date. A slot at
// capacity is never returned, whatever state the cache got synced into.
func (s *Store) AvailableTimeSlots(date string) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TimeSlot
	for _, slot := range s.timeSlots {
		if date != "" && slot.Date != date {
			continue
		}
		if !slot.Bookable() {
			continue
		}
		out = append(out, slot)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (s *Store) timeSlotIndexLocked(slotID string) int {
	for i := range s.timeSlots {
		if s.timeSlots[i].ID == slotID {
			return i
		}
	}
	return -1
}
