package store

import (
	"context"
	"fmt"

	"studiobook/models"
)

// SetEquipment replaces the whole collection, the refresh path.
func (s *Store) SetEquipment(ctx context.Context, equipment []models.Equipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipment = append([]models.Equipment(nil), equipment...)
	s.persistLocked(ctx)
}

// AddEquipment appends an equipment item.
func (s *Store) AddEquipment(ctx context.Context, item models.Equipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipment = append(s.equipment, item)
	s.persistLocked(ctx)
}

// UpsertEquipment replaces the item with the same id, or appends it.
func (s *Store) UpsertEquipment(ctx context.Context, item models.Equipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.equipment {
		if s.equipment[i].ID == item.ID {
			s.equipment[i] = item
			s.persistLocked(ctx)
			return
		}
	}
	s.equipment = append(s.equipment, item)
	s.persistLocked(ctx)
}

// UpdateEquipment merges the non-zero fields of patch into the item with
// the given id.
func (s *Store) UpdateEquipment(ctx context.Context, equipmentID string, patch models.EquipmentUpdate) (*models.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.equipmentIndexLocked(equipmentID)
	if i < 0 {
		return nil, fmt.Errorf("equipment %s not found", equipmentID)
	}

	item := &s.equipment[i]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Type != nil {
		item.Type = *patch.Type
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.IsAvailable != nil {
		item.IsAvailable = *patch.IsAvailable
	}
	if patch.RequiresSupervision != nil {
		item.RequiresSupervision = *patch.RequiresSupervision
	}
	if patch.AdditionalCost != nil {
		item.AdditionalCost = *patch.AdditionalCost
	}

	s.persistLocked(ctx)
	out := *item
	return &out, nil
}

// RemoveEquipment deletes the item with the given id.
func (s *Store) RemoveEquipment(ctx context.Context, equipmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.equipmentIndexLocked(equipmentID)
	if i < 0 {
		return fmt.Errorf("equipment %s not found", equipmentID)
	}
	s.equipment = append(s.equipment[:i], s.equipment[i+1:]...)
	s.persistLocked(ctx)
	return nil
}

// GetEquipmentByID returns a copy of the item with the given id.
func (s *Store) GetEquipmentByID(equipmentID string) (*models.Equipment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.equipmentIndexLocked(equipmentID); i >= 0 {
		out := s.equipment[i]
		return &out, true
	}
	return nil, false
}

// Equipment returns a copy of the whole collection in insertion order.
func (s *Store) Equipment() []models.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Equipment(nil), s.equipment...)
}

// EquipmentByType returns the items of one category.
func (s *Store) EquipmentByType(equipmentType models.EquipmentType) []models.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Equipment
	for _, item := range s.equipment {
		if item.Type == equipmentType {
			out = append(out, item)
		}
	}
	return out
}

// AvailableEquipment returns the items customers can currently request.
func (s *Store) AvailableEquipment() []models.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Equipment
	for _, item := range s.equipment {
		if item.IsAvailable {
			out = append(out, item)
		}
	}
	return out
}

func (s *Store) equipmentIndexLocked(equipmentID string) int {
	for i := range s.equipment {
		if s.equipment[i].ID == equipmentID {
			return i
		}
	}
	return -1
}
