package models

import "time"

// Equipment is a studio-owned item customers can request with a session.
type Equipment struct {
	ID                  string        `json:"id"`
	StudioID            string        `json:"studio_id"`
	Name                string        `json:"name"`
	Type                EquipmentType `json:"type"`
	Description         string        `json:"description,omitempty"`
	IsAvailable         bool          `json:"is_available"`
	RequiresSupervision bool          `json:"requires_supervision"`
	AdditionalCost      float64       `json:"additional_cost"`
	CreatedAt           time.Time     `json:"created_at,omitzero"`
}

// EquipmentCreate is the payload for registering equipment with a studio.
type EquipmentCreate struct {
	Name                string        `json:"name" binding:"required"`
	Type                EquipmentType `json:"type" binding:"required"`
	Description         string        `json:"description,omitempty"`
	IsAvailable         *bool         `json:"is_available,omitempty"` // defaults to true
	RequiresSupervision bool          `json:"requires_supervision,omitempty"`
	AdditionalCost      float64       `json:"additional_cost,omitempty"`
}

// EquipmentUpdate carries a partial equipment update; nil fields are left untouched.
type EquipmentUpdate struct {
	Name                *string        `json:"name,omitempty"`
	Type                *EquipmentType `json:"type,omitempty"`
	Description         *string        `json:"description,omitempty"`
	IsAvailable         *bool          `json:"is_available,omitempty"`
	RequiresSupervision *bool          `json:"requires_supervision,omitempty"`
	AdditionalCost      *float64       `json:"additional_cost,omitempty"`
}
