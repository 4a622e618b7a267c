package models

import "time"

// Customer is a person who books sessions at a studio. The backend keeps
// customers per studio and flattens the linked account into this shape.
type Customer struct {
	ID                    string    `json:"id"`
	Email                 string    `json:"email"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Phone                 string    `json:"phone,omitempty"`
	DateOfBirth           string    `json:"date_of_birth,omitempty"` // "2006-01-02", optional
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time `json:"created_at,omitzero"`
}

// FullName joins first and last name for display.
func (c Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
