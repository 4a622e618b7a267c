package store

import (
	"context"
	"fmt"
	"strings"

	"studiobook/models"
)

// SetCustomers replaces the whole collection, the refresh path.
func (s *Store) SetCustomers(ctx context.Context, customers []models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append([]models.Customer(nil), customers...)
	s.persistLocked(ctx)
}

// AddCustomer appends a customer.
func (s *Store) AddCustomer(ctx context.Context, customer models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, customer)
	s.persistLocked(ctx)
}

// UpsertCustomer replaces the customer with the same id, or appends it.
func (s *Store) UpsertCustomer(ctx context.Context, customer models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == customer.ID {
			s.customers[i] = customer
			s.persistLocked(ctx)
			return
		}
	}
	s.customers = append(s.customers, customer)
	s.persistLocked(ctx)
}

// UpdateCustomer merges the non-empty fields of patch into the customer
// with the given id.
func (s *Store) UpdateCustomer(ctx context.Context, customerID string, patch models.Customer) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.customerIndexLocked(customerID)
	if i < 0 {
		return nil, fmt.Errorf("customer %s not found", customerID)
	}

	customer := &s.customers[i]
	if patch.Email != "" {
		customer.Email = patch.Email
	}
	if patch.FirstName != "" {
		customer.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		customer.LastName = patch.LastName
	}
	if patch.Phone != "" {
		customer.Phone = patch.Phone
	}
	if patch.DateOfBirth != "" {
		customer.DateOfBirth = patch.DateOfBirth
	}
	if patch.EmergencyContactName != "" {
		customer.EmergencyContactName = patch.EmergencyContactName
	}
	if patch.EmergencyContactPhone != "" {
		customer.EmergencyContactPhone = patch.EmergencyContactPhone
	}

	s.persistLocked(ctx)
	out := *customer
	return &out, nil
}

// RemoveCustomer deletes the customer with the given id.
func (s *Store) RemoveCustomer(ctx context.Context, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.customerIndexLocked(customerID)
	if i < 0 {
		return fmt.Errorf("customer %s not found", customerID)
	}
	s.customers = append(s.customers[:i], s.customers[i+1:]...)
	s.persistLocked(ctx)
	return nil
}

// GetCustomerByID returns a copy of the customer with the given id.
func (s *Store) GetCustomerByID(customerID string) (*models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.customerIndexLocked(customerID); i >= 0 {
		out := s.customers[i]
		return &out, true
	}
	return nil, false
}

// GetCustomerByEmail returns the customer with the given email, matched
// case-insensitively the way the public booking endpoints do.
func (s *Store) GetCustomerByEmail(email string) (*models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.customers {
		if strings.EqualFold(s.customers[i].Email, email) {
			out := s.customers[i]
			return &out, true
		}
	}
	return nil, false
}

// Customers returns a copy of the whole collection in insertion order.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.customers...)
}

func (s *Store) customerIndexLocked(customerID string) int {
	for i := range s.customers {
		if s.customers[i].ID == customerID {
			return i
		}
	}
	return -1
}
