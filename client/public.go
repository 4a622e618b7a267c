// File: studiobook/client/public.go
package client

import (
	"context"
	"fmt"
	"net/url"

	"studiobook/models"
)

// GetStudioBySlug returns the public profile of an active studio.
func (c *Client) GetStudioBySlug(ctx context.Context, slug string) (*models.Studio, error) {
	var studio models.Studio
	if err := c.get(ctx, fmt.Sprintf("/public/studios/%s", slug), nil, &studio); err != nil {
		return nil, err
	}
	return &studio, nil
}

// GetStudioPackages returns the active, public packages a customer can
// book from a studio's booking page.
func (c *Client) GetStudioPackages(ctx context.Context, slug string) ([]models.Package, error) {
	var packages []models.Package
	path := fmt.Sprintf("/public/studios/%s/packages", slug)
	if err := c.get(ctx, path, nil, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// GetPublicPackage returns the public view of one bookable package.
func (c *Client) GetPublicPackage(ctx context.Context, packageID string) (*models.Package, error) {
	var pkg models.Package
	if err := c.get(ctx, fmt.Sprintf("/packages/public/%s", packageID), nil, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// GetAvailableSlots returns bookable slots for a studio. The backend
// defaults the range to the next 30 days and never returns full slots.
func (c *Client) GetAvailableSlots(ctx context.Context, studioID string, q models.AvailabilityQuery) ([]models.AvailableSlot, error) {
	query := url.Values{}
	if q.PackageID != "" {
		query.Set("package_id", q.PackageID)
	}
	if q.DateFrom != "" {
		query.Set("date_from", q.DateFrom)
	}
	if q.DateTo != "" {
		query.Set("date_to", q.DateTo)
	}

	var slots []models.AvailableSlot
	path := fmt.Sprintf("/public/studios/%s/available-slots", studioID)
	if err := c.get(ctx, path, query, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateBooking books a slot from the public booking page. No token is
// required; the backend finds or creates the customer by email.
func (c *Client) CreateBooking(ctx context.Context, req models.PublicBookingRequest) (*models.Appointment, error) {
	var appt models.Appointment
	if err := c.post(ctx, "/public/bookings", nil, req, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// GetBooking returns a customer's booking, verified by booking id plus
// email.
func (c *Client) GetBooking(ctx context.Context, bookingID, customerEmail string) (*models.Appointment, error) {
	query := url.Values{"customer_email": {customerEmail}}

	var appt models.Appointment
	path := fmt.Sprintf("/public/bookings/%s", bookingID)
	if err := c.get(ctx, path, query, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// CancelBooking cancels a customer's booking, verified by booking id plus
// email. Cancelled and completed bookings are refused by the backend.
func (c *Client) CancelBooking(ctx context.Context, bookingID, customerEmail, reason string) (*models.MessageResponse, error) {
	query := url.Values{"customer_email": {customerEmail}}
	if reason != "" {
		query.Set("cancellation_reason", reason)
	}

	var resp models.MessageResponse
	path := fmt.Sprintf("/public/bookings/%s/cancel", bookingID)
	if err := c.post(ctx, path, query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
