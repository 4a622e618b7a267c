package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"studiobook/models"
)

// ListAppointments returns appointments visible to the current account,
// narrowed by filter.
func (c *Client) ListAppointments(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	query := url.Values{}
	if filter.StudioID != "" {
		query.Set("studio_id", filter.StudioID)
	}
	if filter.Status != "" {
		query.Set("status_filter", string(filter.Status))
	}
	if filter.DateFrom != "" {
		query.Set("date_from", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query.Set("date_to", filter.DateTo)
	}
	if filter.Skip > 0 {
		query.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var appointments []models.Appointment
	if err := c.get(ctx, "/appointments/", query, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// GetAppointment returns one appointment.
func (c *Client) GetAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := c.get(ctx, fmt.Sprintf("/appointments/%s", appointmentID), nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// UpdateAppointment applies a partial appointment update.
func (c *Client) UpdateAppointment(ctx context.Context, appointmentID string, update models.AppointmentUpdate) (*models.Appointment, error) {
	var appt models.Appointment
	if err := c.put(ctx, fmt.Sprintf("/appointments/%s", appointmentID), update, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// ConfirmAppointment moves a pending appointment to confirmed.
func (c *Client) ConfirmAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appt models.Appointment
	path := fmt.Sprintf("/appointments/%s/confirm", appointmentID)
	if err := c.post(ctx, path, nil, nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// CancelAppointment cancels an appointment on the studio's behalf and
// frees its slot capacity.
func (c *Client) CancelAppointment(ctx context.Context, appointmentID, reason string) (*models.Appointment, error) {
	query := url.Values{}
	if reason != "" {
		query.Set("reason", reason)
	}

	var appt models.Appointment
	path := fmt.Sprintf("/appointments/%s/cancel", appointmentID)
	if err := c.post(ctx, path, query, nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}
