package client

import (
	"context"
	"fmt"
	"net/url"

	"studiobook/models"
)

// CreateStudio registers a new studio owned by the current account.
func (c *Client) CreateStudio(ctx context.Context, req models.StudioCreate) (*models.Studio, error) {
	var studio models.Studio
	if err := c.post(ctx, "/studios/", nil, req, &studio); err != nil {
		return nil, err
	}
	return &studio, nil
}

// ListMyStudios returns the studios owned by the current account.
func (c *Client) ListMyStudios(ctx context.Context) ([]models.Studio, error) {
	var studios []models.Studio
	if err := c.get(ctx, "/studios/", nil, &studios); err != nil {
		return nil, err
	}
	return studios, nil
}

// GetStudio returns one owned studio.
func (c *Client) GetStudio(ctx context.Context, studioID string) (*models.Studio, error) {
	var studio models.Studio
	if err := c.get(ctx, fmt.Sprintf("/studios/%s", studioID), nil, &studio); err != nil {
		return nil, err
	}
	return &studio, nil
}

// UpdateStudio applies a partial studio update.
func (c *Client) UpdateStudio(ctx context.Context, studioID string, update models.StudioUpdate) (*models.Studio, error) {
	var studio models.Studio
	if err := c.put(ctx, fmt.Sprintf("/studios/%s", studioID), update, &studio); err != nil {
		return nil, err
	}
	return &studio, nil
}

// DeleteStudio removes an owned studio.
func (c *Client) DeleteStudio(ctx context.Context, studioID string) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.delete(ctx, fmt.Sprintf("/studios/%s", studioID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateTimeSlots adds a batch of booking windows to a studio.
func (c *Client) CreateTimeSlots(ctx context.Context, studioID string, slots []models.TimeSlotCreate) ([]models.TimeSlot, error) {
	var created []models.TimeSlot
	path := fmt.Sprintf("/studios/%s/time-slots", studioID)
	if err := c.post(ctx, path, nil, slots, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// ListTimeSlots returns a studio's slots, optionally bounded by date.
func (c *Client) ListTimeSlots(ctx context.Context, studioID, dateFrom, dateTo string) ([]models.TimeSlot, error) {
	query := url.Values{}
	if dateFrom != "" {
		query.Set("date_from", dateFrom)
	}
	if dateTo != "" {
		query.Set("date_to", dateTo)
	}

	var slots []models.TimeSlot
	path := fmt.Sprintf("/studios/%s/time-slots", studioID)
	if err := c.get(ctx, path, query, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// UpdateTimeSlot applies a partial update to one slot.
func (c *Client) UpdateTimeSlot(ctx context.Context, studioID, slotID string, update models.TimeSlotUpdate) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	path := fmt.Sprintf("/studios/%s/time-slots/%s", studioID, slotID)
	if err := c.put(ctx, path, update, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// DeleteTimeSlot removes one slot.
func (c *Client) DeleteTimeSlot(ctx context.Context, studioID, slotID string) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	path := fmt.Sprintf("/studios/%s/time-slots/%s", studioID, slotID)
	if err := c.delete(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateEquipment registers an equipment item with a studio.
func (c *Client) CreateEquipment(ctx context.Context, studioID string, req models.EquipmentCreate) (*models.Equipment, error) {
	var equipment models.Equipment
	path := fmt.Sprintf("/studios/%s/equipment", studioID)
	if err := c.post(ctx, path, nil, req, &equipment); err != nil {
		return nil, err
	}
	return &equipment, nil
}

// ListEquipment returns a studio's equipment.
func (c *Client) ListEquipment(ctx context.Context, studioID string) ([]models.Equipment, error) {
	var equipment []models.Equipment
	path := fmt.Sprintf("/studios/%s/equipment", studioID)
	if err := c.get(ctx, path, nil, &equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// UpdateEquipment applies a partial update to one equipment item.
func (c *Client) UpdateEquipment(ctx context.Context, studioID, equipmentID string, update models.EquipmentUpdate) (*models.Equipment, error) {
	var equipment models.Equipment
	path := fmt.Sprintf("/studios/%s/equipment/%s", studioID, equipmentID)
	if err := c.put(ctx, path, update, &equipment); err != nil {
		return nil, err
	}
	return &equipment, nil
}

// DeleteEquipment removes one equipment item.
func (c *Client) DeleteEquipment(ctx context.Context, studioID, equipmentID string) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	path := fmt.Sprintf("/studios/%s/equipment/%s", studioID, equipmentID)
	if err := c.delete(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
