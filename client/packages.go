package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"studiobook/models"
)

// CreatePackage adds a package to a studio.
func (c *Client) CreatePackage(ctx context.Context, studioID string, req models.PackageCreate) (*models.Package, error) {
	query := url.Values{"studio_id": {studioID}}
	var pkg models.Package
	if err := c.post(ctx, "/packages/", query, req, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// ListStudioPackages returns a studio's packages with full management
// detail.
func (c *Client) ListStudioPackages(ctx context.Context, studioID string, filter models.PackageFilter) ([]models.Package, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status_filter", string(filter.Status))
	}
	if filter.IsPublic != nil {
		query.Set("is_public", strconv.FormatBool(*filter.IsPublic))
	}
	if filter.Skip > 0 {
		query.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var packages []models.Package
	path := fmt.Sprintf("/packages/studio/%s", studioID)
	if err := c.get(ctx, path, query, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// GetPackage returns one package with full management detail.
func (c *Client) GetPackage(ctx context.Context, packageID string) (*models.Package, error) {
	var pkg models.Package
	if err := c.get(ctx, fmt.Sprintf("/packages/%s", packageID), nil, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// UpdatePackage applies a partial package update.
func (c *Client) UpdatePackage(ctx context.Context, packageID string, update models.PackageUpdate) (*models.Package, error) {
	var pkg models.Package
	if err := c.put(ctx, fmt.Sprintf("/packages/%s", packageID), update, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// DeletePackage removes a package. The backend refuses when appointments
// reference it.
func (c *Client) DeletePackage(ctx context.Context, packageID string) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.delete(ctx, fmt.Sprintf("/packages/%s", packageID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DuplicatePackage copies a package under a new name and slug. The copy
// starts as a private draft. Empty name and slug let the backend derive
// "<name> (Copy)" and "<slug>-copy".
func (c *Client) DuplicatePackage(ctx context.Context, packageID, newName, newSlug string) (*models.Package, error) {
	query := url.Values{}
	if newName != "" {
		query.Set("new_name", newName)
	}
	if newSlug != "" {
		query.Set("new_slug", newSlug)
	}

	var pkg models.Package
	path := fmt.Sprintf("/packages/%s/duplicate", packageID)
	if err := c.post(ctx, path, query, nil, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}
