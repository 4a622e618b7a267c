package client

import (
	"context"

	"studiobook/models"
)

// Register creates an account and adopts the returned bearer token.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.TokenResponse, error) {
	var resp models.TokenResponse
	if err := c.post(ctx, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.AccessToken)
	return &resp, nil
}

// Login authenticates with email and password and adopts the returned
// bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	var resp models.TokenResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.post(ctx, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.AccessToken)
	return &resp, nil
}

// Me returns the account the current token belongs to.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe applies a partial profile update.
func (c *Client) UpdateMe(ctx context.Context, update models.UserUpdate) (*models.User, error) {
	var user models.User
	if err := c.put(ctx, "/auth/me", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// PromoteToStudioOwner upgrades a customer account to studio_owner.
func (c *Client) PromoteToStudioOwner(ctx context.Context) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.post(ctx, "/auth/promote-to-studio-owner", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyEmail marks the current account's email as verified.
func (c *Client) VerifyEmail(ctx context.Context) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.post(ctx, "/auth/verify-email", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout tells the backend and drops the local token. The token is
// cleared even when the call fails; the API side is stateless anyway.
func (c *Client) Logout(ctx context.Context) error {
	defer c.ClearToken()
	return c.post(ctx, "/auth/logout", nil, nil, nil)
}
