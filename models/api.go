package models

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "bearer"
	ExpiresIn   int    `json:"expires_in"` // seconds
	User        User   `json:"user"`
}

// MessageResponse is the generic success envelope for non-entity endpoints.
type MessageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"` // "success"
}

// HealthResponse is the backend liveness probe body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
