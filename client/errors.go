package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork marks transport-level failures: DNS, refused connections,
// timeouts. API-level failures use APIError instead.
var ErrNetwork = errors.New("network request failed")

// APIError is any non-2xx response from the booking API, carrying the
// backend-supplied message when one was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError unwraps err into an APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == status
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is a 401 from the API. The client
// surfaces these like any other API error; discarding the stale token is
// the caller's decision.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// newAPIError extracts the backend's message from an error body. The
// backend sends {"detail": "..."}; some proxies in front of it send
// {"error": "..."}. Anything else falls back to the status line.
func newAPIError(status int, body []byte) *APIError {
	message := fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		var s string
		if raw, ok := envelope["detail"]; ok && json.Unmarshal(raw, &s) == nil && s != "" {
			message = s
		} else if raw, ok := envelope["error"]; ok && json.Unmarshal(raw, &s) == nil && s != "" {
			message = s
		}
	}

	return &APIError{Status: status, Message: message}
}
