// Package schemas validates user-entered booking data before it is sent
// to the API or placed in the local cache. Validators collect every
// violation instead of stopping at the first so forms can mark all bad
// fields in one pass.
package schemas

import (
	"fmt"
	"strings"
)

// FieldError names one violated constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating one input.
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

// OK reports whether the input passed every check.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// ErrorFor returns the message recorded for the given field, or "".
func (r Result) ErrorFor(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Err folds the result into a single error, nil when the input passed.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

func (r *Result) add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}
