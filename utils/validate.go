package utils

import "regexp"

// Loose on purpose: these gate form input before a round trip, the
// backend remains the authority.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneChars   = regexp.MustCompile(`^[0-9\s\-+().]+$`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone reports whether s looks like a phone number: permitted
// punctuation only and at least ten digits.
func IsValidPhone(s string) bool {
	if !phoneChars.MatchString(s) {
		return false
	}
	return len(digitPattern.FindAllString(s, -1)) >= 10
}
