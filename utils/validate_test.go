package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"owner+tag@studio.co.uk",
		"a@b.io",
	}
	for _, s := range valid {
		if !IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing-at.example.com",
		"no-domain@",
		"no-tld@example",
		"spaces in@example.com",
	}
	for _, s := range invalid {
		if IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"+1 (503) 555-0142",
		"5035550142",
		"503.555.0142",
	}
	for _, s := range valid {
		if !IsValidPhone(s) {
			t.Errorf("IsValidPhone(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"555-0142",          // too few digits
		"call me maybe",     // letters
		"+1 503 555 x0142",  // disallowed character
	}
	for _, s := range invalid {
		if IsValidPhone(s) {
			t.Errorf("IsValidPhone(%q) = true, want false", s)
		}
	}
}
