package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier for locally created records.
func GenerateID() string {
	return uuid.New().String()
}

// Slugify turns a display name into a URL-safe slug: lowercase letters,
// digits and hyphens only ("Family Portraits!" -> "family-portraits").
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
