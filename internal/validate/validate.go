// Package validate holds the pure input checks shared by all services.
// Every function is total: no error returns, no side effects.
package validate

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email reports whether s looks like local@domain and fits the column.
func Email(s string) bool {
	return len(s) <= 255 && emailPattern.MatchString(s)
}

// Identifier reports whether s parses as a canonical UUID.
func Identifier(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Sanitize trims surrounding whitespace and truncates to maxLen runes.
// Empty input yields the empty string.
func Sanitize(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxLen {
		s = strings.TrimSpace(string(r[:maxLen]))
	}
	return s
}

// Enum reports whether value is a member of allowed.
func Enum(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
