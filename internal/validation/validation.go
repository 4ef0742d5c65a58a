// Package validation holds the pure field-format predicates shared by the
// usecases. They have no side effects and know nothing about HTTP.
package validation

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// IsValidCPF reports whether s is exactly 11 digits.
func IsValidCPF(s string) bool {
	return len(s) == 11 && allDigits(s)
}

// IsValidPhone reports whether s is 10 or 11 digits.
func IsValidPhone(s string) bool {
	return (len(s) == 10 || len(s) == 11) && allDigits(s)
}

// IsValidName reports whether s is non-empty after trimming whitespace.
func IsValidName(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsPositive reports whether n is greater than zero.
func IsPositive(n int) bool {
	return n > 0
}

// ParseDate parses an ISO calendar date. Timestamp-shaped input is
// tolerated by truncating at the literal 'T', but the date part must be
// exactly 10 characters.
func ParseDate(s string) (time.Time, bool) {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	if len(s) != len(dateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
