package services

import "strings"

// ValidatePassword checks the password policy and returns one human-readable
// message per unmet rule, or an empty slice when the password is acceptable.
// Returning the full list lets callers show every problem at once instead of
// making the user fix them one by one.
func ValidatePassword(password string) []string {
	var violations []string

	if len(password) < 8 {
		violations = append(violations, "must be at least 8 characters long")
	}

	if strings.IndexFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) < 0 {
		violations = append(violations, "must include an upper-case letter")
	}

	if !strings.Contains(password, ".") {
		violations = append(violations, "must include a period (.)")
	}

	return violations
}
