package utils

import (
	"errors"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

var (
	upperRegex   = regexp.MustCompile(`[A-Z]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex   = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[!@#\$%\^&\*\(\)_\+\-=\[\]\{\}\\|;:'",.<>\/?]`)
)

func ValidatePassword(password string) (bool, error) {
	if len(password) < 8 {
		return false, errors.New("password must be at least 8 characters long")
	}
	if len(password) > 100 {
		return false, errors.New("password must not exceed 100 characters")
	}
	if !upperRegex.MatchString(password) {
		return false, errors.New("password must include at least one uppercase letter")
	}
	if !lowerRegex.MatchString(password) {
		return false, errors.New("password must include at least one lowercase letter")
	}
	if !digitRegex.MatchString(password) {
		return false, errors.New("password must include at least one digit")
	}
	if !specialRegex.MatchString(password) {
		return false, errors.New("password must include at least one special character")
	}
	return true, nil
}

// NormalizeEmail lowercases and trims an email for lookups. Storage keeps the
// address as submitted; uniqueness is enforced on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
