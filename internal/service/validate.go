package service

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrInvalidEmail = errors.New("invalid email address")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidationError reports whether err is a pre-network input rejection.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPhone) || errors.Is(err, ErrInvalidEmail)
}

// NormalizePhone strips formatting from a phone number and validates its
// shape. Spaces, dashes and parentheses are dropped; one leading "+" is
// allowed. Validation happens before any network call.
func NormalizePhone(phone string) (string, error) {
	trimmed := strings.TrimSpace(phone)
	plus := strings.HasPrefix(trimmed, "+")

	var b strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
			// formatting, dropped
		default:
			return "", ErrInvalidPhone
		}
	}

	digits := b.String()
	if len(digits) < 8 || len(digits) > 15 {
		return "", ErrInvalidPhone
	}
	if plus {
		return "+" + digits, nil
	}
	return digits, nil
}

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}
	return nil
}
