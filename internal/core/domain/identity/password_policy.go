package identity

import (
	"strings"
	"unicode/utf8"
)

const MinPasswordLength = 8

const PasswordSymbols = "!@#$%^&*"

// ValidatePasswordStrength checks the rules in a fixed order and reports only
// the first one that fails.
func ValidatePasswordStrength(password RawPassword) error {
	p := string(password)
	if utf8.RuneCountInString(p) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if !containsInRange(p, 'A', 'Z') {
		return ErrNoUppercase
	}
	if !containsInRange(p, '0', '9') {
		return ErrNoNumber
	}
	if !strings.ContainsAny(p, PasswordSymbols) {
		return ErrNoSymbol
	}
	return nil
}

func containsInRange(s string, lo rune, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}
