package common

import (
	"strings"
)

type Email string

// NewEmail normalizes an address for lookups: surrounding whitespace is
// dropped and the address is lowercased.
func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}

func (e Email) IsZero() bool {
	return e == ""
}

// Domain returns the part after the last '@', or an empty string.
func (e Email) Domain() string {
	ix := strings.LastIndex(string(e), "@")
	if ix < 0 {
		return ""
	}
	return string(e[ix+1:])
}
