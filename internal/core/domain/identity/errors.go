package identity

import (
	"errors"
)

var (
	ErrMissingFields        = errors.New("required fields are missing")
	ErrIdentityDoesNotExist = errors.New("identity does not exist")
	ErrSamePassword         = errors.New("new password must differ from the current one")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrNoUppercase          = errors.New("password has no uppercase letter")
	ErrNoNumber             = errors.New("password has no digit")
	ErrNoSymbol             = errors.New("password has no symbol")
)

const (
	CodeMissingFields    = "MISSING_FIELDS"
	CodeNotFound         = "NOT_FOUND"
	CodeSamePassword     = "SAME_PASSWORD"
	CodePasswordTooShort = "PASSWORD_TOO_SHORT"
	CodeNoUppercase      = "NO_UPPERCASE"
	CodeNoNumber         = "NO_NUMBER"
	CodeNoSymbol         = "NO_SYMBOL"
)

var codes = []struct {
	err  error
	code string
}{
	{err: ErrMissingFields, code: CodeMissingFields},
	{err: ErrIdentityDoesNotExist, code: CodeNotFound},
	{err: ErrSamePassword, code: CodeSamePassword},
	{err: ErrPasswordTooShort, code: CodePasswordTooShort},
	{err: ErrNoUppercase, code: CodeNoUppercase},
	{err: ErrNoNumber, code: CodeNoNumber},
	{err: ErrNoSymbol, code: CodeNoSymbol},
}

// Code returns the client facing code of a policy error, or an empty string
// for any other error.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
