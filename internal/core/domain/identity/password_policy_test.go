package identity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		expected error
	}{
		{password: "short1!", expected: ErrPasswordTooShort},
		{password: "Sh1!", expected: ErrPasswordTooShort},
		{password: "", expected: ErrPasswordTooShort},
		{password: "alllowercase1!", expected: ErrNoUppercase},
		{password: "alllowercase", expected: ErrNoUppercase},
		{password: "NoDigits!", expected: ErrNoNumber},
		{password: "NoDigitsNoSymbol", expected: ErrNoNumber},
		{password: "NoSymbol1", expected: ErrNoSymbol},
		{password: "NoSymbol1?", expected: ErrNoSymbol},
		{password: "Ünïcödé1", expected: ErrNoUppercase},
		{password: "Valid123!", expected: nil},
		{password: "AAAAAAA1&", expected: nil},
		{password: "pass WORD 9 *", expected: nil},
	}

	for _, testcase := range cases {
		t.Run(testcase.password, func(t *testing.T) {
			err := ValidatePasswordStrength(RawPassword(testcase.password))
			if testcase.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, testcase.expected)
		})
	}
}

func TestCode(t *testing.T) {
	cases := []struct {
		err      error
		expected string
	}{
		{err: ErrMissingFields, expected: CodeMissingFields},
		{err: ErrIdentityDoesNotExist, expected: CodeNotFound},
		{err: ErrSamePassword, expected: CodeSamePassword},
		{err: ErrPasswordTooShort, expected: CodePasswordTooShort},
		{err: ErrNoUppercase, expected: CodeNoUppercase},
		{err: ErrNoNumber, expected: CodeNoNumber},
		{err: ErrNoSymbol, expected: CodeNoSymbol},
		{err: errors.New("connection refused"), expected: ""},
		{err: fmt.Errorf("lookup: %w", ErrSamePassword), expected: CodeSamePassword},
	}

	for _, testcase := range cases {
		t.Run(testcase.err.Error(), func(t *testing.T) {
			require.Equal(t, testcase.expected, Code(testcase.err))
		})
	}
}
