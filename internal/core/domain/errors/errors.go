package errors

import "fmt"

type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string {
	return e.msg
}

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}

// InvalidConfigError is returned by adapters that are constructed with
// incomplete settings.
type InvalidConfigError struct {
	setting string
	reason  string
}

func NewInvalidConfigError(setting string, reason string) *InvalidConfigError {
	return &InvalidConfigError{setting: setting, reason: reason}
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid setting %s: %s", e.setting, e.reason)
}
