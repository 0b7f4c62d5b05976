package logger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTimezone is returned when a timezone name cannot be resolved.
	ErrInvalidTimezone = errors.New("invalid timezone")
	// ErrInvalidLevel is returned by ParseLevel for unknown level names.
	ErrInvalidLevel = errors.New("invalid log level")
)

// TimezoneError records the name that failed to resolve and why.
// It matches ErrInvalidTimezone with errors.Is.
type TimezoneError struct {
	Name  string
	Cause error
}

func (e *TimezoneError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %q: %v", ErrInvalidTimezone, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s %q", ErrInvalidTimezone, e.Name)
}

func (e *TimezoneError) Is(target error) bool {
	return target == ErrInvalidTimezone
}

func (e *TimezoneError) Unwrap() error {
	return e.Cause
}
