package network

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrInvalidArguments is wrapped by every ValidationError.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrTramNotFound reports a well formed tram number with no route.
	ErrTramNotFound = errors.New("tram not found")
)

// Tram numbers are kept as text but must be made of decimal digits only.
var tramIDPattern = regexp.MustCompile(`^[0-9]+$`)

// ValidationError describes arguments that were rejected before any change
// was made to the network.
type ValidationError struct {
	Message string
}

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArguments
}

// NotFoundError carries the tram number that was looked up.
type NotFoundError struct {
	TramID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("tram %s not found", e.TramID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrTramNotFound
}

// ValidateTramID checks that id is a non-empty string of decimal digits.
func ValidateTramID(id string) error {
	if id == "" || !tramIDPattern.MatchString(id) {
		return NewValidationError("tram number must be a number (starting from 1)")
	}
	return nil
}
