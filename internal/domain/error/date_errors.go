// Package error defines domain-specific errors for the Activity Log application.
package error

import "errors"

// Date domain errors.
var (
	// ErrDateInvalid is returned when a native date value fails its validity check.
	ErrDateInvalid = errors.New("date is invalid")

	// ErrDateInvalidFormat is returned when an input string cannot be parsed into a valid date.
	ErrDateInvalidFormat = errors.New("date string has invalid format")
)

// DateErrorCode defines error codes for date errors.
// Format: DATE-XXYYYY where XX is category and YYYY is specific error.
type DateErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDateInvalid       DateErrorCode = "DATE-010001"
	ErrCodeDateInvalidFormat DateErrorCode = "DATE-010002"
)

// DateError represents a date error with code and message.
type DateError struct {
	Code    DateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DateError) Unwrap() error {
	return e.Err
}

// NewDateError creates a new DateError with the given code and message.
func NewDateError(code DateErrorCode, message string, err error) *DateError {
	return &DateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
