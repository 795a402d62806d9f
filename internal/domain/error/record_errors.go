// Package error defines domain-specific errors for the Activity Log application.
package error

import "errors"

// Record store operation errors.
var (
	// ErrCreateRecordFailed is returned when the record store rejects a create operation.
	ErrCreateRecordFailed = errors.New("failed to create record")

	// ErrDeleteRecordFailed is returned when the record store rejects a delete operation.
	ErrDeleteRecordFailed = errors.New("failed to delete record")

	// ErrGetFullRecordListFailed is returned when the record store fails to return the record list.
	ErrGetFullRecordListFailed = errors.New("failed to get full record list")

	// ErrRecordNotFound is returned when a record is not found in the store.
	ErrRecordNotFound = errors.New("record not found")
)

// RecordErrorCode defines error codes for record store errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Store operation errors (02XXXX)
	ErrCodeCreateRecord      RecordErrorCode = "REC-020001"
	ErrCodeDeleteRecord      RecordErrorCode = "REC-020002"
	ErrCodeGetFullRecordList RecordErrorCode = "REC-020003"
	ErrCodeRecordNotFound    RecordErrorCode = "REC-020004"
)

// RecordError represents a record store failure with code and message.
// The store's own error is preserved as the inner cause for diagnostics
// and is never interpreted beyond that.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
