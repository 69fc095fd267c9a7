// Package error defines domain-specific errors for the BrainCoinz application.
package error

import "errors"

// Child profile domain errors.
var (
	// ErrChildNotFound is returned when a child profile is not found.
	ErrChildNotFound = errors.New("child not found")

	// ErrChildNotOwned is returned when the child does not belong to the
	// authenticated parent.
	ErrChildNotOwned = errors.New("child does not belong to parent")

	// ErrSessionNotFound is returned when ticking or ending a learning
	// session that is not active.
	ErrSessionNotFound = errors.New("no active learning session")

	// ErrSessionAlreadyActive is returned when starting a session that is
	// already running for the same child and app.
	ErrSessionAlreadyActive = errors.New("learning session already active")
)

// ChildErrorCode defines error codes for child profile errors.
// Format: CHD-XXYYYY where XX is category and YYYY is specific error.
type ChildErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeChildNotFound ChildErrorCode = "CHD-010001"
	ErrCodeChildNotOwned ChildErrorCode = "CHD-010002"

	// Validation errors (02XXXX)
	ErrCodeMissingChildFields ChildErrorCode = "CHD-020001"

	// Session errors (03XXXX)
	ErrCodeSessionNotFound      ChildErrorCode = "CHD-030001"
	ErrCodeSessionAlreadyActive ChildErrorCode = "CHD-030002"
)

// ChildError represents a child profile error with code and message.
type ChildError struct {
	Code    ChildErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChildError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChildError) Unwrap() error {
	return e.Err
}

// NewChildError creates a new ChildError with the given code and message.
func NewChildError(code ChildErrorCode, message string, err error) *ChildError {
	return &ChildError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
