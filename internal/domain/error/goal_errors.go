// Package error defines domain-specific errors for the BrainCoinz application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetCoinz is returned when the target is zero or negative.
	ErrInvalidTargetCoinz = errors.New("invalid target coinz")

	// ErrInvalidBonusCoinz is returned when the bonus is negative.
	ErrInvalidBonusCoinz = errors.New("invalid bonus coinz")

	// ErrInvalidGoalWindow is returned when the end date is not after the start date.
	ErrInvalidGoalWindow = errors.New("goal end date must be after start date")

	// ErrNoEligibleApps is returned when a goal names no eligible learning apps.
	ErrNoEligibleApps = errors.New("goal must name at least one eligible app")

	// ErrGoalCompleted is returned when mutating a goal that has already completed.
	ErrGoalCompleted = errors.New("goal already completed")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound       GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetCoinz GoalErrorCode = "GOL-010002"
	ErrCodeInvalidBonusCoinz  GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalWindow  GoalErrorCode = "GOL-010004"
	ErrCodeNoEligibleApps     GoalErrorCode = "GOL-010005"
	ErrCodeGoalCompleted      GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields  GoalErrorCode = "GOL-010007"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
