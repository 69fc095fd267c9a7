// Package error defines domain-specific errors for the BrainCoinz application.
package error

import "errors"

// Purchase gate domain errors.
var (
	// ErrLearningRequirementNotMet is returned when today's learning minutes
	// are below the wallet's minimum daily learning threshold.
	ErrLearningRequirementNotMet = errors.New("daily learning requirement not met")

	// ErrDailyLimitReached is returned when the app's daily time ceiling
	// leaves no remaining minutes today.
	ErrDailyLimitReached = errors.New("daily time limit reached")

	// ErrDailyLimitPartial is returned when some minutes remain today but
	// fewer than requested.
	ErrDailyLimitPartial = errors.New("insufficient remaining daily time")
)

// PurchaseErrorCode defines error codes for purchase gate errors.
// Format: PUR-XXYYYY where XX is category and YYYY is specific error.
type PurchaseErrorCode string

const (
	// Gate denials (01XXXX), in gate evaluation order.
	ErrCodeLearningRequirementNotMet   PurchaseErrorCode = "PUR-010001"
	ErrCodePurchaseInsufficientBalance PurchaseErrorCode = "PUR-010002"
	ErrCodeDailyLimitReached           PurchaseErrorCode = "PUR-010003"
	ErrCodeDailyLimitPartial           PurchaseErrorCode = "PUR-010004"

	// Request validation (02XXXX)
	ErrCodeInvalidPurchaseMinutes PurchaseErrorCode = "PUR-020001"
)

// PurchaseError represents a purchase gate error with code and message.
type PurchaseError struct {
	Code    PurchaseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PurchaseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// NewPurchaseError creates a new PurchaseError with the given code and message.
func NewPurchaseError(code PurchaseErrorCode, message string, err error) *PurchaseError {
	return &PurchaseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
