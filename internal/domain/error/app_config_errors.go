// Package error defines domain-specific errors for the BrainCoinz application.
package error

import "errors"

// App registry domain errors.
var (
	// ErrAppNotConfigured is returned when no enabled config exists for the app.
	ErrAppNotConfigured = errors.New("app not configured")

	// ErrAppAlreadyConfigured is returned when a config already exists for the app identifier.
	ErrAppAlreadyConfigured = errors.New("app already configured")

	// ErrAppConfigNotFound is returned when an app config is not found by ID.
	ErrAppConfigNotFound = errors.New("app config not found")

	// ErrRateCategoryMismatch is returned when the rate sign does not encode
	// the category (learning must earn, reward must cost, neutral must be zero).
	ErrRateCategoryMismatch = errors.New("coinz rate does not match category")

	// ErrInvalidAppCategory is returned when the category is not learning, reward, or neutral.
	ErrInvalidAppCategory = errors.New("invalid app category")

	// ErrInvalidDailyTimeLimit is returned for a negative daily time limit.
	ErrInvalidDailyTimeLimit = errors.New("invalid daily time limit")
)

// AppConfigErrorCode defines error codes for app registry errors.
// Format: APP-XXYYYY where XX is category and YYYY is specific error.
type AppConfigErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeAppNotConfigured AppConfigErrorCode = "APP-010001"
	ErrCodeAppConfigNotFound AppConfigErrorCode = "APP-010002"

	// Validation errors (02XXXX)
	ErrCodeAppAlreadyConfigured  AppConfigErrorCode = "APP-020001"
	ErrCodeRateCategoryMismatch  AppConfigErrorCode = "APP-020002"
	ErrCodeInvalidAppCategory    AppConfigErrorCode = "APP-020003"
	ErrCodeInvalidDailyTimeLimit AppConfigErrorCode = "APP-020004"
	ErrCodeMissingAppFields      AppConfigErrorCode = "APP-020005"
)

// AppConfigError represents an app registry error with code and message.
type AppConfigError struct {
	Code    AppConfigErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppConfigError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppConfigError) Unwrap() error {
	return e.Err
}

// NewAppConfigError creates a new AppConfigError with the given code and message.
func NewAppConfigError(code AppConfigErrorCode, message string, err error) *AppConfigError {
	return &AppConfigError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
