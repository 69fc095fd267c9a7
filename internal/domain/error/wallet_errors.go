// Package error defines domain-specific errors for the BrainCoinz application.
package error

import "errors"

// Wallet and ledger domain errors. All of these are recoverable: the caller
// is expected to surface the reason and let the user retry with different
// input. A failed operation leaves wallet state unchanged.
var (
	// ErrWalletNotFound is returned when no wallet exists for the child.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInsufficientBalance is returned when a spend costs more than the current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned for a negative earn amount or non-positive spend minutes.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidAdjustmentType is returned when a balance adjustment uses a
	// transaction type other than bonus, penalty, or adjustment.
	ErrInvalidAdjustmentType = errors.New("invalid adjustment type")

	// ErrInvalidAdjustmentDelta is returned when the delta sign does not match
	// the adjustment type (bonus must credit, penalty must debit).
	ErrInvalidAdjustmentDelta = errors.New("adjustment delta does not match type")
)

// WalletErrorCode defines error codes for wallet/ledger errors.
// Format: WLT-XXYYYY where XX is category and YYYY is specific error.
type WalletErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeWalletNotFound WalletErrorCode = "WLT-010001"

	// Ledger validation errors (02XXXX)
	ErrCodeInsufficientBalance    WalletErrorCode = "WLT-020001"
	ErrCodeInvalidAmount          WalletErrorCode = "WLT-020002"
	ErrCodeInvalidAdjustmentType  WalletErrorCode = "WLT-020003"
	ErrCodeInvalidAdjustmentDelta WalletErrorCode = "WLT-020004"
)

// WalletError represents a wallet/ledger error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
