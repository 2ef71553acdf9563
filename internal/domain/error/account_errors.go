// Package error defines domain-specific errors for the Budget App application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found or not owned by the caller.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNameExists is returned when the user already has an account with the given name.
	ErrAccountNameExists = errors.New("account name already exists")

	// ErrAccountHasTransactions is returned when deleting an account still referenced by transactions.
	ErrAccountHasTransactions = errors.New("account has transactions")

	// ErrInvalidAccountType is returned when the account type is not one of the known types.
	ErrInvalidAccountType = errors.New("invalid account type")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	ErrCodeAccountNotFound        AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameExists      AccountErrorCode = "ACC-010002"
	ErrCodeAccountHasTransactions AccountErrorCode = "ACC-010003"
	ErrCodeInvalidAccountType     AccountErrorCode = "ACC-010004"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
