// Package error defines domain-specific errors for the Budget App application.
package error

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found or not owned by the caller.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCategoryTypeMismatch is returned when the amount sign does not match the category type.
	ErrCategoryTypeMismatch = errors.New("transaction amount sign does not match category type")

	// ErrInsufficientFunds is returned when an expense would drive a non-credit
	// account balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrZeroAmount is returned when the transaction amount is zero.
	ErrZeroAmount = errors.New("transaction amount must not be zero")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010001"
	ErrCodeCategoryTypeMismatch     TransactionErrorCode = "TXN-010002"
	ErrCodeInsufficientFunds        TransactionErrorCode = "TXN-010003"
	ErrCodeZeroAmount               TransactionErrorCode = "TXN-010004"
	ErrCodeTxnAccountNotFound       TransactionErrorCode = "TXN-010005"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010007"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010008"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InsufficientFundsError carries the balance context for a rejected expense.
type InsufficientFundsError struct {
	CurrentBalance    decimal.Decimal
	TransactionAmount decimal.Decimal
	ResultingBalance  decimal.Decimal
}

// Error implements the error interface.
func (e *InsufficientFundsError) Error() string {
	return "insufficient funds: balance " + e.CurrentBalance.String() +
		" + " + e.TransactionAmount.String() +
		" would result in " + e.ResultingBalance.String()
}

// Unwrap returns the sentinel ErrInsufficientFunds so callers can match with
// errors.Is.
func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// NewInsufficientFundsError creates an InsufficientFundsError from the current
// balance and the attempted amount.
func NewInsufficientFundsError(currentBalance, amount decimal.Decimal) *InsufficientFundsError {
	return &InsufficientFundsError{
		CurrentBalance:    currentBalance,
		TransactionAmount: amount,
		ResultingBalance:  currentBalance.Add(amount),
	}
}
