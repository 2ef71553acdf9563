// Package error defines domain-specific errors for the Budget App application.
package error

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionErrorUnwrap(t *testing.T) {
	tests := []struct {
		name     string
		err      *TransactionError
		sentinel error
	}{
		{
			name:     "not found wraps sentinel",
			err:      NewTransactionError(ErrCodeTransactionNotFound, "Transaction not found", ErrTransactionNotFound),
			sentinel: ErrTransactionNotFound,
		},
		{
			name:     "type mismatch wraps sentinel",
			err:      NewTransactionError(ErrCodeCategoryTypeMismatch, "Amount sign does not match category", ErrCategoryTypeMismatch),
			sentinel: ErrCategoryTypeMismatch,
		},
		{
			name:     "zero amount wraps sentinel",
			err:      NewTransactionError(ErrCodeZeroAmount, "Amount must not be zero", ErrZeroAmount),
			sentinel: ErrZeroAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}

			var coded *TransactionError
			if !errors.As(tt.err, &coded) {
				t.Fatal("errors.As failed to extract *TransactionError")
			}
			if coded.Code != tt.err.Code {
				t.Errorf("Code = %v, want %v", coded.Code, tt.err.Code)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(decimal.NewFromInt(50), decimal.NewFromInt(-80))

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Error("errors.Is(err, ErrInsufficientFunds) = false, want true")
	}

	if !err.ResultingBalance.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("ResultingBalance = %v, want -30", err.ResultingBalance)
	}

	var detailed *InsufficientFundsError
	if !errors.As(error(err), &detailed) {
		t.Fatal("errors.As failed to extract *InsufficientFundsError")
	}
	if !detailed.CurrentBalance.Equal(decimal.NewFromInt(50)) {
		t.Errorf("CurrentBalance = %v, want 50", detailed.CurrentBalance)
	}
}
