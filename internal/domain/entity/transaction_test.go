// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestTransactionMatchesCategory(t *testing.T) {
	tests := []struct {
		name         string
		amount       decimal.Decimal
		categoryType CategoryType
		matches      bool
	}{
		{name: "positive amount with income category", amount: decimal.NewFromInt(100), categoryType: CategoryTypeIncome, matches: true},
		{name: "positive amount with expense category", amount: decimal.NewFromInt(100), categoryType: CategoryTypeExpense, matches: false},
		{name: "negative amount with expense category", amount: decimal.NewFromInt(-100), categoryType: CategoryTypeExpense, matches: true},
		{name: "negative amount with income category", amount: decimal.NewFromInt(-100), categoryType: CategoryTypeIncome, matches: false},
		{name: "zero amount matches nothing", amount: decimal.Zero, categoryType: CategoryTypeIncome, matches: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := NewTransaction(uuid.New(), uuid.New(), uuid.New(), "Courses", tt.amount, time.Now(), "")
			if got := txn.MatchesCategory(tt.categoryType); got != tt.matches {
				t.Errorf("MatchesCategory(%v) = %v, want %v", tt.categoryType, got, tt.matches)
			}
		})
	}
}

func TestTransactionDirection(t *testing.T) {
	t.Run("positive amount is income", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), uuid.New(), uuid.New(), "Salaire", decimal.NewFromInt(2500), time.Now(), "")
		if !txn.IsIncome() || txn.IsExpense() {
			t.Errorf("IsIncome() = %v, IsExpense() = %v, want true, false", txn.IsIncome(), txn.IsExpense())
		}
	})

	t.Run("negative amount is expense", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), uuid.New(), uuid.New(), "Loyer", decimal.NewFromInt(-800), time.Now(), "")
		if txn.IsIncome() || !txn.IsExpense() {
			t.Errorf("IsIncome() = %v, IsExpense() = %v, want false, true", txn.IsIncome(), txn.IsExpense())
		}
	})

	t.Run("zero amount is neither", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), uuid.New(), uuid.New(), "Rien", decimal.Zero, time.Now(), "")
		if txn.IsIncome() || txn.IsExpense() {
			t.Errorf("IsIncome() = %v, IsExpense() = %v, want false, false", txn.IsIncome(), txn.IsExpense())
		}
	})
}
