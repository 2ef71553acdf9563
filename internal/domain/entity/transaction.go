// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a financial transaction in the Budget App system.
// The sign of the amount carries the transaction type: positive amounts are
// income, negative amounts are expenses. The sign must always agree with the
// referenced category's type.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	accountID uuid.UUID,
	categoryID uuid.UUID,
	description string,
	amount decimal.Decimal,
	date time.Time,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Description: description,
		Amount:      amount,
		Date:        date,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsIncome reports whether the transaction increases the account balance.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction decreases the account balance.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// MatchesCategory reports whether the transaction amount sign is consistent
// with the given category type: positive amounts require an income category,
// negative amounts an expense category. A zero amount matches nothing.
func (t *Transaction) MatchesCategory(categoryType CategoryType) bool {
	switch {
	case t.Amount.IsPositive():
		return categoryType == CategoryTypeIncome
	case t.Amount.IsNegative():
		return categoryType == CategoryTypeExpense
	default:
		return false
	}
}

// TransactionWithRefs represents a transaction with its category and account
// resolved.
type TransactionWithRefs struct {
	Transaction *Transaction
	Category    *Category
	Account     *Account
}

// TransactionListResult represents one page of a filtered transaction listing.
type TransactionListResult struct {
	Transactions []*TransactionWithRefs
	Total        int64
	Limit        int
	Offset       int
}

// TransactionStats represents aggregate figures over a filtered set of
// transactions. Expense figures are absolute values.
type TransactionStats struct {
	TransactionCount int
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	AvgIncome        decimal.Decimal
	AvgExpense       decimal.Decimal
	NetAmount        decimal.Decimal
}
