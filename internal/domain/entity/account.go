// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account held by a user.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
	AccountTypeMobile   AccountType = "mobile"
)

// Account represents a bank or mobile-money account in the Budget App system.
// Its balance is a running total adjusted only by the transaction engine.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Bank      string
	Type      AccountType
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(userID uuid.UUID, name, bank string, accountType AccountType, initialBalance decimal.Decimal) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Bank:      bank,
		Type:      accountType,
		Balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsCredit reports whether the account is exempt from the
// non-negative-balance rule.
func (a *Account) IsCredit() bool {
	return a.Type == AccountTypeCredit
}

// AccountSummary represents aggregate information over a user's accounts.
type AccountSummary struct {
	TotalAccounts int
	TotalBalance  decimal.Decimal
	TypeCounts    map[AccountType]int
}

// AccountStats represents transaction statistics for a single account.
type AccountStats struct {
	TransactionCount int
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
}

// BalancePoint represents the account balance at the end of a given day.
type BalancePoint struct {
	Date    time.Time
	Balance decimal.Decimal
}
