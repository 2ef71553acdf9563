// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// TransactionSortField enumerates the fields a transaction listing may be
// sorted by. Anything outside this set is rejected before a query is built.
type TransactionSortField string

const (
	SortByDate        TransactionSortField = "date"
	SortByAmount      TransactionSortField = "amount"
	SortByDescription TransactionSortField = "description"
	SortByCategory    TransactionSortField = "category"
	SortByAccount     TransactionSortField = "account"
)

// SortOrder enumerates the allowed sort directions.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// TransactionSort is a validated sort specification. The zero value is not
// valid; use DefaultTransactionSort for the date-descending default.
type TransactionSort struct {
	Field TransactionSortField
	Order SortOrder
}

// DefaultTransactionSort returns the default sort: date descending.
func DefaultTransactionSort() TransactionSort {
	return TransactionSort{Field: SortByDate, Order: SortDesc}
}

// ValidTransactionSortField reports whether the field is sortable.
func ValidTransactionSortField(f TransactionSortField) bool {
	switch f {
	case SortByDate, SortByAmount, SortByDescription, SortByCategory, SortByAccount:
		return true
	}
	return false
}

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID       uuid.UUID
	CategoryName string // matches the category's name; empty or "all" means no filter
	CategoryID   *uuid.UUID
	AccountID    *uuid.UUID
	Type         *entity.CategoryType // income filters amount > 0, expense amount < 0
	Search       string               // substring match over description and notes
	StartDate    *time.Time
	EndDate      *time.Time
}

// TransactionPage defines limit/offset pagination options.
type TransactionPage struct {
	Limit  int
	Offset int
}

// TransactionRepository defines the interface for transaction persistence.
// Every balance-affecting operation runs the row mutation and the account
// balance adjustment inside a single database transaction.
type TransactionRepository interface {
	// CreateWithBalance inserts the transaction and applies its amount to the
	// account balance atomically. The balance update is a guarded increment:
	// it fails with ErrInsufficientFunds when it would drive a non-credit
	// account's balance below zero.
	CreateWithBalance(ctx context.Context, transaction *entity.Transaction) error

	// UpdateWithReconciliation saves the updated row and reconciles balances
	// atomically: when the account is unchanged it applies (new − old) to it,
	// otherwise it reverses the old amount from the previous account and
	// applies the new amount to the new one.
	UpdateWithReconciliation(ctx context.Context, transaction *entity.Transaction, oldAmount decimal.Decimal, oldAccountID uuid.UUID) error

	// DeleteWithReversal removes the row and reverses its amount from the
	// account balance atomically.
	DeleteWithReversal(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by ID scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithRefs retrieves a transaction with its category and account.
	FindByIDWithRefs(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithRefs, error)

	// FindByFilter retrieves one page of transactions matching the filter.
	FindByFilter(ctx context.Context, filter TransactionFilter, sort TransactionSort, page TransactionPage) (*entity.TransactionListResult, error)

	// GetStats computes aggregate figures over all transactions matching the
	// filter, ignoring pagination.
	GetStats(ctx context.Context, filter TransactionFilter) (*entity.TransactionStats, error)

	// FindSimilar returns up to limit transactions ranked by similarity to the
	// reference: exact description match first, then same category with an
	// amount within the given absolute tolerance, then same account. Ties are
	// broken by most recent date.
	FindSimilar(ctx context.Context, reference *entity.Transaction, tolerance decimal.Decimal, limit int) ([]*entity.TransactionWithRefs, error)

	// FindWithRefsSince returns all of the user's transactions dated on or
	// after the cutoff with category and account resolved. A nil cutoff
	// returns the full history.
	FindWithRefsSince(ctx context.Context, userID uuid.UUID, since *time.Time) ([]*entity.TransactionWithRefs, error)

	// FindRecentByAccount returns the most recent transactions on an account.
	FindRecentByAccount(ctx context.Context, accountID, userID uuid.UUID, limit int) ([]*entity.TransactionWithRefs, error)

	// SumExpensesByCategory returns the sum of absolute amounts of expense
	// transactions for the category within [start, end].
	SumExpensesByCategory(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
}
