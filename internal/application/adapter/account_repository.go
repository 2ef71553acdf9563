// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
// Balances are never written directly through this interface; they change only
// through the transaction repository's atomic apply/reverse operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by ID scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error)

	// FindByUser retrieves all accounts for a given user, ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// Update updates an account's name, bank and type.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account from the database.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// ExistsByNameAndUser checks whether the user already has an account with
	// the given name, excluding the account identified by excludeID when it is
	// not the zero UUID.
	ExistsByNameAndUser(ctx context.Context, name string, userID, excludeID uuid.UUID) (bool, error)

	// CountTransactions returns how many transactions reference the account.
	CountTransactions(ctx context.Context, id, userID uuid.UUID) (int64, error)

	// GetStats returns transaction statistics for the account.
	GetStats(ctx context.Context, id, userID uuid.UUID) (*entity.AccountStats, error)

	// SumAmountsBefore returns the signed sum of transaction amounts on the
	// account dated strictly before the given cutoff.
	SumAmountsBefore(ctx context.Context, id, userID uuid.UUID, cutoff time.Time) (decimal.Decimal, error)

	// FindAmountsInWindow returns the account's transactions dated on or after
	// the cutoff, ordered by date then creation time ascending.
	FindAmountsInWindow(ctx context.Context, id, userID uuid.UUID, cutoff time.Time) ([]*entity.Transaction, error)
}
