// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// CategoryMonthlyStat represents a category's transaction totals for one month.
type CategoryMonthlyStat struct {
	Month            string // YYYY-MM
	TransactionCount int
	TotalAmount      decimal.Decimal
}

// CategoryTransactionStats represents per-user usage statistics for a category.
type CategoryTransactionStats struct {
	TransactionCount int
	TotalAmount      decimal.Decimal
	AverageAmount    decimal.Decimal
	FirstTransaction *time.Time
	LastTransaction  *time.Time
}

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves all categories, optionally filtered by type, ordered by name.
	FindAll(ctx context.Context, categoryType *entity.CategoryType) ([]*entity.Category, error)

	// FindByName retrieves a category by its globally unique name.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByName checks if a category with the given name exists, excluding
	// the category identified by excludeID when it is not the zero UUID.
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	// GetUsage returns how many transactions and budgets reference the category.
	GetUsage(ctx context.Context, id uuid.UUID) (*entity.CategoryUsage, error)

	// GetTransactionStats returns per-user usage statistics for the category.
	GetTransactionStats(ctx context.Context, id, userID uuid.UUID) (*CategoryTransactionStats, error)

	// GetMonthlyStats returns the per-month totals for the category over the
	// user's transactions since the given cutoff, most recent month first.
	GetMonthlyStats(ctx context.Context, id, userID uuid.UUID, since time.Time) ([]CategoryMonthlyStat, error)
}
