package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence.
type BudgetRepository interface {
	// Create saves a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by ID scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// FindByIDWithCategory retrieves a budget with its category resolved.
	FindByIDWithCategory(ctx context.Context, id, userID uuid.UUID) (*entity.BudgetWithCategory, error)

	// FindByUser retrieves all of the user's budgets with categories resolved,
	// ordered by start date descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BudgetWithCategory, error)

	// ExistsOverlapping reports whether the user already has a budget for the
	// category whose window overlaps [start, end]. excludeID skips one budget,
	// used when updating.
	ExistsOverlapping(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)

	// Update saves changes to an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget scoped to the owning user.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// FindActiveByCategory returns the user's budget for the category whose
	// window contains the given instant, or an error when none exists.
	FindActiveByCategory(ctx context.Context, userID, categoryID uuid.UUID, at time.Time) (*entity.Budget, error)

	// CountByCategory returns how many budgets reference the category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
