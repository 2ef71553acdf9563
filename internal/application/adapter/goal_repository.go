package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// GoalRepository defines the interface for savings goal persistence.
type GoalRepository interface {
	// Create saves a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by ID scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all of the user's goals ordered by creation date
	// descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update saves changes to an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal scoped to the owning user.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// AddContribution atomically increments the goal's current amount and
	// returns the updated goal.
	AddContribution(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal) (*entity.Goal, error)
}
