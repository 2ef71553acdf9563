package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// UpdateGoalInput represents the input for goal updates. Nil fields are left
// unchanged; ClearDeadline removes an existing deadline.
type UpdateGoalInput struct {
	UserID        uuid.UUID
	GoalID        uuid.UUID
	Title         *string
	Description   *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
	ClearDeadline bool
	Category      *string
}

// UpdateGoalOutput represents the output of a goal update.
type UpdateGoalOutput struct {
	Goal *GoalView
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if input.Title != nil {
		g.Title = *input.Title
	}
	if input.Description != nil {
		g.Description = *input.Description
	}
	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be positive",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		g.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		if input.CurrentAmount.IsNegative() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"current amount must not be negative",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		g.CurrentAmount = *input.CurrentAmount
	}
	if input.ClearDeadline {
		g.Deadline = nil
	} else if input.Deadline != nil {
		g.Deadline = input.Deadline
	}
	if input.Category != nil {
		g.Category = *input.Category
	}

	g.UpdatedAt = time.Now().UTC()
	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: NewGoalView(g, time.Now().UTC())}, nil
}
