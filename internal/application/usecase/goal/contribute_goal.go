package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// ContributeGoalInput represents the input for a goal contribution.
type ContributeGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
}

// ContributeGoalOutput represents the output of a goal contribution.
type ContributeGoalOutput struct {
	Goal *GoalView
}

// ContributeGoalUseCase adds money to a goal. The increment happens in the
// database so concurrent contributions never lose updates.
type ContributeGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewContributeGoalUseCase creates a new ContributeGoalUseCase instance.
func NewContributeGoalUseCase(goalRepo adapter.GoalRepository) *ContributeGoalUseCase {
	return &ContributeGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the contribution.
func (uc *ContributeGoalUseCase) Execute(ctx context.Context, input ContributeGoalInput) (*ContributeGoalOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContributionAmount,
			"contribution amount must be positive",
			domainerror.ErrInvalidContributionAmount,
		)
	}

	g, err := uc.goalRepo.AddContribution(ctx, input.GoalID, input.UserID, input.Amount)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to add contribution: %w", err)
	}

	return &ContributeGoalOutput{Goal: NewGoalView(g, time.Now().UTC())}, nil
}
