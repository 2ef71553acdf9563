package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget updates. Nil fields are
// left unchanged.
type UpdateBudgetInput struct {
	UserID     uuid.UUID
	BudgetID   uuid.UUID
	CategoryID *uuid.UUID
	Amount     *decimal.Decimal
	Period     *entity.BudgetPeriod
	StartDate  *time.Time
	EndDate    *time.Time
}

// UpdateBudgetOutput represents the output of a budget update.
type UpdateBudgetOutput struct {
	Budget   *entity.Budget
	Category *entity.Category
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget update, re-running the full validation and the
// overlap check against every other budget of the pair.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	if input.CategoryID != nil {
		budget.CategoryID = *input.CategoryID
	}
	if input.Amount != nil {
		budget.Amount = *input.Amount
	}
	if input.Period != nil {
		budget.Period = *input.Period
	}
	if input.StartDate != nil {
		budget.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		budget.EndDate = *input.EndDate
	}

	category, err := validateBudgetFields(ctx, uc.categoryRepo, budget.CategoryID, budget.Amount, budget.Period, budget.StartDate, budget.EndDate)
	if err != nil {
		return nil, err
	}

	overlaps, err := uc.budgetRepo.ExistsOverlapping(ctx, input.UserID, budget.CategoryID, budget.StartDate, budget.EndDate, &budget.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget overlap: %w", err)
	}
	if overlaps {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeOverlappingBudget,
			fmt.Sprintf("a budget for category %q already covers part of this window", category.Name),
			domainerror.ErrOverlappingBudget,
		)
	}

	budget.UpdatedAt = time.Now().UTC()
	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget, Category: category}, nil
}
