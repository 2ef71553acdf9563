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

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Period     entity.BudgetPeriod
	StartDate  time.Time
	EndDate    time.Time
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget   *entity.Budget
	Category *entity.Category
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	category, err := validateBudgetFields(ctx, uc.categoryRepo, input.CategoryID, input.Amount, input.Period, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	overlaps, err := uc.budgetRepo.ExistsOverlapping(ctx, input.UserID, input.CategoryID, input.StartDate, input.EndDate, nil)
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

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.Amount, input.Period, input.StartDate, input.EndDate)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget, Category: category}, nil
}

// validateBudgetFields checks the shared creation/update constraints: the
// category must exist and be expense-typed, the amount positive, the period a
// known label and the window non-reversed.
func validateBudgetFields(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	period entity.BudgetPeriod,
	startDate, endDate time.Time,
) (*entity.Category, error) {
	if !amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be positive",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	switch period {
	case entity.BudgetPeriodWeekly, entity.BudgetPeriodMonthly, entity.BudgetPeriodYearly:
	default:
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			fmt.Sprintf("unknown budget period %q", period),
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	if !endDate.After(startDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"budget end date must be after start date",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}
	if category.Type != entity.CategoryTypeExpense {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotExpense,
			fmt.Sprintf("category %q is not an expense category", category.Name),
			domainerror.ErrBudgetCategoryNotExpense,
		)
	}

	return category, nil
}
