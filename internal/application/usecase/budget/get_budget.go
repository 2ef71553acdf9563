package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// budgetTransactionLimit caps how many window transactions the detail view
// returns.
const budgetTransactionLimit = 100

// GetBudgetInput represents the input for fetching a single budget.
type GetBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// GetBudgetOutput represents the output of fetching a single budget, with the
// expense transactions that fall inside its window.
type GetBudgetOutput struct {
	Budget       *EvaluatedBudget
	Transactions []*entity.TransactionWithRefs
}

// GetBudgetUseCase handles fetching budget details.
type GetBudgetUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute fetches and evaluates the budget.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	bc, err := uc.budgetRepo.FindByIDWithCategory(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	spent, err := uc.transactionRepo.SumExpensesByCategory(ctx, input.UserID, bc.Budget.CategoryID, bc.Budget.StartDate, bc.Budget.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate budget: %w", err)
	}

	expense := entity.CategoryTypeExpense
	filter := adapter.TransactionFilter{
		UserID:     input.UserID,
		CategoryID: &bc.Budget.CategoryID,
		Type:       &expense,
		StartDate:  &bc.Budget.StartDate,
		EndDate:    &bc.Budget.EndDate,
	}
	result, err := uc.transactionRepo.FindByFilter(ctx, filter, adapter.DefaultTransactionSort(), adapter.TransactionPage{Limit: budgetTransactionLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to load budget transactions: %w", err)
	}

	return &GetBudgetOutput{
		Budget: &EvaluatedBudget{
			Budget:     bc.Budget,
			Category:   bc.Category,
			Evaluation: Evaluate(bc.Budget, spent),
			IsActive:   bc.Budget.IsActiveAt(time.Now().UTC()),
		},
		Transactions: result.Transactions,
	}, nil
}
