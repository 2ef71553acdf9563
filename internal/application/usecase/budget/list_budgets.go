package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets. Period narrows
// to that label, ActiveOnly to budgets whose window contains now.
type ListBudgetsInput struct {
	UserID     uuid.UUID
	Period     *entity.BudgetPeriod
	ActiveOnly bool
}

// EvaluatedBudget pairs a budget with its computed consumption state.
type EvaluatedBudget struct {
	Budget     *entity.Budget
	Category   *entity.Category
	Evaluation Evaluation
	IsActive   bool
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*EvaluatedBudget
}

// ListBudgetsUseCase lists a user's budgets with each one evaluated against
// the expense transactions inside its window.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists and evaluates the budgets.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	now := time.Now().UTC()
	out := make([]*EvaluatedBudget, 0, len(budgets))
	for _, bc := range budgets {
		if input.Period != nil && bc.Budget.Period != *input.Period {
			continue
		}
		active := bc.Budget.IsActiveAt(now)
		if input.ActiveOnly && !active {
			continue
		}

		spent, err := uc.transactionRepo.SumExpensesByCategory(ctx, input.UserID, bc.Budget.CategoryID, bc.Budget.StartDate, bc.Budget.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate budget %s: %w", bc.Budget.ID, err)
		}

		out = append(out, &EvaluatedBudget{
			Budget:     bc.Budget,
			Category:   bc.Category,
			Evaluation: Evaluate(bc.Budget, spent),
			IsActive:   active,
		})
	}

	return &ListBudgetsOutput{Budgets: out}, nil
}
