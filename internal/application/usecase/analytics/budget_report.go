package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/application/usecase/budget"
)

// BudgetReportInput represents the input for the budget report.
type BudgetReportInput struct {
	UserID uuid.UUID
}

// BudgetRollup aggregates the active budgets into one line.
type BudgetRollup struct {
	TotalBudgeted  decimal.Decimal
	TotalSpent     decimal.Decimal
	TotalRemaining decimal.Decimal
	OverBudget     int
	AverageUsage   decimal.Decimal // mean consumption percentage
}

// BudgetReportOutput represents the evaluated active budgets plus the rollup.
type BudgetReportOutput struct {
	Budgets []*budget.EvaluatedBudget
	Rollup  BudgetRollup
}

// BudgetReportUseCase evaluates every active budget and aggregates them.
type BudgetReportUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewBudgetReportUseCase creates a new BudgetReportUseCase instance.
func NewBudgetReportUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *BudgetReportUseCase {
	return &BudgetReportUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the budget report.
func (uc *BudgetReportUseCase) Execute(ctx context.Context, input BudgetReportInput) (*BudgetReportOutput, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	now := time.Now().UTC()
	out := &BudgetReportOutput{}
	usageSum := decimal.Zero
	for _, bc := range budgets {
		if !bc.Budget.IsActiveAt(now) {
			continue
		}

		spent, err := uc.transactionRepo.SumExpensesByCategory(ctx, input.UserID, bc.Budget.CategoryID, bc.Budget.StartDate, bc.Budget.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate budget %s: %w", bc.Budget.ID, err)
		}

		evaluation := budget.Evaluate(bc.Budget, spent)
		out.Budgets = append(out.Budgets, &budget.EvaluatedBudget{
			Budget:     bc.Budget,
			Category:   bc.Category,
			Evaluation: evaluation,
			IsActive:   true,
		})

		out.Rollup.TotalBudgeted = out.Rollup.TotalBudgeted.Add(bc.Budget.Amount)
		out.Rollup.TotalSpent = out.Rollup.TotalSpent.Add(spent)
		out.Rollup.TotalRemaining = out.Rollup.TotalRemaining.Add(evaluation.Remaining)
		if evaluation.Status == budget.BudgetStatusOver {
			out.Rollup.OverBudget++
		}
		usageSum = usageSum.Add(evaluation.Percentage)
	}

	if len(out.Budgets) > 0 {
		out.Rollup.AverageUsage = usageSum.Div(decimal.NewFromInt(int64(len(out.Budgets))))
	}

	return out, nil
}
