// Package budget contains budget-related use cases.
package budget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

func TestEvaluate(t *testing.T) {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	newBudget := func(amount int64) *entity.Budget {
		return entity.NewBudget(uuid.New(), uuid.New(), decimal.NewFromInt(amount), entity.BudgetPeriodMonthly, start, end)
	}

	tests := []struct {
		name           string
		budgetAmount   int64
		spent          int64
		wantRemaining  int64
		wantPercentage int64
		wantStatus     BudgetStatus
	}{
		{name: "untouched budget is good", budgetAmount: 500, spent: 0, wantRemaining: 500, wantPercentage: 0, wantStatus: BudgetStatusGood},
		{name: "half consumed is good", budgetAmount: 500, spent: 250, wantRemaining: 250, wantPercentage: 50, wantStatus: BudgetStatusGood},
		{name: "exactly at threshold stays good", budgetAmount: 500, spent: 400, wantRemaining: 100, wantPercentage: 80, wantStatus: BudgetStatusGood},
		{name: "beyond threshold is warning", budgetAmount: 500, spent: 450, wantRemaining: 50, wantPercentage: 90, wantStatus: BudgetStatusWarning},
		{name: "fully consumed is warning", budgetAmount: 500, spent: 500, wantRemaining: 0, wantPercentage: 100, wantStatus: BudgetStatusWarning},
		{name: "overrun is over with capped percentage", budgetAmount: 500, spent: 750, wantRemaining: 0, wantPercentage: 100, wantStatus: BudgetStatusOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := Evaluate(newBudget(tt.budgetAmount), decimal.NewFromInt(tt.spent))

			if !eval.Spent.Equal(decimal.NewFromInt(tt.spent)) {
				t.Errorf("Spent = %v, want %v", eval.Spent, tt.spent)
			}
			if !eval.Remaining.Equal(decimal.NewFromInt(tt.wantRemaining)) {
				t.Errorf("Remaining = %v, want %v", eval.Remaining, tt.wantRemaining)
			}
			if !eval.Percentage.Equal(decimal.NewFromInt(tt.wantPercentage)) {
				t.Errorf("Percentage = %v, want %v", eval.Percentage, tt.wantPercentage)
			}
			if eval.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", eval.Status, tt.wantStatus)
			}
		})
	}

	t.Run("zero amount budget reports zero percentage", func(t *testing.T) {
		eval := Evaluate(newBudget(0), decimal.NewFromInt(100))

		if !eval.Percentage.Equal(decimal.Zero) {
			t.Errorf("Percentage = %v, want 0", eval.Percentage)
		}
		if eval.Status != BudgetStatusOver {
			t.Errorf("Status = %v, want %v", eval.Status, BudgetStatusOver)
		}
	})
}
