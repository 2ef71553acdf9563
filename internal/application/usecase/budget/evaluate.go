// Package budget contains budget-related use cases.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// BudgetStatus classifies how consumed a budget is.
type BudgetStatus string

const (
	BudgetStatusGood    BudgetStatus = "good"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over"
)

// warningThresholdPct is the consumption percentage above which a budget is
// flagged as warning.
var warningThresholdPct = decimal.NewFromInt(80)

var hundred = decimal.NewFromInt(100)

// Evaluation is the computed consumption state of a budget.
type Evaluation struct {
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage decimal.Decimal
	Status     BudgetStatus
}

// Evaluate derives the consumption state of a budget from the spent total.
// Remaining never goes below zero and the percentage is capped at 100, while
// the status still reflects genuine overruns.
func Evaluate(b *entity.Budget, spent decimal.Decimal) Evaluation {
	remaining := b.Amount.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	percentage := decimal.Zero
	if b.Amount.IsPositive() {
		percentage = spent.Div(b.Amount).Mul(hundred)
	}

	status := BudgetStatusGood
	switch {
	case spent.GreaterThan(b.Amount):
		status = BudgetStatusOver
	case percentage.GreaterThan(warningThresholdPct):
		status = BudgetStatusWarning
	}

	if percentage.GreaterThan(hundred) {
		percentage = hundred
	}

	return Evaluation{
		Spent:      spent,
		Remaining:  remaining,
		Percentage: percentage,
		Status:     status,
	}
}
