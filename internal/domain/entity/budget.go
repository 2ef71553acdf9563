// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod is a descriptive label for the budget window. It does not
// drive any computation; the window itself is [StartDate, EndDate].
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending limit for an expense category over a date
// window. Budgets for the same (user, category) pair may not overlap.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Period     BudgetPeriod
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(
	userID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	period BudgetPeriod,
	startDate, endDate time.Time,
) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Period:     period,
		StartDate:  startDate,
		EndDate:    endDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Overlaps reports whether the [start, end] window intersects this budget's
// window. Both windows are inclusive on both ends.
func (b *Budget) Overlaps(start, end time.Time) bool {
	return !start.After(b.EndDate) && !end.Before(b.StartDate)
}

// IsActiveAt reports whether the given instant falls inside the budget window.
func (b *Budget) IsActiveAt(t time.Time) bool {
	return !t.Before(b.StartDate) && !t.After(b.EndDate)
}

// BudgetWithCategory represents a budget with its category resolved.
type BudgetWithCategory struct {
	Budget   *Budget
	Category *Category
}
