// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the derived lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusExpired   GoalStatus = "expired"
)

// Goal represents a savings goal in the Budget App system. CurrentAmount is
// mutated additively by contributions; status and progress are derived.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Category      string // free-text label, not a category reference
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(
	userID uuid.UUID,
	title, description string,
	targetAmount, currentAmount decimal.Decimal,
	deadline *time.Time,
	category string,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
		Category:      category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsCompleted reports whether the goal target has been reached.
func (g *Goal) IsCompleted() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Status derives the goal status at the given instant.
func (g *Goal) Status(now time.Time) GoalStatus {
	if g.IsCompleted() {
		return GoalStatusCompleted
	}
	if g.Deadline != nil && g.Deadline.Before(now) {
		return GoalStatusExpired
	}
	return GoalStatusActive
}

// Progress returns the completion percentage, capped at 100. A zero target
// yields zero progress.
func (g *Goal) Progress() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	progress, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return math.Min(100, progress)
}

// Remaining returns the amount still needed to reach the target, never
// negative.
func (g *Goal) Remaining() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// TimeRemaining returns the number of whole days until the deadline, rounded
// up. It returns nil when the goal has no deadline or is already completed;
// the value is negative once the deadline has passed.
func (g *Goal) TimeRemaining(now time.Time) *int {
	if g.Deadline == nil || g.IsCompleted() {
		return nil
	}
	days := int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
	return &days
}
