// Package goal contains savings-goal-related use cases.
package goal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// GoalView pairs a goal with its derived progress fields, computed once so
// every use case reports them identically.
type GoalView struct {
	Goal          *entity.Goal
	Status        entity.GoalStatus
	Progress      float64
	Remaining     decimal.Decimal
	TimeRemaining *int // days until deadline, nil without one or when completed
}

// NewGoalView derives the view at the given instant.
func NewGoalView(g *entity.Goal, now time.Time) *GoalView {
	return &GoalView{
		Goal:          g,
		Status:        g.Status(now),
		Progress:      g.Progress(),
		Remaining:     g.Remaining(),
		TimeRemaining: g.TimeRemaining(now),
	}
}
