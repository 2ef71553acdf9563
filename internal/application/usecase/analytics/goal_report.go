package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/application/usecase/goal"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// GoalReportInput represents the input for the goal report.
type GoalReportInput struct {
	UserID uuid.UUID
}

// GoalRollup aggregates all goals into one line.
type GoalRollup struct {
	TotalGoals      int
	Completed       int
	CompletionRate  decimal.Decimal // percent of goals completed
	OverallProgress decimal.Decimal // total saved over total targeted, percent
	TotalTarget     decimal.Decimal
	TotalSaved      decimal.Decimal
}

// GoalReportOutput represents every goal with progress plus the rollup.
type GoalReportOutput struct {
	Goals  []*goal.GoalView
	Rollup GoalRollup
}

// GoalReportUseCase computes progress for every goal and aggregates them.
type GoalReportUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGoalReportUseCase creates a new GoalReportUseCase instance.
func NewGoalReportUseCase(goalRepo adapter.GoalRepository) *GoalReportUseCase {
	return &GoalReportUseCase{goalRepo: goalRepo}
}

// Execute computes the goal report.
func (uc *GoalReportUseCase) Execute(ctx context.Context, input GoalReportInput) (*GoalReportOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := time.Now().UTC()
	out := &GoalReportOutput{}
	for _, g := range goals {
		view := goal.NewGoalView(g, now)
		out.Goals = append(out.Goals, view)

		out.Rollup.TotalGoals++
		if view.Status == entity.GoalStatusCompleted {
			out.Rollup.Completed++
		}
		out.Rollup.TotalTarget = out.Rollup.TotalTarget.Add(g.TargetAmount)
		out.Rollup.TotalSaved = out.Rollup.TotalSaved.Add(g.CurrentAmount)
	}

	if out.Rollup.TotalGoals > 0 {
		out.Rollup.CompletionRate = decimal.NewFromInt(int64(out.Rollup.Completed)).
			Div(decimal.NewFromInt(int64(out.Rollup.TotalGoals))).Mul(hundred)
	}
	if out.Rollup.TotalTarget.IsPositive() {
		out.Rollup.OverallProgress = out.Rollup.TotalSaved.Div(out.Rollup.TotalTarget).Mul(hundred)
		if out.Rollup.OverallProgress.GreaterThan(hundred) {
			out.Rollup.OverallProgress = hundred
		}
	}

	return out, nil
}
