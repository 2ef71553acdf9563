package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID   uuid.UUID
	Status   *entity.GoalStatus
	Category string
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalView
}

// ListGoalsUseCase handles listing a user's goals.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{goalRepo: goalRepo}
}

// Execute lists the goals with derived progress, filtered by status and
// category label. Status is derived, so the filter applies after the load.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := time.Now().UTC()
	views := make([]*GoalView, 0, len(goals))
	for _, g := range goals {
		view := NewGoalView(g, now)
		if input.Status != nil && view.Status != *input.Status {
			continue
		}
		if input.Category != "" && g.Category != input.Category {
			continue
		}
		views = append(views, view)
	}

	return &ListGoalsOutput{Goals: views}, nil
}
