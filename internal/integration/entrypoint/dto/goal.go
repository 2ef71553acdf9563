// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/AminataF33/budgetappback/internal/application/usecase/goal"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=100"`
	Description   string  `json:"description,omitempty"`
	TargetAmount  string  `json:"target_amount" binding:"required"`
	CurrentAmount string  `json:"current_amount,omitempty"`
	Deadline      *string `json:"deadline,omitempty"`
	Category      string  `json:"category,omitempty" binding:"omitempty,max=50"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title         *string `json:"title,omitempty" binding:"omitempty,min=1,max=100"`
	Description   *string `json:"description,omitempty"`
	TargetAmount  *string `json:"target_amount,omitempty"`
	CurrentAmount *string `json:"current_amount,omitempty"`
	Deadline      *string `json:"deadline,omitempty"`
	ClearDeadline bool    `json:"clear_deadline,omitempty"`
	Category      *string `json:"category,omitempty" binding:"omitempty,max=50"`
}

// ContributeGoalRequest represents the request body for a goal contribution.
type ContributeGoalRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// GoalResponse represents a single goal with derived progress in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	Deadline      *string   `json:"deadline,omitempty"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	Progress      float64   `json:"progress"`
	Remaining     string    `json:"remaining"`
	TimeRemaining *int      `json:"time_remaining,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a GoalView to a GoalResponse DTO.
func ToGoalResponse(view *goal.GoalView) GoalResponse {
	response := GoalResponse{
		ID:            view.Goal.ID.String(),
		UserID:        view.Goal.UserID.String(),
		Title:         view.Goal.Title,
		Description:   view.Goal.Description,
		TargetAmount:  view.Goal.TargetAmount.String(),
		CurrentAmount: view.Goal.CurrentAmount.String(),
		Category:      view.Goal.Category,
		Status:        string(view.Status),
		Progress:      view.Progress,
		Remaining:     view.Remaining.String(),
		TimeRemaining: view.TimeRemaining,
		CreatedAt:     view.Goal.CreatedAt,
		UpdatedAt:     view.Goal.UpdatedAt,
	}

	if view.Goal.Deadline != nil {
		deadline := view.Goal.Deadline.Format("2006-01-02")
		response.Deadline = &deadline
	}

	return response
}

// ToGoalListResponse converts a ListGoalsOutput to GoalListResponse.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalResponse, len(output.Goals))
	for i, view := range output.Goals {
		goals[i] = ToGoalResponse(view)
	}
	return GoalListResponse{Goals: goals}
}
