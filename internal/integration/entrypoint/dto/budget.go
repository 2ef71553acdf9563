// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/AminataF33/budgetappback/internal/application/usecase/budget"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
	Period     string `json:"period" binding:"required,oneof=weekly monthly yearly"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	CategoryID *string `json:"category_id,omitempty"`
	Amount     *string `json:"amount,omitempty"`
	Period     *string `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CategoryID string    `json:"category_id"`
	Amount     string    `json:"amount"`
	Period     string    `json:"period"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BudgetEvaluationResponse represents the consumption state of a budget.
type BudgetEvaluationResponse struct {
	Spent      string `json:"spent"`
	Remaining  string `json:"remaining"`
	Percentage string `json:"percentage"`
	Status     string `json:"status"`
}

// EvaluatedBudgetResponse represents a budget with its evaluation in API responses.
type EvaluatedBudgetResponse struct {
	Budget     BudgetResponse           `json:"budget"`
	Category   *CategoryResponse        `json:"category,omitempty"`
	Evaluation BudgetEvaluationResponse `json:"evaluation"`
	IsActive   bool                     `json:"is_active"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []EvaluatedBudgetResponse `json:"budgets"`
}

// BudgetDetailResponse represents the response for fetching a single budget.
type BudgetDetailResponse struct {
	Budget       EvaluatedBudgetResponse `json:"budget"`
	Transactions []TransactionResponse   `json:"transactions"`
}

// BudgetMutationResponse represents the response for budget create and update.
type BudgetMutationResponse struct {
	Budget   BudgetResponse    `json:"budget"`
	Category *CategoryResponse `json:"category,omitempty"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID.String(),
		UserID:     b.UserID.String(),
		CategoryID: b.CategoryID.String(),
		Amount:     b.Amount.String(),
		Period:     string(b.Period),
		StartDate:  b.StartDate.Format("2006-01-02"),
		EndDate:    b.EndDate.Format("2006-01-02"),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// ToEvaluatedBudgetResponse converts an EvaluatedBudget to its DTO.
func ToEvaluatedBudgetResponse(evaluated *budget.EvaluatedBudget) EvaluatedBudgetResponse {
	response := EvaluatedBudgetResponse{
		Budget: ToBudgetResponse(evaluated.Budget),
		Evaluation: BudgetEvaluationResponse{
			Spent:      evaluated.Evaluation.Spent.String(),
			Remaining:  evaluated.Evaluation.Remaining.String(),
			Percentage: evaluated.Evaluation.Percentage.String(),
			Status:     string(evaluated.Evaluation.Status),
		},
		IsActive: evaluated.IsActive,
	}

	if evaluated.Category != nil {
		cat := ToCategoryResponse(evaluated.Category)
		response.Category = &cat
	}

	return response
}

// ToBudgetListResponse converts a ListBudgetsOutput to BudgetListResponse.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]EvaluatedBudgetResponse, len(output.Budgets))
	for i, evaluated := range output.Budgets {
		budgets[i] = ToEvaluatedBudgetResponse(evaluated)
	}
	return BudgetListResponse{Budgets: budgets}
}

// ToBudgetDetailResponse converts a GetBudgetOutput to BudgetDetailResponse.
func ToBudgetDetailResponse(output *budget.GetBudgetOutput) BudgetDetailResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return BudgetDetailResponse{
		Budget:       ToEvaluatedBudgetResponse(output.Budget),
		Transactions: transactions,
	}
}
