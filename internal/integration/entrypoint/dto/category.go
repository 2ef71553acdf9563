// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/AminataF33/budgetappback/internal/application/usecase/category"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Type  string `json:"type" binding:"required,oneof=expense income"`
	Color string `json:"color,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Type  *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Color *string `json:"color,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryMonthlyStatResponse represents one month of category usage.
type CategoryMonthlyStatResponse struct {
	Month            string `json:"month"`
	TransactionCount int    `json:"transaction_count"`
	TotalAmount      string `json:"total_amount"`
}

// CategoryStatsResponse represents the response for category statistics.
type CategoryStatsResponse struct {
	Category         CategoryResponse              `json:"category"`
	TransactionCount int                           `json:"transaction_count"`
	TotalAmount      string                        `json:"total_amount"`
	AverageAmount    string                        `json:"average_amount"`
	FirstTransaction *time.Time                    `json:"first_transaction,omitempty"`
	LastTransaction  *time.Time                    `json:"last_transaction,omitempty"`
	Monthly          []CategoryMonthlyStatResponse `json:"monthly"`
	CurrentBudget    *BudgetResponse               `json:"current_budget,omitempty"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Type:      string(cat.Type),
		Color:     cat.Color,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}

// ToCategoryStatsResponse converts a CategoryStatsOutput to its DTO.
func ToCategoryStatsResponse(output *category.CategoryStatsOutput) CategoryStatsResponse {
	monthly := make([]CategoryMonthlyStatResponse, len(output.Monthly))
	for i, stat := range output.Monthly {
		monthly[i] = CategoryMonthlyStatResponse{
			Month:            stat.Month,
			TransactionCount: stat.TransactionCount,
			TotalAmount:      stat.TotalAmount.String(),
		}
	}

	response := CategoryStatsResponse{
		Category:         ToCategoryResponse(output.Category),
		TransactionCount: output.Stats.TransactionCount,
		TotalAmount:      output.Stats.TotalAmount.String(),
		AverageAmount:    output.Stats.AverageAmount.String(),
		FirstTransaction: output.Stats.FirstTransaction,
		LastTransaction:  output.Stats.LastTransaction,
		Monthly:          monthly,
	}

	if output.CurrentBudget != nil {
		budget := ToBudgetResponse(output.CurrentBudget)
		response.CurrentBudget = &budget
	}

	return response
}
