// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/AminataF33/budgetappback/internal/application/usecase/transaction"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// The sign of the amount determines the transaction type: positive for
// income, negative for expenses.
type CreateTransactionRequest struct {
	AccountID   string  `json:"account_id" binding:"required"`
	CategoryID  string  `json:"category_id" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	Date        *string `json:"date,omitempty"`
	Notes       string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	AccountID   *string `json:"account_id,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *string `json:"amount,omitempty"`
	Date        *string `json:"date,omitempty"`
	Notes       *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// DuplicateTransactionRequest represents the optional request body for
// transaction duplication. Omitted fields keep the defaults: today's date
// and the original description with a "(copy)" suffix.
type DuplicateTransactionRequest struct {
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
}

// TransactionCategoryResponse represents category information in transaction responses.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// TransactionAccountResponse represents account information in transaction responses.
type TransactionAccountResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Bank string `json:"bank"`
	Type string `json:"type"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	AccountID   string                       `json:"account_id"`
	CategoryID  string                       `json:"category_id"`
	Description string                       `json:"description"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	Date        string                       `json:"date"`
	Notes       string                       `json:"notes"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	Account     *TransactionAccountResponse  `json:"account,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// PaginationResponse represents pagination information in API responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// TransactionStatsResponse represents aggregated totals in API responses.
type TransactionStatsResponse struct {
	TransactionCount int    `json:"transaction_count"`
	TotalIncome      string `json:"total_income"`
	TotalExpenses    string `json:"total_expenses"`
	AvgIncome        string `json:"avg_income"`
	AvgExpense       string `json:"avg_expense"`
	NetAmount        string `json:"net_amount"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse    `json:"transactions"`
	Pagination   PaginationResponse       `json:"pagination"`
	Stats        TransactionStatsResponse `json:"stats"`
}

// SimilarTransactionsResponse represents the response for the similarity query.
type SimilarTransactionsResponse struct {
	ReferenceID string                `json:"reference_id"`
	Similar     []TransactionResponse `json:"similar"`
}

// GroupStatResponse represents one bucket of grouped period stats.
type GroupStatResponse struct {
	Key              string `json:"key"`
	Label            string `json:"label"`
	TransactionCount int    `json:"transaction_count"`
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
}

// PeriodStatsResponse represents the response for the period stats query.
type PeriodStatsResponse struct {
	Period  string              `json:"period"`
	GroupBy string              `json:"group_by"`
	Groups  []GroupStatResponse `json:"groups"`
}

func transactionType(txn *entity.Transaction) string {
	if txn.IsIncome() {
		return string(entity.CategoryTypeIncome)
	}
	return string(entity.CategoryTypeExpense)
}

// ToTransactionResponse converts a transaction with refs to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.TransactionWithRefs) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.Transaction.ID.String(),
		UserID:      txn.Transaction.UserID.String(),
		AccountID:   txn.Transaction.AccountID.String(),
		CategoryID:  txn.Transaction.CategoryID.String(),
		Description: txn.Transaction.Description,
		Amount:      txn.Transaction.Amount.String(),
		Type:        transactionType(txn.Transaction),
		Date:        txn.Transaction.Date.Format("2006-01-02"),
		Notes:       txn.Transaction.Notes,
		CreatedAt:   txn.Transaction.CreatedAt,
		UpdatedAt:   txn.Transaction.UpdatedAt,
	}

	if txn.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    txn.Category.ID.String(),
			Name:  txn.Category.Name,
			Type:  string(txn.Category.Type),
			Color: txn.Category.Color,
		}
	}

	if txn.Account != nil {
		response.Account = &TransactionAccountResponse{
			ID:   txn.Account.ID.String(),
			Name: txn.Account.Name,
			Bank: txn.Account.Bank,
			Type: string(txn.Account.Type),
		}
	}

	return response
}

// ToTransactionStatsResponse converts transaction stats to their DTO.
func ToTransactionStatsResponse(stats *entity.TransactionStats) TransactionStatsResponse {
	return TransactionStatsResponse{
		TransactionCount: stats.TransactionCount,
		TotalIncome:      stats.TotalIncome.String(),
		TotalExpenses:    stats.TotalExpenses.String(),
		AvgIncome:        stats.AvgIncome.String(),
		AvgExpense:       stats.AvgExpense.String(),
		NetAmount:        stats.NetAmount.String(),
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Offset:     output.Pagination.Offset,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
			HasMore:    output.Pagination.HasMore,
		},
		Stats: ToTransactionStatsResponse(output.Stats),
	}
}

// ToSimilarTransactionsResponse converts a SimilarTransactionsOutput to its DTO.
func ToSimilarTransactionsResponse(output *transaction.SimilarTransactionsOutput) SimilarTransactionsResponse {
	similar := make([]TransactionResponse, len(output.Similar))
	for i, txn := range output.Similar {
		similar[i] = ToTransactionResponse(txn)
	}

	return SimilarTransactionsResponse{
		ReferenceID: output.Reference.ID.String(),
		Similar:     similar,
	}
}

// ToPeriodStatsResponse converts a PeriodStatsOutput to its DTO.
func ToPeriodStatsResponse(output *transaction.PeriodStatsOutput) PeriodStatsResponse {
	groups := make([]GroupStatResponse, len(output.Groups))
	for i, group := range output.Groups {
		groups[i] = GroupStatResponse{
			Key:              group.Key,
			Label:            group.Label,
			TransactionCount: group.TransactionCount,
			Income:           group.Income.String(),
			Expenses:         group.Expenses.String(),
		}
	}

	return PeriodStatsResponse{
		Period:  string(output.Period),
		GroupBy: string(output.GroupBy),
		Groups:  groups,
	}
}
