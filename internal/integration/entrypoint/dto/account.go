// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/AminataF33/budgetappback/internal/application/usecase/account"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Bank           string `json:"bank" binding:"required,min=1,max=100"`
	Type           string `json:"type" binding:"required,oneof=checking savings credit mobile"`
	InitialBalance string `json:"initial_balance,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Bank *string `json:"bank,omitempty" binding:"omitempty,min=1,max=100"`
	Type *string `json:"type,omitempty" binding:"omitempty,oneof=checking savings credit mobile"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Bank      string    `json:"bank"`
	Type      string    `json:"type"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountSummaryResponse represents aggregate account information.
type AccountSummaryResponse struct {
	TotalAccounts int            `json:"total_accounts"`
	TotalBalance  string         `json:"total_balance"`
	TypeCounts    map[string]int `json:"type_counts"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse      `json:"accounts"`
	Summary  AccountSummaryResponse `json:"summary"`
}

// AccountStatsResponse represents transaction statistics for an account.
type AccountStatsResponse struct {
	TransactionCount int    `json:"transaction_count"`
	TotalIncome      string `json:"total_income"`
	TotalExpenses    string `json:"total_expenses"`
}

// AccountDetailResponse represents the response for fetching a single account.
type AccountDetailResponse struct {
	Account            AccountResponse       `json:"account"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	Stats              AccountStatsResponse  `json:"stats"`
}

// BalancePointResponse represents the balance at the end of one day.
type BalancePointResponse struct {
	Date    string `json:"date"`
	Balance string `json:"balance"`
}

// BalanceHistoryResponse represents the response for the balance history query.
type BalanceHistoryResponse struct {
	AccountID string                 `json:"account_id"`
	Period    string                 `json:"period"`
	Points    []BalancePointResponse `json:"points"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(acc *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        acc.ID.String(),
		UserID:    acc.UserID.String(),
		Name:      acc.Name,
		Bank:      acc.Bank,
		Type:      string(acc.Type),
		Balance:   acc.Balance.String(),
		CreatedAt: acc.CreatedAt,
		UpdatedAt: acc.UpdatedAt,
	}
}

// ToAccountListResponse converts a ListAccountsOutput to AccountListResponse.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, acc := range output.Accounts {
		accounts[i] = ToAccountResponse(acc)
	}

	typeCounts := make(map[string]int, len(output.Summary.TypeCounts))
	for accountType, count := range output.Summary.TypeCounts {
		typeCounts[string(accountType)] = count
	}

	return AccountListResponse{
		Accounts: accounts,
		Summary: AccountSummaryResponse{
			TotalAccounts: output.Summary.TotalAccounts,
			TotalBalance:  output.Summary.TotalBalance.String(),
			TypeCounts:    typeCounts,
		},
	}
}

// ToAccountDetailResponse converts a GetAccountOutput to AccountDetailResponse.
func ToAccountDetailResponse(output *account.GetAccountOutput) AccountDetailResponse {
	recent := make([]TransactionResponse, len(output.RecentTransactions))
	for i, txn := range output.RecentTransactions {
		recent[i] = ToTransactionResponse(txn)
	}

	return AccountDetailResponse{
		Account:            ToAccountResponse(output.Account),
		RecentTransactions: recent,
		Stats: AccountStatsResponse{
			TransactionCount: output.Stats.TransactionCount,
			TotalIncome:      output.Stats.TotalIncome.String(),
			TotalExpenses:    output.Stats.TotalExpenses.String(),
		},
	}
}

// ToBalanceHistoryResponse converts a BalanceHistoryOutput to its DTO.
func ToBalanceHistoryResponse(output *account.BalanceHistoryOutput) BalanceHistoryResponse {
	points := make([]BalancePointResponse, len(output.Points))
	for i, point := range output.Points {
		points[i] = BalancePointResponse{
			Date:    point.Date.Format("2006-01-02"),
			Balance: point.Balance.String(),
		}
	}

	return BalanceHistoryResponse{
		AccountID: output.Account.ID.String(),
		Period:    string(output.Period),
		Points:    points,
	}
}
