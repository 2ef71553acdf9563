// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/AminataF33/budgetappback/internal/application/usecase/dashboard"
)

// QuickStatsResponse represents the headline numbers on the dashboard.
type QuickStatsResponse struct {
	TotalBalance    string `json:"total_balance"`
	MonthlyIncome   string `json:"monthly_income"`
	MonthlyExpenses string `json:"monthly_expenses"`
	Savings         string `json:"savings"`
}

// DashboardSummaryResponse represents everything the dashboard renders.
type DashboardSummaryResponse struct {
	User               UserResponse              `json:"user"`
	Accounts           []AccountResponse         `json:"accounts"`
	RecentTransactions []TransactionResponse     `json:"recent_transactions"`
	ActiveBudgets      []EvaluatedBudgetResponse `json:"active_budgets"`
	Goals              []GoalResponse            `json:"goals"`
	Stats              QuickStatsResponse        `json:"stats"`
}

// DashboardStatsResponse represents the dashboard counters for one window.
type DashboardStatsResponse struct {
	Period           string `json:"period"`
	TransactionCount int    `json:"transaction_count"`
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	Net              string `json:"net"`
	AccountCount     int    `json:"account_count"`
	ActiveBudgets    int    `json:"active_budgets"`
	ActiveGoals      int    `json:"active_goals"`
	CompletedGoals   int    `json:"completed_goals"`
}

// ToDashboardSummaryResponse converts a dashboard SummaryOutput to its DTO.
func ToDashboardSummaryResponse(output *dashboard.SummaryOutput) DashboardSummaryResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, acc := range output.Accounts {
		accounts[i] = ToAccountResponse(acc)
	}

	recent := make([]TransactionResponse, len(output.RecentTransactions))
	for i, txn := range output.RecentTransactions {
		recent[i] = ToTransactionResponse(txn)
	}

	budgets := make([]EvaluatedBudgetResponse, len(output.ActiveBudgets))
	for i, evaluated := range output.ActiveBudgets {
		budgets[i] = ToEvaluatedBudgetResponse(evaluated)
	}

	goals := make([]GoalResponse, len(output.Goals))
	for i, view := range output.Goals {
		goals[i] = ToGoalResponse(view)
	}

	return DashboardSummaryResponse{
		User:               ToUserResponse(output.User),
		Accounts:           accounts,
		RecentTransactions: recent,
		ActiveBudgets:      budgets,
		Goals:              goals,
		Stats: QuickStatsResponse{
			TotalBalance:    output.Stats.TotalBalance.String(),
			MonthlyIncome:   output.Stats.MonthlyIncome.String(),
			MonthlyExpenses: output.Stats.MonthlyExpenses.String(),
			Savings:         output.Stats.Savings.String(),
		},
	}
}

// ToDashboardStatsResponse converts a dashboard StatsOutput to its DTO.
func ToDashboardStatsResponse(output *dashboard.StatsOutput) DashboardStatsResponse {
	return DashboardStatsResponse{
		Period:           string(output.Period),
		TransactionCount: output.TransactionCount,
		Income:           output.Income.String(),
		Expenses:         output.Expenses.String(),
		Net:              output.Net.String(),
		AccountCount:     output.AccountCount,
		ActiveBudgets:    output.ActiveBudgets,
		ActiveGoals:      output.ActiveGoals,
		CompletedGoals:   output.CompletedGoals,
	}
}
