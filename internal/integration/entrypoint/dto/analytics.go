// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/AminataF33/budgetappback/internal/application/usecase/analytics"
)

// CategoryBreakdownResponse represents one category's share of a total.
type CategoryBreakdownResponse struct {
	CategoryID       string `json:"category_id"`
	Name             string `json:"name"`
	Color            string `json:"color"`
	Total            string `json:"total"`
	TransactionCount int    `json:"transaction_count"`
	Percentage       string `json:"percentage"`
}

// MonthlyTrendResponse represents one month's income and expense totals.
type MonthlyTrendResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// AccountBreakdownResponse represents one account's share of the total balance.
type AccountBreakdownResponse struct {
	AccountID  string `json:"account_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Balance    string `json:"balance"`
	Percentage string `json:"percentage"`
}

// AnalyticsSummaryResponse represents the analytics summary for one window.
type AnalyticsSummaryResponse struct {
	Period             string                      `json:"period"`
	TotalIncome        string                      `json:"total_income"`
	TotalExpenses      string                      `json:"total_expenses"`
	Net                string                      `json:"net"`
	SavingsRate        string                      `json:"savings_rate"`
	AvgIncome          string                      `json:"avg_income"`
	AvgExpense         string                      `json:"avg_expense"`
	ExpensesByCategory []CategoryBreakdownResponse `json:"expenses_by_category"`
	IncomeByCategory   []CategoryBreakdownResponse `json:"income_by_category"`
	MonthlyTrends      []MonthlyTrendResponse      `json:"monthly_trends"`
	Accounts           []AccountBreakdownResponse  `json:"accounts"`
}

// BudgetRollupResponse aggregates the active budgets into one line.
type BudgetRollupResponse struct {
	TotalBudgeted  string `json:"total_budgeted"`
	TotalSpent     string `json:"total_spent"`
	TotalRemaining string `json:"total_remaining"`
	OverBudget     int    `json:"over_budget"`
	AverageUsage   string `json:"average_usage"`
}

// BudgetReportResponse represents the budget report.
type BudgetReportResponse struct {
	Budgets []EvaluatedBudgetResponse `json:"budgets"`
	Rollup  BudgetRollupResponse      `json:"rollup"`
}

// GoalRollupResponse aggregates all goals into one line.
type GoalRollupResponse struct {
	TotalGoals      int    `json:"total_goals"`
	Completed       int    `json:"completed"`
	CompletionRate  string `json:"completion_rate"`
	OverallProgress string `json:"overall_progress"`
	TotalTarget     string `json:"total_target"`
	TotalSaved      string `json:"total_saved"`
}

// GoalReportResponse represents the goal report.
type GoalReportResponse struct {
	Goals  []GoalResponse     `json:"goals"`
	Rollup GoalRollupResponse `json:"rollup"`
}

// InsightResponse is one rule-derived observation.
type InsightResponse struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// WeekdaySpendingResponse represents total expenses for one day of the week.
type WeekdaySpendingResponse struct {
	Weekday string `json:"weekday"`
	Total   string `json:"total"`
}

// InsightsResponse represents the insights report.
type InsightsResponse struct {
	SpendingTrend       []MonthlyTrendResponse    `json:"spending_trend"`
	TopCategories       []CategoryBreakdownResponse `json:"top_categories"`
	SpendingByWeekday   []WeekdaySpendingResponse `json:"spending_by_weekday"`
	NextMonthPrediction *string                   `json:"next_month_prediction,omitempty"`
	Insights            []InsightResponse         `json:"insights"`
}

func toCategoryBreakdownResponses(breakdowns []analytics.CategoryBreakdown) []CategoryBreakdownResponse {
	responses := make([]CategoryBreakdownResponse, len(breakdowns))
	for i, breakdown := range breakdowns {
		responses[i] = CategoryBreakdownResponse{
			CategoryID:       breakdown.CategoryID.String(),
			Name:             breakdown.Name,
			Color:            breakdown.Color,
			Total:            breakdown.Total.String(),
			TransactionCount: breakdown.TransactionCount,
			Percentage:       breakdown.Percentage.String(),
		}
	}
	return responses
}

func toMonthlyTrendResponses(trends []analytics.MonthlyTrend) []MonthlyTrendResponse {
	responses := make([]MonthlyTrendResponse, len(trends))
	for i, trend := range trends {
		responses[i] = MonthlyTrendResponse{
			Month:    trend.Month,
			Income:   trend.Income.String(),
			Expenses: trend.Expenses.String(),
			Net:      trend.Net.String(),
		}
	}
	return responses
}

// ToAnalyticsSummaryResponse converts a SummaryOutput to its DTO.
func ToAnalyticsSummaryResponse(output *analytics.SummaryOutput) AnalyticsSummaryResponse {
	accounts := make([]AccountBreakdownResponse, len(output.Accounts))
	for i, breakdown := range output.Accounts {
		accounts[i] = AccountBreakdownResponse{
			AccountID:  breakdown.AccountID.String(),
			Name:       breakdown.Name,
			Type:       string(breakdown.Type),
			Balance:    breakdown.Balance.String(),
			Percentage: breakdown.Percentage.String(),
		}
	}

	return AnalyticsSummaryResponse{
		Period:             string(output.Period),
		TotalIncome:        output.TotalIncome.String(),
		TotalExpenses:      output.TotalExpenses.String(),
		Net:                output.Net.String(),
		SavingsRate:        output.SavingsRate.String(),
		AvgIncome:          output.AvgIncome.String(),
		AvgExpense:         output.AvgExpense.String(),
		ExpensesByCategory: toCategoryBreakdownResponses(output.ExpensesByCategory),
		IncomeByCategory:   toCategoryBreakdownResponses(output.IncomeByCategory),
		MonthlyTrends:      toMonthlyTrendResponses(output.MonthlyTrends),
		Accounts:           accounts,
	}
}

// ToBudgetReportResponse converts a BudgetReportOutput to its DTO.
func ToBudgetReportResponse(output *analytics.BudgetReportOutput) BudgetReportResponse {
	budgets := make([]EvaluatedBudgetResponse, len(output.Budgets))
	for i, evaluated := range output.Budgets {
		budgets[i] = ToEvaluatedBudgetResponse(evaluated)
	}

	return BudgetReportResponse{
		Budgets: budgets,
		Rollup: BudgetRollupResponse{
			TotalBudgeted:  output.Rollup.TotalBudgeted.String(),
			TotalSpent:     output.Rollup.TotalSpent.String(),
			TotalRemaining: output.Rollup.TotalRemaining.String(),
			OverBudget:     output.Rollup.OverBudget,
			AverageUsage:   output.Rollup.AverageUsage.String(),
		},
	}
}

// ToGoalReportResponse converts a GoalReportOutput to its DTO.
func ToGoalReportResponse(output *analytics.GoalReportOutput) GoalReportResponse {
	goals := make([]GoalResponse, len(output.Goals))
	for i, view := range output.Goals {
		goals[i] = ToGoalResponse(view)
	}

	return GoalReportResponse{
		Goals: goals,
		Rollup: GoalRollupResponse{
			TotalGoals:      output.Rollup.TotalGoals,
			Completed:       output.Rollup.Completed,
			CompletionRate:  output.Rollup.CompletionRate.String(),
			OverallProgress: output.Rollup.OverallProgress.String(),
			TotalTarget:     output.Rollup.TotalTarget.String(),
			TotalSaved:      output.Rollup.TotalSaved.String(),
		},
	}
}

// ToInsightsResponse converts an InsightsOutput to its DTO.
func ToInsightsResponse(output *analytics.InsightsOutput) InsightsResponse {
	weekdays := make([]WeekdaySpendingResponse, len(output.SpendingByWeekday))
	for i, spending := range output.SpendingByWeekday {
		weekdays[i] = WeekdaySpendingResponse{
			Weekday: spending.Weekday.String(),
			Total:   spending.Total.String(),
		}
	}

	insights := make([]InsightResponse, len(output.Insights))
	for i, insight := range output.Insights {
		insights[i] = InsightResponse{
			Type:     insight.Type,
			Message:  insight.Message,
			Severity: string(insight.Severity),
		}
	}

	response := InsightsResponse{
		SpendingTrend:     toMonthlyTrendResponses(output.SpendingTrend),
		TopCategories:     toCategoryBreakdownResponses(output.TopCategories),
		SpendingByWeekday: weekdays,
		Insights:          insights,
	}

	if output.NextMonthPrediction != nil {
		prediction := output.NextMonthPrediction.String()
		response.NextMonthPrediction = &prediction
	}

	return response
}
