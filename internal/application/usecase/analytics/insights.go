package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/application/usecase/budget"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

const (
	// SpendingTrendMonths is how far back the spending trend reaches.
	SpendingTrendMonths = 12
	// TopCategoryMonths is the window for the top-category ranking.
	TopCategoryMonths = 3
	// TopCategoryCount is how many expense categories the ranking returns.
	TopCategoryCount = 5
	// PredictionMonths is how many trailing months feed the prediction.
	PredictionMonths = 3
	// GoalDueSoonDays is the deadline horizon for the goal insight.
	GoalDueSoonDays = 30
)

// InsightSeverity grades how urgent an insight is.
type InsightSeverity string

const (
	SeverityInfo    InsightSeverity = "info"
	SeverityWarning InsightSeverity = "warning"
)

// Insight is one rule-derived observation about the user's finances.
type Insight struct {
	Type     string
	Message  string
	Severity InsightSeverity
}

// WeekdaySpending represents total expenses for one day of the week.
type WeekdaySpending struct {
	Weekday time.Weekday
	Total   decimal.Decimal
}

// InsightsInput represents the input for the insights report.
type InsightsInput struct {
	UserID uuid.UUID
}

// InsightsOutput represents the insights report.
type InsightsOutput struct {
	SpendingTrend       []MonthlyTrend // 12 months, oldest first
	TopCategories       []CategoryBreakdown
	SpendingByWeekday   []WeekdaySpending // Sunday first
	NextMonthPrediction *decimal.Decimal  // nil with under three months of history
	Insights            []Insight
}

// InsightsUseCase derives longer-range observations: the yearly spending
// trend, dominant categories, weekday habits, a naive next-month projection
// and a few rule-based flags.
type InsightsUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	goalRepo        adapter.GoalRepository
}

// NewInsightsUseCase creates a new InsightsUseCase instance.
func NewInsightsUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.GoalRepository,
) *InsightsUseCase {
	return &InsightsUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
	}
}

// Execute computes the insights report.
func (uc *InsightsUseCase) Execute(ctx context.Context, input InsightsInput) (*InsightsOutput, error) {
	now := time.Now().UTC()
	trendStart := now.AddDate(0, -SpendingTrendMonths, 0)
	transactions, err := uc.transactionRepo.FindWithRefsSince(ctx, input.UserID, &trendStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	out := &InsightsOutput{
		SpendingTrend: monthlyTrends(transactions, trendStart, now),
	}

	recentStart := now.AddDate(0, -TopCategoryMonths, 0)
	var recent []*entity.TransactionWithRefs
	recentExpenses := decimal.Zero
	for _, txn := range transactions {
		if txn.Transaction.Date.Before(recentStart) {
			continue
		}
		recent = append(recent, txn)
		if txn.Transaction.IsExpense() {
			recentExpenses = recentExpenses.Add(txn.Transaction.Amount.Abs())
		}
	}

	top := breakdownByCategory(recent, false, recentExpenses)
	if len(top) > TopCategoryCount {
		top = top[:TopCategoryCount]
	}
	out.TopCategories = top
	out.SpendingByWeekday = weekdaySpending(recent)
	out.NextMonthPrediction = predictNextMonth(out.SpendingTrend)

	insights, err := uc.ruleInsights(ctx, input.UserID, now)
	if err != nil {
		return nil, err
	}
	out.Insights = insights

	return out, nil
}

// weekdaySpending sums expenses per day of the week, Sunday first.
func weekdaySpending(transactions []*entity.TransactionWithRefs) []WeekdaySpending {
	totals := make([]decimal.Decimal, 7)
	for _, txn := range transactions {
		if txn.Transaction.IsExpense() {
			day := txn.Transaction.Date.Weekday()
			totals[day] = totals[day].Add(txn.Transaction.Amount.Abs())
		}
	}

	result := make([]WeekdaySpending, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		result[day] = WeekdaySpending{Weekday: day, Total: totals[day]}
	}
	return result
}

// predictNextMonth projects next month's expenses as the mean of the last
// three monthly totals. With fewer than three months of spending history the
// projection would be noise, so nil is returned.
func predictNextMonth(trend []MonthlyTrend) *decimal.Decimal {
	nonEmpty := 0
	for _, month := range trend {
		if !month.Expenses.IsZero() || !month.Income.IsZero() {
			nonEmpty++
		}
	}
	if nonEmpty < PredictionMonths || len(trend) < PredictionMonths {
		return nil
	}

	sum := decimal.Zero
	for _, month := range trend[len(trend)-PredictionMonths:] {
		sum = sum.Add(month.Expenses)
	}
	prediction := sum.Div(decimal.NewFromInt(PredictionMonths))
	return &prediction
}

// ruleInsights derives the flag list from the current budget and goal state.
func (uc *InsightsUseCase) ruleInsights(ctx context.Context, userID uuid.UUID, now time.Time) ([]Insight, error) {
	insights := []Insight{}

	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	overBudget := 0
	for _, bc := range budgets {
		if !bc.Budget.IsActiveAt(now) {
			continue
		}
		spent, err := uc.transactionRepo.SumExpensesByCategory(ctx, userID, bc.Budget.CategoryID, bc.Budget.StartDate, bc.Budget.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate budget %s: %w", bc.Budget.ID, err)
		}
		if budget.Evaluate(bc.Budget, spent).Status == budget.BudgetStatusOver {
			overBudget++
		}
	}
	if overBudget > 0 {
		insights = append(insights, Insight{
			Type:     "over_budget",
			Message:  fmt.Sprintf("%d budget(s) exceeded this period", overBudget),
			Severity: SeverityWarning,
		})
	}

	goals, err := uc.goalRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	horizon := now.AddDate(0, 0, GoalDueSoonDays)
	dueSoon := 0
	for _, g := range goals {
		if g.Status(now) != entity.GoalStatusActive || g.Deadline == nil {
			continue
		}
		if !g.Deadline.After(horizon) {
			dueSoon++
		}
	}
	if dueSoon > 0 {
		insights = append(insights, Insight{
			Type:     "goal_deadline",
			Message:  fmt.Sprintf("%d goal(s) due within %d days", dueSoon, GoalDueSoonDays),
			Severity: SeverityInfo,
		})
	}

	return insights, nil
}
