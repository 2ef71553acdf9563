// Package analytics contains the read-only reporting use cases. Every figure
// is recomputed from the transaction history on demand; nothing is cached or
// persisted. Aggregation happens in memory over fetched windows so the
// queries stay identical across database engines.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// TrendMonths is how many months the monthly trend series covers.
const TrendMonths = 6

var hundred = decimal.NewFromInt(100)

// CategoryBreakdown represents one category's share of income or expenses.
type CategoryBreakdown struct {
	CategoryID       uuid.UUID
	Name             string
	Color            string
	Total            decimal.Decimal
	TransactionCount int
	Percentage       decimal.Decimal
}

// MonthlyTrend represents one month's income and expense totals.
type MonthlyTrend struct {
	Month    string // YYYY-MM
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// AccountBreakdown represents one account's share of the total balance.
type AccountBreakdown struct {
	AccountID  uuid.UUID
	Name       string
	Type       entity.AccountType
	Balance    decimal.Decimal
	Percentage decimal.Decimal
}

// SummaryInput represents the input for the analytics summary.
type SummaryInput struct {
	UserID uuid.UUID
	Period entity.Period
}

// SummaryOutput represents the analytics summary for one window.
type SummaryOutput struct {
	Period             entity.Period
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	Net                decimal.Decimal
	SavingsRate        decimal.Decimal // percent of income kept, 0 when no income
	AvgIncome          decimal.Decimal
	AvgExpense         decimal.Decimal
	ExpensesByCategory []CategoryBreakdown
	IncomeByCategory   []CategoryBreakdown
	MonthlyTrends      []MonthlyTrend
	Accounts           []AccountBreakdown
}

// SummaryUseCase computes income/expense totals, category breakdowns, the
// six-month trend and the account split for a relative window.
type SummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewSummaryUseCase creates a new SummaryUseCase instance.
func NewSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *SummaryUseCase {
	return &SummaryUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute computes the summary.
func (uc *SummaryUseCase) Execute(ctx context.Context, input SummaryInput) (*SummaryOutput, error) {
	period := input.Period
	if period == "" {
		period = entity.PeriodMonth
	}
	if !entity.ValidPeriod(period) {
		return nil, fmt.Errorf("unknown period %q", period)
	}

	now := time.Now().UTC()

	// One fetch covers both the summary window and the six-month trend.
	trendStart := now.AddDate(0, -TrendMonths, 0)
	fetchSince := period.Start(now)
	if fetchSince != nil && trendStart.Before(*fetchSince) {
		fetchSince = &trendStart
	}
	transactions, err := uc.transactionRepo.FindWithRefsSince(ctx, input.UserID, fetchSince)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	windowStart := period.Start(now)
	var window []*entity.TransactionWithRefs
	for _, txn := range transactions {
		if windowStart == nil || !txn.Transaction.Date.Before(*windowStart) {
			window = append(window, txn)
		}
	}

	out := &SummaryOutput{Period: period}
	var incomeCount, expenseCount int
	for _, txn := range window {
		if txn.Transaction.IsIncome() {
			out.TotalIncome = out.TotalIncome.Add(txn.Transaction.Amount)
			incomeCount++
		} else {
			out.TotalExpenses = out.TotalExpenses.Add(txn.Transaction.Amount.Abs())
			expenseCount++
		}
	}
	out.Net = out.TotalIncome.Sub(out.TotalExpenses)
	if out.TotalIncome.IsPositive() {
		out.SavingsRate = out.Net.Div(out.TotalIncome).Mul(hundred)
	}
	if incomeCount > 0 {
		out.AvgIncome = out.TotalIncome.Div(decimal.NewFromInt(int64(incomeCount)))
	}
	if expenseCount > 0 {
		out.AvgExpense = out.TotalExpenses.Div(decimal.NewFromInt(int64(expenseCount)))
	}

	out.ExpensesByCategory = breakdownByCategory(window, false, out.TotalExpenses)
	out.IncomeByCategory = breakdownByCategory(window, true, out.TotalIncome)
	out.MonthlyTrends = monthlyTrends(transactions, trendStart, now)

	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	out.Accounts = accountBreakdown(accounts)

	return out, nil
}

// breakdownByCategory groups one side of the ledger by category, largest
// total first.
func breakdownByCategory(transactions []*entity.TransactionWithRefs, income bool, total decimal.Decimal) []CategoryBreakdown {
	byCategory := make(map[uuid.UUID]*CategoryBreakdown)
	for _, txn := range transactions {
		if txn.Transaction.IsIncome() != income {
			continue
		}
		entry, ok := byCategory[txn.Category.ID]
		if !ok {
			entry = &CategoryBreakdown{
				CategoryID: txn.Category.ID,
				Name:       txn.Category.Name,
				Color:      txn.Category.Color,
			}
			byCategory[txn.Category.ID] = entry
		}
		entry.Total = entry.Total.Add(txn.Transaction.Amount.Abs())
		entry.TransactionCount++
	}

	result := make([]CategoryBreakdown, 0, len(byCategory))
	for _, entry := range byCategory {
		if total.IsPositive() {
			entry.Percentage = entry.Total.Div(total).Mul(hundred)
		}
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Total.GreaterThan(result[j].Total)
	})
	return result
}

// monthlyTrends produces one entry per calendar month from start to now,
// including empty months.
func monthlyTrends(transactions []*entity.TransactionWithRefs, start, now time.Time) []MonthlyTrend {
	byMonth := make(map[string]*MonthlyTrend)
	var months []string
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(now) {
		key := cursor.Format("2006-01")
		byMonth[key] = &MonthlyTrend{Month: key}
		months = append(months, key)
		cursor = cursor.AddDate(0, 1, 0)
	}

	for _, txn := range transactions {
		entry, ok := byMonth[txn.Transaction.Date.Format("2006-01")]
		if !ok {
			continue
		}
		if txn.Transaction.IsIncome() {
			entry.Income = entry.Income.Add(txn.Transaction.Amount)
		} else {
			entry.Expenses = entry.Expenses.Add(txn.Transaction.Amount.Abs())
		}
	}

	result := make([]MonthlyTrend, 0, len(months))
	for _, key := range months {
		entry := byMonth[key]
		entry.Net = entry.Income.Sub(entry.Expenses)
		result = append(result, *entry)
	}
	return result
}

// accountBreakdown computes each account's share of the combined balance.
// Shares are only meaningful when the combined balance is positive.
func accountBreakdown(accounts []*entity.Account) []AccountBreakdown {
	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}

	result := make([]AccountBreakdown, 0, len(accounts))
	for _, account := range accounts {
		entry := AccountBreakdown{
			AccountID: account.ID,
			Name:      account.Name,
			Type:      account.Type,
			Balance:   account.Balance,
		}
		if total.IsPositive() {
			entry.Percentage = account.Balance.Div(total).Mul(hundred)
		}
		result = append(result, entry)
	}
	return result
}
