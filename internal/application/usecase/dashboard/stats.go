package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

// StatsInput represents the input for the dashboard counters.
type StatsInput struct {
	UserID uuid.UUID
	Period entity.Period
}

// StatsOutput represents the dashboard counters for one window.
type StatsOutput struct {
	Period           entity.Period
	TransactionCount int
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	Net              decimal.Decimal
	AccountCount     int
	ActiveBudgets    int
	ActiveGoals      int
	CompletedGoals   int
}

// StatsUseCase computes the quick counters shown on the dashboard header.
type StatsUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	goalRepo        adapter.GoalRepository
}

// NewStatsUseCase creates a new StatsUseCase instance.
func NewStatsUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.GoalRepository,
) *StatsUseCase {
	return &StatsUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
	}
}

// Execute computes the counters.
func (uc *StatsUseCase) Execute(ctx context.Context, input StatsInput) (*StatsOutput, error) {
	period := input.Period
	if period == "" {
		period = entity.PeriodMonth
	}
	if !entity.ValidPeriod(period) {
		return nil, fmt.Errorf("unknown period %q", period)
	}

	now := time.Now().UTC()
	out := &StatsOutput{Period: period}

	transactions, err := uc.transactionRepo.FindWithRefsSince(ctx, input.UserID, period.Start(now))
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	out.TransactionCount = len(transactions)
	for _, txn := range transactions {
		if txn.Transaction.IsIncome() {
			out.Income = out.Income.Add(txn.Transaction.Amount)
		} else {
			out.Expenses = out.Expenses.Add(txn.Transaction.Amount.Abs())
		}
	}
	out.Net = out.Income.Sub(out.Expenses)

	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	out.AccountCount = len(accounts)

	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	for _, bc := range budgets {
		if bc.Budget.IsActiveAt(now) {
			out.ActiveBudgets++
		}
	}

	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	for _, g := range goals {
		switch g.Status(now) {
		case entity.GoalStatusCompleted:
			out.CompletedGoals++
		case entity.GoalStatusActive:
			out.ActiveGoals++
		}
	}

	return out, nil
}
