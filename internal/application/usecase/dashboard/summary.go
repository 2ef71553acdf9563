// Package dashboard contains the aggregated home-screen use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/application/usecase/budget"
	"github.com/AminataF33/budgetappback/internal/application/usecase/goal"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// recentTransactionLimit is how many recent transactions the dashboard shows.
const recentTransactionLimit = 10

// QuickStats are the headline numbers on the dashboard.
type QuickStats struct {
	TotalBalance    decimal.Decimal
	MonthlyIncome   decimal.Decimal // calendar month to date
	MonthlyExpenses decimal.Decimal // calendar month to date
	Savings         decimal.Decimal // combined balance of savings accounts
}

// SummaryInput represents the input for the dashboard summary.
type SummaryInput struct {
	UserID uuid.UUID
}

// SummaryOutput represents everything the dashboard renders in one call.
type SummaryOutput struct {
	User               *entity.User
	Accounts           []*entity.Account
	RecentTransactions []*entity.TransactionWithRefs
	ActiveBudgets      []*budget.EvaluatedBudget
	Goals              []*goal.GoalView
	Stats              QuickStats
}

// SummaryUseCase assembles the dashboard from the other modules' data.
type SummaryUseCase struct {
	userRepo        adapter.UserRepository
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	goalRepo        adapter.GoalRepository
}

// NewSummaryUseCase creates a new SummaryUseCase instance.
func NewSummaryUseCase(
	userRepo adapter.UserRepository,
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.GoalRepository,
) *SummaryUseCase {
	return &SummaryUseCase{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
	}
}

// Execute assembles the dashboard summary.
func (uc *SummaryUseCase) Execute(ctx context.Context, input SummaryInput) (*SummaryOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	recent, err := uc.transactionRepo.FindByFilter(ctx,
		adapter.TransactionFilter{UserID: input.UserID},
		adapter.DefaultTransactionSort(),
		adapter.TransactionPage{Limit: recentTransactionLimit},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	now := time.Now().UTC()
	budgets, err := uc.activeBudgets(ctx, input.UserID, now)
	if err != nil {
		return nil, err
	}

	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	views := make([]*goal.GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, goal.NewGoalView(g, now))
	}

	stats, err := uc.quickStats(ctx, input.UserID, accounts, now)
	if err != nil {
		return nil, err
	}

	return &SummaryOutput{
		User:               user,
		Accounts:           accounts,
		RecentTransactions: recent.Transactions,
		ActiveBudgets:      budgets,
		Goals:              views,
		Stats:              stats,
	}, nil
}

// activeBudgets evaluates every budget whose window contains now.
func (uc *SummaryUseCase) activeBudgets(ctx context.Context, userID uuid.UUID, now time.Time) ([]*budget.EvaluatedBudget, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	var active []*budget.EvaluatedBudget
	for _, bc := range budgets {
		if !bc.Budget.IsActiveAt(now) {
			continue
		}
		spent, err := uc.transactionRepo.SumExpensesByCategory(ctx, userID, bc.Budget.CategoryID, bc.Budget.StartDate, bc.Budget.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate budget %s: %w", bc.Budget.ID, err)
		}
		active = append(active, &budget.EvaluatedBudget{
			Budget:     bc.Budget,
			Category:   bc.Category,
			Evaluation: budget.Evaluate(bc.Budget, spent),
			IsActive:   true,
		})
	}
	return active, nil
}

// quickStats computes the headline numbers. Income and expenses cover the
// current calendar month to date.
func (uc *SummaryUseCase) quickStats(ctx context.Context, userID uuid.UUID, accounts []*entity.Account, now time.Time) (QuickStats, error) {
	stats := QuickStats{}
	for _, account := range accounts {
		stats.TotalBalance = stats.TotalBalance.Add(account.Balance)
		if account.Type == entity.AccountTypeSavings {
			stats.Savings = stats.Savings.Add(account.Balance)
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	transactions, err := uc.transactionRepo.FindWithRefsSince(ctx, userID, &monthStart)
	if err != nil {
		return stats, fmt.Errorf("failed to load monthly transactions: %w", err)
	}
	for _, txn := range transactions {
		if txn.Transaction.IsIncome() {
			stats.MonthlyIncome = stats.MonthlyIncome.Add(txn.Transaction.Amount)
		} else {
			stats.MonthlyExpenses = stats.MonthlyExpenses.Add(txn.Transaction.Amount.Abs())
		}
	}
	return stats, nil
}
