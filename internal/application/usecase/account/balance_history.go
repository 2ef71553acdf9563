package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// BalanceHistoryInput represents the input for the balance history query.
type BalanceHistoryInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Period    entity.Period
}

// BalanceHistoryOutput represents the output of the balance history query.
type BalanceHistoryOutput struct {
	Account *entity.Account
	Period  entity.Period
	Points  []entity.BalancePoint
}

// BalanceHistoryUseCase reconstructs an account's day-by-day balance over a
// relative window. The starting balance is derived from the current one by
// subtracting every amount inside the window, so the series always ends at the
// live balance.
type BalanceHistoryUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewBalanceHistoryUseCase creates a new BalanceHistoryUseCase instance.
func NewBalanceHistoryUseCase(accountRepo adapter.AccountRepository) *BalanceHistoryUseCase {
	return &BalanceHistoryUseCase{accountRepo: accountRepo}
}

// Execute computes the balance history.
func (uc *BalanceHistoryUseCase) Execute(ctx context.Context, input BalanceHistoryInput) (*BalanceHistoryOutput, error) {
	period := input.Period
	if period == "" {
		period = entity.PeriodMonth
	}
	if !entity.ValidPeriod(period) {
		return nil, fmt.Errorf("unknown period %q", period)
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID, input.UserID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	now := time.Now().UTC()
	var cutoff time.Time
	if start := period.Start(now); start != nil {
		cutoff = *start
	}

	transactions, err := uc.accountRepo.FindAmountsInWindow(ctx, account.ID, input.UserID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load window transactions: %w", err)
	}

	points := buildBalanceSeries(account.Balance, transactions, cutoff, now)

	return &BalanceHistoryOutput{
		Account: account,
		Period:  period,
		Points:  points,
	}, nil
}

// buildBalanceSeries walks one day at a time from the window start to now,
// applying each day's net amount to a running balance. The running balance
// starts at current minus the sum of all window amounts.
func buildBalanceSeries(current decimal.Decimal, transactions []*entity.Transaction, cutoff, now time.Time) []entity.BalancePoint {
	windowSum := decimal.Zero
	byDay := make(map[string]decimal.Decimal)
	var earliest time.Time
	for _, txn := range transactions {
		windowSum = windowSum.Add(txn.Amount)
		day := txn.Date.Format("2006-01-02")
		byDay[day] = byDay[day].Add(txn.Amount)
		if earliest.IsZero() || txn.Date.Before(earliest) {
			earliest = txn.Date
		}
	}

	start := cutoff
	if start.IsZero() {
		// Unbounded window: begin at the first transaction, or today when
		// the account has none.
		start = earliest
		if start.IsZero() {
			start = now
		}
	}
	start = truncateDay(start)
	end := truncateDay(now)

	balance := current.Sub(windowSum)
	var points []entity.BalancePoint
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		balance = balance.Add(byDay[day.Format("2006-01-02")])
		points = append(points, entity.BalancePoint{Date: day, Balance: balance})
	}
	return points
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
