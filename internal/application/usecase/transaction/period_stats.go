package transaction

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

// GroupBy enumerates the supported period-stats bucketing dimensions.
type GroupBy string

const (
	GroupByCategory GroupBy = "category"
	GroupByAccount  GroupBy = "account"
	GroupByMonth    GroupBy = "month"
	GroupByDay      GroupBy = "day"
)

// PeriodStatsInput represents the input for the period stats query.
type PeriodStatsInput struct {
	UserID  uuid.UUID
	Period  entity.Period
	GroupBy GroupBy
}

// GroupStat represents one bucket of the grouped period stats.
type GroupStat struct {
	Key              string
	Label            string
	TransactionCount int
	Income           decimal.Decimal
	Expenses         decimal.Decimal
}

// PeriodStatsOutput represents the output of the period stats query.
type PeriodStatsOutput struct {
	Period  entity.Period
	GroupBy GroupBy
	Groups  []GroupStat
}

// PeriodStatsUseCase computes grouped income/expense totals over a relative
// window. Grouping happens in memory over the fetched window, which keeps the
// query identical across database engines.
type PeriodStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewPeriodStatsUseCase creates a new PeriodStatsUseCase instance.
func NewPeriodStatsUseCase(transactionRepo adapter.TransactionRepository) *PeriodStatsUseCase {
	return &PeriodStatsUseCase{transactionRepo: transactionRepo}
}

// Execute computes the grouped stats.
func (uc *PeriodStatsUseCase) Execute(ctx context.Context, input PeriodStatsInput) (*PeriodStatsOutput, error) {
	period := input.Period
	if period == "" {
		period = entity.PeriodMonth
	}
	if !entity.ValidPeriod(period) {
		return nil, fmt.Errorf("unknown period %q", period)
	}

	groupBy := input.GroupBy
	if groupBy == "" {
		groupBy = GroupByCategory
	}
	switch groupBy {
	case GroupByCategory, GroupByAccount, GroupByMonth, GroupByDay:
	default:
		return nil, fmt.Errorf("unknown groupBy %q", groupBy)
	}

	since := period.Start(time.Now().UTC())
	transactions, err := uc.transactionRepo.FindWithRefsSince(ctx, input.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load window transactions: %w", err)
	}

	buckets := make(map[string]*GroupStat)
	for _, txn := range transactions {
		key, label := bucketFor(txn, groupBy)
		stat, ok := buckets[key]
		if !ok {
			stat = &GroupStat{Key: key, Label: label}
			buckets[key] = stat
		}
		stat.TransactionCount++
		if txn.Transaction.IsIncome() {
			stat.Income = stat.Income.Add(txn.Transaction.Amount)
		} else {
			stat.Expenses = stat.Expenses.Add(txn.Transaction.Amount.Abs())
		}
	}

	groups := make([]GroupStat, 0, len(buckets))
	for _, stat := range buckets {
		groups = append(groups, *stat)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })

	return &PeriodStatsOutput{
		Period:  period,
		GroupBy: groupBy,
		Groups:  groups,
	}, nil
}

// bucketFor returns the bucket key and display label for a transaction.
func bucketFor(txn *entity.TransactionWithRefs, groupBy GroupBy) (string, string) {
	switch groupBy {
	case GroupByAccount:
		return txn.Transaction.AccountID.String(), txn.Account.Name
	case GroupByMonth:
		key := txn.Transaction.Date.Format("2006-01")
		return key, key
	case GroupByDay:
		key := txn.Transaction.Date.Format("2006-01-02")
		return key, key
	default:
		return txn.Transaction.CategoryID.String(), txn.Category.Name
	}
}
