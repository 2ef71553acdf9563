package persistence

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
	"github.com/AminataF33/budgetappback/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository
// interface. All balance-affecting operations run inside db.Transaction so
// the row mutation and the account adjustment commit or roll back together.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// applyAccountDelta adds delta to the account balance with the funds guard
// inlined in the WHERE clause: a non-credit account never goes below zero.
// Concurrent writers serialize on the account row, so the guard cannot race.
func applyAccountDelta(tx *gorm.DB, accountID, userID uuid.UUID, delta decimal.Decimal) error {
	result := tx.Model(&model.AccountModel{}).
		Where("id = ? AND user_id = ?", accountID, userID).
		Where("type = ? OR balance + ? >= 0", string(entity.AccountTypeCredit), delta).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&model.AccountModel{}).
			Where("id = ? AND user_id = ?", accountID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerror.ErrAccountNotFound
		}
		return domainerror.ErrInsufficientFunds
	}
	return nil
}

// reverseAccountDelta backs an already-applied amount out of the account
// balance. The funds guard covers only applying a transaction; undoing one is
// unconditional, so removing an income whose money was since spent may leave
// the balance negative.
func reverseAccountDelta(tx *gorm.DB, accountID, userID uuid.UUID, amount decimal.Decimal) error {
	result := tx.Model(&model.AccountModel{}).
		Where("id = ? AND user_id = ?", accountID, userID).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// CreateWithBalance inserts the transaction and applies its amount to the
// account balance atomically.
func (r *transactionRepository) CreateWithBalance(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		return applyAccountDelta(tx, transaction.AccountID, transaction.UserID, transaction.Amount)
	})
}

// UpdateWithReconciliation saves the updated row and reconciles balances
// atomically.
func (r *transactionRepository) UpdateWithReconciliation(ctx context.Context, transaction *entity.Transaction, oldAmount decimal.Decimal, oldAccountID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TransactionModel{}).
			Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
			Updates(map[string]any{
				"account_id":  transaction.AccountID,
				"category_id": transaction.CategoryID,
				"description": transaction.Description,
				"amount":      transaction.Amount,
				"date":        transaction.Date,
				"notes":       transaction.Notes,
				"updated_at":  transaction.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}

		// The old effect is backed out unconditionally; only the new amount
		// goes through the funds guard.
		if err := reverseAccountDelta(tx, oldAccountID, transaction.UserID, oldAmount); err != nil {
			return err
		}
		return applyAccountDelta(tx, transaction.AccountID, transaction.UserID, transaction.Amount)
	})
}

// DeleteWithReversal removes the row and reverses its amount atomically. The
// delete is keyed on the row ID, so of two concurrent deletes one becomes a
// no-op before any balance change.
func (r *transactionRepository) DeleteWithReversal(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.TransactionModel{}, "id = ? AND user_id = ?", transaction.ID, transaction.UserID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return reverseAccountDelta(tx, transaction.AccountID, transaction.UserID, transaction.Amount)
	})
}

// FindByID retrieves a transaction by ID scoped to the owning user.
func (r *transactionRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByIDWithRefs retrieves a transaction with its category and account.
func (r *transactionRepository) FindByIDWithRefs(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithRefs, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Account").
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntityWithRefs(), nil
}

// filterQuery translates a TransactionFilter into WHERE clauses. The
// categories join is always present; sorting by account name adds the
// accounts join separately.
func (r *transactionRepository) filterQuery(ctx context.Context, filter adapter.TransactionFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", filter.UserID)

	if filter.CategoryName != "" {
		query = query.Where("categories.name = ?", filter.CategoryName)
	}
	if filter.CategoryID != nil {
		query = query.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.AccountID != nil {
		query = query.Where("transactions.account_id = ?", *filter.AccountID)
	}
	if filter.Type != nil {
		if *filter.Type == entity.CategoryTypeIncome {
			query = query.Where("transactions.amount > 0")
		} else {
			query = query.Where("transactions.amount < 0")
		}
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(transactions.description) LIKE LOWER(?) OR LOWER(transactions.notes) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.StartDate != nil {
		query = query.Where("transactions.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transactions.date <= ?", *filter.EndDate)
	}
	return query
}

// orderClause maps the validated sort spec onto SQL columns, with date
// descending as the stable secondary order.
func orderClause(sortSpec adapter.TransactionSort) string {
	var column string
	switch sortSpec.Field {
	case adapter.SortByAmount:
		column = "transactions.amount"
	case adapter.SortByDescription:
		column = "transactions.description"
	case adapter.SortByCategory:
		column = "categories.name"
	case adapter.SortByAccount:
		column = "accounts.name"
	default:
		column = "transactions.date"
	}

	direction := "DESC"
	if sortSpec.Order == adapter.SortAsc {
		direction = "ASC"
	}

	clause := column + " " + direction
	if sortSpec.Field != adapter.SortByDate {
		clause += ", transactions.date DESC"
	}
	return clause
}

// FindByFilter retrieves one page of transactions matching the filter.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, sortSpec adapter.TransactionSort, page adapter.TransactionPage) (*entity.TransactionListResult, error) {
	query := r.filterQuery(ctx, filter)
	if sortSpec.Field == adapter.SortByAccount {
		query = query.Joins("JOIN accounts ON accounts.id = transactions.account_id")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var transactionModels []model.TransactionModel
	result := query.
		Preload("Category").
		Preload("Account").
		Order(orderClause(sortSpec)).
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithRefs, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithRefs()
	}

	return &entity.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Limit:        page.Limit,
		Offset:       page.Offset,
	}, nil
}

// GetStats computes aggregate figures over all transactions matching the
// filter, ignoring pagination. Sums run in memory to keep the decimal
// arithmetic exact on every engine.
func (r *transactionRepository) GetStats(ctx context.Context, filter adapter.TransactionFilter) (*entity.TransactionStats, error) {
	var amounts []decimal.Decimal
	if err := r.filterQuery(ctx, filter).Pluck("transactions.amount", &amounts).Error; err != nil {
		return nil, err
	}

	stats := &entity.TransactionStats{TransactionCount: len(amounts)}
	var incomeCount, expenseCount int64
	for _, amount := range amounts {
		if amount.IsPositive() {
			stats.TotalIncome = stats.TotalIncome.Add(amount)
			incomeCount++
		} else {
			stats.TotalExpenses = stats.TotalExpenses.Add(amount.Abs())
			expenseCount++
		}
	}
	if incomeCount > 0 {
		stats.AvgIncome = stats.TotalIncome.Div(decimal.NewFromInt(incomeCount))
	}
	if expenseCount > 0 {
		stats.AvgExpense = stats.TotalExpenses.Div(decimal.NewFromInt(expenseCount))
	}
	stats.NetAmount = stats.TotalIncome.Sub(stats.TotalExpenses)
	return stats, nil
}

// FindSimilar returns up to limit transactions ranked by similarity to the
// reference. Candidates are narrowed in SQL; ranking and ties resolve in
// memory.
func (r *transactionRepository) FindSimilar(ctx context.Context, reference *entity.Transaction, tolerance decimal.Decimal, limit int) ([]*entity.TransactionWithRefs, error) {
	var candidateModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Account").
		Where("user_id = ? AND id != ?", reference.UserID, reference.ID).
		Where("description = ? OR category_id = ? OR account_id = ?", reference.Description, reference.CategoryID, reference.AccountID).
		Find(&candidateModels)
	if result.Error != nil {
		return nil, result.Error
	}

	type ranked struct {
		txn  *entity.TransactionWithRefs
		rank int
	}
	var candidates []ranked
	for i := range candidateModels {
		tm := &candidateModels[i]
		var rank int
		switch {
		case tm.Description == reference.Description:
			rank = 1
		case tm.CategoryID == reference.CategoryID && tm.Amount.Sub(reference.Amount).Abs().LessThan(tolerance):
			rank = 2
		case tm.AccountID == reference.AccountID:
			rank = 3
		default:
			continue
		}
		candidates = append(candidates, ranked{txn: tm.ToEntityWithRefs(), rank: rank})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].rank != candidates[j].rank {
			return candidates[i].rank < candidates[j].rank
		}
		return candidates[i].txn.Transaction.Date.After(candidates[j].txn.Transaction.Date)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	similar := make([]*entity.TransactionWithRefs, len(candidates))
	for i, c := range candidates {
		similar[i] = c.txn
	}
	return similar, nil
}

// FindWithRefsSince returns all of the user's transactions dated on or after
// the cutoff, newest first.
func (r *transactionRepository) FindWithRefsSince(ctx context.Context, userID uuid.UUID, since *time.Time) ([]*entity.TransactionWithRefs, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Account").
		Where("user_id = ?", userID)
	if since != nil {
		query = query.Where("date >= ?", *since)
	}

	var transactionModels []model.TransactionModel
	result := query.Order("date DESC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithRefs, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithRefs()
	}
	return transactions, nil
}

// FindRecentByAccount returns the most recent transactions on an account.
func (r *transactionRepository) FindRecentByAccount(ctx context.Context, accountID, userID uuid.UUID, limit int) ([]*entity.TransactionWithRefs, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Account").
		Where("account_id = ? AND user_id = ?", accountID, userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithRefs, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithRefs()
	}
	return transactions, nil
}

// SumExpensesByCategory returns the sum of absolute amounts of expense
// transactions for the category within [start, end].
func (r *transactionRepository) SumExpensesByCategory(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ? AND category_id = ? AND amount < 0 AND date >= ? AND date <= ?", userID, categoryID, start, end).
		Pluck("amount", &amounts)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}

	sum := decimal.Zero
	for _, amount := range amounts {
		sum = sum.Add(amount.Abs())
	}
	return sum, nil
}
