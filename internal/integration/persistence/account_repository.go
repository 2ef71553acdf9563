package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
	"github.com/AminataF33/budgetappback/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an account by ID scoped to the owning user.
func (r *accountRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByUser retrieves all accounts for a given user, ordered by name.
func (r *accountRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// Update updates an account's mutable fields. The balance column is excluded;
// it only moves through the transaction repository's guarded increments.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND user_id = ?", account.ID, account.UserID).
		Updates(map[string]any{
			"name":       account.Name,
			"bank":       account.Bank,
			"type":       string(account.Type),
			"updated_at": account.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// Delete removes an account from the database.
func (r *accountRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&model.AccountModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// ExistsByNameAndUser checks whether the user already has an account with the
// given name.
func (r *accountRepository) ExistsByNameAndUser(ctx context.Context, name string, userID, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("name = ? AND user_id = ?", name, userID)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountTransactions returns how many transactions reference the account.
func (r *accountRepository) CountTransactions(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("account_id = ? AND user_id = ?", id, userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetStats returns transaction statistics for the account. Totals are summed
// in memory so the decimal arithmetic stays exact on every engine.
func (r *accountRepository) GetStats(ctx context.Context, id, userID uuid.UUID) (*entity.AccountStats, error) {
	var amounts []decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("account_id = ? AND user_id = ?", id, userID).
		Pluck("amount", &amounts)
	if result.Error != nil {
		return nil, result.Error
	}

	stats := &entity.AccountStats{TransactionCount: len(amounts)}
	for _, amount := range amounts {
		if amount.IsPositive() {
			stats.TotalIncome = stats.TotalIncome.Add(amount)
		} else {
			stats.TotalExpenses = stats.TotalExpenses.Add(amount.Abs())
		}
	}
	return stats, nil
}

// SumAmountsBefore returns the signed sum of amounts dated strictly before
// the cutoff.
func (r *accountRepository) SumAmountsBefore(ctx context.Context, id, userID uuid.UUID, cutoff time.Time) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("account_id = ? AND user_id = ? AND date < ?", id, userID, cutoff).
		Pluck("amount", &amounts)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}

	sum := decimal.Zero
	for _, amount := range amounts {
		sum = sum.Add(amount)
	}
	return sum, nil
}

// FindAmountsInWindow returns the account's transactions dated on or after
// the cutoff. A zero cutoff returns the whole history.
func (r *accountRepository) FindAmountsInWindow(ctx context.Context, id, userID uuid.UUID, cutoff time.Time) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("account_id = ? AND user_id = ?", id, userID)
	if !cutoff.IsZero() {
		query = query.Where("date >= ?", cutoff)
	}

	var transactionModels []model.TransactionModel
	result := query.Order("date ASC, created_at ASC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}
