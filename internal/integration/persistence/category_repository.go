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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindAll retrieves all categories, optionally filtered by type.
func (r *categoryRepository) FindAll(ctx context.Context, categoryType *entity.CategoryType) ([]*entity.Category, error) {
	query := r.db.WithContext(ctx).Model(&model.CategoryModel{})
	if categoryType != nil {
		query = query.Where("type = ?", string(*categoryType))
	}

	var categoryModels []model.CategoryModel
	result := query.Order("name ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindByName retrieves a category by its globally unique name.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a category from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// ExistsByName checks if a category with the given name exists.
func (r *categoryRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("name = ?", name)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUsage returns how many transactions and budgets reference the category.
func (r *categoryRepository) GetUsage(ctx context.Context, id uuid.UUID) (*entity.CategoryUsage, error) {
	var transactionCount int64
	if err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("category_id = ?", id).
		Count(&transactionCount).Error; err != nil {
		return nil, err
	}

	var budgetCount int64
	if err := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("category_id = ?", id).
		Count(&budgetCount).Error; err != nil {
		return nil, err
	}

	return &entity.CategoryUsage{
		TransactionCount: int(transactionCount),
		BudgetCount:      int(budgetCount),
	}, nil
}

// GetTransactionStats returns per-user usage statistics for the category.
func (r *categoryRepository) GetTransactionStats(ctx context.Context, id, userID uuid.UUID) (*adapter.CategoryTransactionStats, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("category_id = ? AND user_id = ?", id, userID).
		Order("date ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	stats := &adapter.CategoryTransactionStats{TransactionCount: len(transactionModels)}
	if len(transactionModels) == 0 {
		return stats, nil
	}

	total := decimal.Zero
	for _, tm := range transactionModels {
		total = total.Add(tm.Amount.Abs())
	}
	stats.TotalAmount = total
	stats.AverageAmount = total.Div(decimal.NewFromInt(int64(len(transactionModels))))

	first := transactionModels[0].Date
	last := transactionModels[len(transactionModels)-1].Date
	stats.FirstTransaction = &first
	stats.LastTransaction = &last
	return stats, nil
}

// GetMonthlyStats returns the per-month totals for the category since the
// cutoff, most recent month first. Bucketing happens in memory so the query
// works the same on SQLite and PostgreSQL.
func (r *categoryRepository) GetMonthlyStats(ctx context.Context, id, userID uuid.UUID, since time.Time) ([]adapter.CategoryMonthlyStat, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("category_id = ? AND user_id = ? AND date >= ?", id, userID, since).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	byMonth := make(map[string]*adapter.CategoryMonthlyStat)
	for _, tm := range transactionModels {
		key := tm.Date.Format("2006-01")
		stat, ok := byMonth[key]
		if !ok {
			stat = &adapter.CategoryMonthlyStat{Month: key}
			byMonth[key] = stat
		}
		stat.TransactionCount++
		stat.TotalAmount = stat.TotalAmount.Add(tm.Amount.Abs())
	}

	stats := make([]adapter.CategoryMonthlyStat, 0, len(byMonth))
	for _, stat := range byMonth {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month > stats[j].Month })
	return stats, nil
}
