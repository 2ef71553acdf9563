package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// MonthlyBreakdownMonths is how far back the monthly breakdown reaches.
const MonthlyBreakdownMonths = 6

// CategoryStatsInput represents the input for the category stats query.
type CategoryStatsInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// CategoryStatsOutput represents per-user usage statistics for a category.
type CategoryStatsOutput struct {
	Category      *entity.Category
	Stats         *adapter.CategoryTransactionStats
	Monthly       []adapter.CategoryMonthlyStat
	CurrentBudget *entity.Budget
}

// CategoryStatsUseCase computes how one user uses a category.
type CategoryStatsUseCase struct {
	categoryRepo adapter.CategoryRepository
	budgetRepo   adapter.BudgetRepository
}

// NewCategoryStatsUseCase creates a new CategoryStatsUseCase instance.
func NewCategoryStatsUseCase(
	categoryRepo adapter.CategoryRepository,
	budgetRepo adapter.BudgetRepository,
) *CategoryStatsUseCase {
	return &CategoryStatsUseCase{
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
	}
}

// Execute computes the category statistics.
func (uc *CategoryStatsUseCase) Execute(ctx context.Context, input CategoryStatsInput) (*CategoryStatsOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	stats, err := uc.categoryRepo.GetTransactionStats(ctx, category.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category stats: %w", err)
	}

	now := time.Now().UTC()
	since := now.AddDate(0, -MonthlyBreakdownMonths, 0)
	monthly, err := uc.categoryRepo.GetMonthlyStats(ctx, category.ID, input.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly stats: %w", err)
	}

	// A missing budget is a normal state, not an error.
	budget, err := uc.budgetRepo.FindActiveByCategory(ctx, input.UserID, category.ID, now)
	if err != nil {
		budget = nil
	}

	return &CategoryStatsOutput{
		Category:      category,
		Stats:         stats,
		Monthly:       monthly,
		CurrentBudget: budget,
	}, nil
}
