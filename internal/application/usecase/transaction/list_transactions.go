package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
)

const (
	// DefaultListLimit is the page size applied when none is requested.
	DefaultListLimit = 20
	// MaxListLimit caps the requested page size.
	MaxListLimit = 100
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID       uuid.UUID
	CategoryName string
	AccountID    *uuid.UUID
	Type         *entity.CategoryType
	Search       string
	StartDate    *time.Time
	EndDate      *time.Time
	SortBy       adapter.TransactionSortField
	SortOrder    adapter.SortOrder
	Limit        int
	Offset       int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Total      int64
	Limit      int
	Offset     int
	Page       int
	TotalPages int
	HasMore    bool
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithRefs
	Pagination   PaginationOutput
	Stats        *entity.TransactionStats
}

// ListTransactionsUseCase handles the filtered, sorted, paginated listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute lists transactions along with aggregate stats over the full
// filtered set, ignoring pagination.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	sort := adapter.DefaultTransactionSort()
	if input.SortBy != "" {
		if !adapter.ValidTransactionSortField(input.SortBy) {
			return nil, fmt.Errorf("unknown sort field %q", input.SortBy)
		}
		sort.Field = input.SortBy
	}
	if input.SortOrder == adapter.SortAsc {
		sort.Order = adapter.SortAsc
	}

	limit := input.Limit
	if limit < 1 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	categoryName := input.CategoryName
	if categoryName == "all" {
		categoryName = ""
	}

	filter := adapter.TransactionFilter{
		UserID:       input.UserID,
		CategoryName: categoryName,
		AccountID:    input.AccountID,
		Type:         input.Type,
		Search:       input.Search,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, sort, adapter.TransactionPage{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	stats, err := uc.transactionRepo.GetStats(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute transaction stats: %w", err)
	}

	totalPages := int((result.Total + int64(limit) - 1) / int64(limit))
	page := offset/limit + 1

	return &ListTransactionsOutput{
		Transactions: result.Transactions,
		Pagination: PaginationOutput{
			Total:      result.Total,
			Limit:      limit,
			Offset:     offset,
			Page:       page,
			TotalPages: totalPages,
			HasMore:    int64(offset+limit) < result.Total,
		},
		Stats: stats,
	}, nil
}
