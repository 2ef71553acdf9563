package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// DefaultSimilarLimit is the default number of similar transactions returned.
const DefaultSimilarLimit = 5

// amountTolerancePct is the relative tolerance for the amount-proximity rank.
var amountTolerancePct = decimal.NewFromFloat(0.10)

// SimilarTransactionsInput represents the input for the similarity query.
type SimilarTransactionsInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Limit         int
}

// SimilarTransactionsOutput represents the output of the similarity query.
type SimilarTransactionsOutput struct {
	Reference *entity.Transaction
	Similar   []*entity.TransactionWithRefs
}

// SimilarTransactionsUseCase finds transactions resembling a reference one:
// exact description matches first, then same-category transactions whose
// amount is within 10% of the reference, then same-account transactions.
type SimilarTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSimilarTransactionsUseCase creates a new SimilarTransactionsUseCase instance.
func NewSimilarTransactionsUseCase(transactionRepo adapter.TransactionRepository) *SimilarTransactionsUseCase {
	return &SimilarTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute runs the similarity query.
func (uc *SimilarTransactionsUseCase) Execute(ctx context.Context, input SimilarTransactionsInput) (*SimilarTransactionsOutput, error) {
	reference, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	limit := input.Limit
	if limit < 1 {
		limit = DefaultSimilarLimit
	}

	tolerance := reference.Amount.Abs().Mul(amountTolerancePct)
	similar, err := uc.transactionRepo.FindSimilar(ctx, reference, tolerance, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find similar transactions: %w", err)
	}

	return &SimilarTransactionsOutput{
		Reference: reference,
		Similar:   similar,
	}, nil
}
