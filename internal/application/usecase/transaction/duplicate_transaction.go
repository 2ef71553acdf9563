package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// DuplicateTransactionInput represents the input for duplicating a transaction.
// Date and Description override the defaults (today, original + " (copy)")
// when set.
type DuplicateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Date          *time.Time
	Description   *string
}

// DuplicateTransactionOutput represents the output of duplicating a transaction.
type DuplicateTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// DuplicateTransactionUseCase copies an existing transaction into a new one,
// dated today by default.
type DuplicateTransactionUseCase struct {
	refValidator
	transactionRepo adapter.TransactionRepository
}

// NewDuplicateTransactionUseCase creates a new DuplicateTransactionUseCase instance.
func NewDuplicateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *DuplicateTransactionUseCase {
	return &DuplicateTransactionUseCase{
		refValidator:    refValidator{accountRepo: accountRepo, categoryRepo: categoryRepo},
		transactionRepo: transactionRepo,
	}
}

// Execute duplicates the transaction. Unless overridden, the copy gets
// today's date and a "(copy)" suffix, and it goes through the same funds
// check as a fresh creation.
func (uc *DuplicateTransactionUseCase) Execute(ctx context.Context, input DuplicateTransactionInput) (*DuplicateTransactionOutput, error) {
	original, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	account, category, err := uc.validateRefs(ctx, input.UserID, original.AccountID, original.CategoryID, original.Amount, decimal.Zero)
	if err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}
	description := original.Description + " (copy)"
	if input.Description != nil {
		description = *input.Description
	}
	if err := validateText(description, original.Notes); err != nil {
		return nil, err
	}

	copyTxn := entity.NewTransaction(
		input.UserID,
		original.AccountID,
		original.CategoryID,
		description,
		original.Amount,
		date,
		original.Notes,
	)
	if err := uc.transactionRepo.CreateWithBalance(ctx, copyTxn); err != nil {
		return nil, err
	}

	account.Balance = account.Balance.Add(copyTxn.Amount)

	return &DuplicateTransactionOutput{
		Transaction: &entity.TransactionWithRefs{
			Transaction: copyTxn,
			Category:    category,
			Account:     account,
		},
	}, nil
}
