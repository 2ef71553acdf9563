package transaction

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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Notes       string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	refValidator
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		refValidator:    refValidator{accountRepo: accountRepo, categoryRepo: categoryRepo},
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation. The row insert and the account
// balance change commit or roll back together.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateText(input.Description, input.Notes); err != nil {
		return nil, err
	}

	account, category, err := uc.validateRefs(ctx, input.UserID, input.AccountID, input.CategoryID, input.Amount, decimal.Zero)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	txn := entity.NewTransaction(input.UserID, account.ID, category.ID, input.Description, input.Amount, date, input.Notes)
	if err := uc.transactionRepo.CreateWithBalance(ctx, txn); err != nil {
		return nil, err
	}

	account.Balance = account.Balance.Add(txn.Amount)

	return &CreateTransactionOutput{
		Transaction: &entity.TransactionWithRefs{
			Transaction: txn,
			Category:    category,
			Account:     account,
		},
	}, nil
}

// validateText enforces the description and notes length limits.
func validateText(description, notes string) error {
	if description == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"description is required",
			nil,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}
	if len(notes) > MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			nil,
		)
	}
	return nil
}
