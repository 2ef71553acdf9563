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

// UpdateTransactionInput represents the input for transaction updates. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	AccountID     *uuid.UUID
	CategoryID    *uuid.UUID
	Description   *string
	Amount        *decimal.Decimal
	Date          *time.Time
	Notes         *string
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// UpdateTransactionUseCase handles transaction update logic, including the
// balance reconciliation when the amount or the account changes.
type UpdateTransactionUseCase struct {
	refValidator
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		refValidator:    refValidator{accountRepo: accountRepo, categoryRepo: categoryRepo},
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update. When the account is unchanged the
// balance receives the difference between the new and old amounts; when it
// changes, the old amount is reversed from the previous account and the new
// amount applied to the new one. Row and balances move in one database
// transaction.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	oldAmount := txn.Amount
	oldAccountID := txn.AccountID

	if input.Description != nil {
		txn.Description = *input.Description
	}
	if input.Notes != nil {
		txn.Notes = *input.Notes
	}
	if err := validateText(txn.Description, txn.Notes); err != nil {
		return nil, err
	}

	if input.AccountID != nil {
		txn.AccountID = *input.AccountID
	}
	if input.CategoryID != nil {
		txn.CategoryID = *input.CategoryID
	}
	if input.Amount != nil {
		txn.Amount = *input.Amount
	}
	if input.Date != nil {
		txn.Date = *input.Date
	}

	// On a same-account update the old amount is backed out before the funds
	// check, as the stored balance still includes it.
	offset := decimal.Zero
	if txn.AccountID == oldAccountID {
		offset = oldAmount.Neg()
	}

	account, category, err := uc.validateRefs(ctx, input.UserID, txn.AccountID, txn.CategoryID, txn.Amount, offset)
	if err != nil {
		return nil, err
	}

	txn.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.UpdateWithReconciliation(ctx, txn, oldAmount, oldAccountID); err != nil {
		return nil, err
	}

	if txn.AccountID == oldAccountID {
		account.Balance = account.Balance.Sub(oldAmount).Add(txn.Amount)
	} else {
		account.Balance = account.Balance.Add(txn.Amount)
	}

	return &UpdateTransactionOutput{
		Transaction: &entity.TransactionWithRefs{
			Transaction: txn,
			Category:    category,
			Account:     account,
		},
	}, nil
}
