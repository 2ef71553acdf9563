// Package transaction contains transaction-related use cases.
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

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 1000
)

// refValidator resolves and validates a transaction's account and category.
// Every mutating transaction use case embeds it.
type refValidator struct {
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
}

// validateRefs checks the account and category referenced by a prospective
// transaction: both must exist (the account owned by the user), the amount
// sign must agree with the category type, and an expense on a non-credit
// account must not drive the balance below zero. The balance read here only
// serves the error detail; the authoritative check is the guarded increment
// inside the repository's database transaction.
func (v *refValidator) validateRefs(
	ctx context.Context,
	userID, accountID, categoryID uuid.UUID,
	amount decimal.Decimal,
	balanceOffset decimal.Decimal,
) (*entity.Account, *entity.Category, error) {
	if amount.IsZero() {
		return nil, nil, domainerror.NewTransactionError(
			domainerror.ErrCodeZeroAmount,
			"transaction amount must not be zero",
			domainerror.ErrZeroAmount,
		)
	}

	account, err := v.accountRepo.FindByID(ctx, accountID, userID)
	if err != nil {
		return nil, nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	category, err := v.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	probe := entity.Transaction{Amount: amount}
	if !probe.MatchesCategory(category.Type) {
		return nil, nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			fmt.Sprintf("amount sign does not match %s category %q", category.Type, category.Name),
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	if amount.IsNegative() && !account.IsCredit() {
		// balanceOffset backs out the transaction being replaced on update.
		effective := account.Balance.Add(balanceOffset)
		if effective.Add(amount).IsNegative() {
			return nil, nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInsufficientFunds,
				"insufficient funds",
				domainerror.NewInsufficientFundsError(effective, amount),
			)
		}
	}

	return account, category, nil
}
