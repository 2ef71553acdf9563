package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account deletion. Accounts with transaction history are
// kept so the ledger stays reconstructible.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID, input.UserID)
	if err != nil {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	count, err := uc.accountRepo.CountTransactions(ctx, account.ID, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to count account transactions: %w", err)
	}
	if count > 0 {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountHasTransactions,
			fmt.Sprintf("account has %d transactions and cannot be deleted", count),
			domainerror.ErrAccountHasTransactions,
		)
	}

	if err := uc.accountRepo.Delete(ctx, account.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
