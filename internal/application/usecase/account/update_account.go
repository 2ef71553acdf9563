package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// UpdateAccountInput represents the input for account updates. Nil fields are
// left unchanged.
type UpdateAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Name      *string
	Bank      *string
	Type      *entity.AccountType
}

// UpdateAccountOutput represents the output of an account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID, input.UserID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if input.Name != nil && *input.Name != account.Name {
		exists, err := uc.accountRepo.ExistsByNameAndUser(ctx, *input.Name, input.UserID, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check account name: %w", err)
		}
		if exists {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameExists,
				fmt.Sprintf("an account named %q already exists", *input.Name),
				domainerror.ErrAccountNameExists,
			)
		}
		account.Name = *input.Name
	}

	if input.Bank != nil {
		account.Bank = *input.Bank
	}

	if input.Type != nil {
		if !isValidAccountType(*input.Type) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeInvalidAccountType,
				"account type must be 'checking', 'savings', 'credit' or 'mobile'",
				domainerror.ErrInvalidAccountType,
			)
		}
		account.Type = *input.Type
	}

	account.UpdatedAt = time.Now().UTC()
	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
