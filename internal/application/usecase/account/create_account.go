package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID         uuid.UUID
	Name           string
	Bank           string
	Type           entity.AccountType
	InitialBalance decimal.Decimal
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if !isValidAccountType(input.Type) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be 'checking', 'savings', 'credit' or 'mobile'",
			domainerror.ErrInvalidAccountType,
		)
	}

	exists, err := uc.accountRepo.ExistsByNameAndUser(ctx, input.Name, input.UserID, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check account name: %w", err)
	}
	if exists {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameExists,
			fmt.Sprintf("an account named %q already exists", input.Name),
			domainerror.ErrAccountNameExists,
		)
	}

	account := entity.NewAccount(input.UserID, input.Name, input.Bank, input.Type, input.InitialBalance)
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}

// isValidAccountType validates the account type.
func isValidAccountType(accountType entity.AccountType) bool {
	switch accountType {
	case entity.AccountTypeChecking, entity.AccountTypeSavings, entity.AccountTypeCredit, entity.AccountTypeMobile:
		return true
	}
	return false
}
