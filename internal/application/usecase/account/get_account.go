package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// RecentTransactionLimit is how many recent transactions the account detail includes.
const RecentTransactionLimit = 10

// GetAccountInput represents the input for fetching a single account.
type GetAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// GetAccountOutput represents the output of fetching a single account.
type GetAccountOutput struct {
	Account            *entity.Account
	RecentTransactions []*entity.TransactionWithRefs
	Stats              *entity.AccountStats
}

// GetAccountUseCase handles fetching account details.
type GetAccountUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *GetAccountUseCase {
	return &GetAccountUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute fetches an account with its recent transactions and stats.
func (uc *GetAccountUseCase) Execute(ctx context.Context, input GetAccountInput) (*GetAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID, input.UserID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	recent, err := uc.transactionRepo.FindRecentByAccount(ctx, account.ID, input.UserID, RecentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	stats, err := uc.accountRepo.GetStats(ctx, account.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account stats: %w", err)
	}

	return &GetAccountOutput{
		Account:            account,
		RecentTransactions: recent,
		Stats:              stats,
	}, nil
}
