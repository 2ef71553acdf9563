package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
)

// stubGoalRepository covers only the method the contribution use case calls.
type stubGoalRepository struct {
	adapter.GoalRepository
	addContribution func(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal) (*entity.Goal, error)
}

func (s *stubGoalRepository) AddContribution(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal) (*entity.Goal, error) {
	return s.addContribution(ctx, id, userID, amount)
}

func TestContributeGoal(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()

	t.Run("contribution updates the goal", func(t *testing.T) {
		repo := &stubGoalRepository{
			addContribution: func(_ context.Context, _, _ uuid.UUID, amount decimal.Decimal) (*entity.Goal, error) {
				g := entity.NewGoal(userID, "Vacances", "", decimal.NewFromInt(1000), decimal.NewFromInt(200), nil, "savings")
				g.ID = goalID
				g.CurrentAmount = g.CurrentAmount.Add(amount)
				return g, nil
			},
		}
		uc := NewContributeGoalUseCase(repo)

		output, err := uc.Execute(context.Background(), ContributeGoalInput{
			UserID: userID,
			GoalID: goalID,
			Amount: decimal.NewFromInt(50),
		})
		if err != nil {
			t.Fatalf("Execute error = %v, want nil", err)
		}
		if !output.Goal.Goal.CurrentAmount.Equal(decimal.NewFromInt(250)) {
			t.Errorf("CurrentAmount = %v, want 250", output.Goal.Goal.CurrentAmount)
		}
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		uc := NewContributeGoalUseCase(&stubGoalRepository{})

		_, err := uc.Execute(context.Background(), ContributeGoalInput{
			UserID: userID,
			GoalID: goalID,
			Amount: decimal.Zero,
		})
		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidContributionAmount {
			t.Fatalf("Execute error = %v, want GoalError %s", err, domainerror.ErrCodeInvalidContributionAmount)
		}
	})

	t.Run("unknown goal maps to the not-found code", func(t *testing.T) {
		repo := &stubGoalRepository{
			addContribution: func(context.Context, uuid.UUID, uuid.UUID, decimal.Decimal) (*entity.Goal, error) {
				return nil, domainerror.ErrGoalNotFound
			},
		}
		uc := NewContributeGoalUseCase(repo)

		_, err := uc.Execute(context.Background(), ContributeGoalInput{
			UserID: userID,
			GoalID: goalID,
			Amount: decimal.NewFromInt(50),
		})
		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
			t.Fatalf("Execute error = %v, want GoalError %s", err, domainerror.ErrCodeGoalNotFound)
		}
	})

	t.Run("repository failures pass through untranslated", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		repo := &stubGoalRepository{
			addContribution: func(context.Context, uuid.UUID, uuid.UUID, decimal.Decimal) (*entity.Goal, error) {
				return nil, dbErr
			},
		}
		uc := NewContributeGoalUseCase(repo)

		_, err := uc.Execute(context.Background(), ContributeGoalInput{
			UserID: userID,
			GoalID: goalID,
			Amount: decimal.NewFromInt(50),
		})
		if !errors.Is(err, dbErr) {
			t.Fatalf("Execute error = %v, want wrapped %v", err, dbErr)
		}
		var goalErr *domainerror.GoalError
		if errors.As(err, &goalErr) {
			t.Errorf("Execute error = %v, want no goal error translation", err)
		}
	})
}
