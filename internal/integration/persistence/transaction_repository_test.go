package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AminataF33/budgetappback/internal/domain/entity"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
	"github.com/AminataF33/budgetappback/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database with a single connection keeps every gorm
	// session of this test on the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	dbSQL, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type ledgerFixture struct {
	db         *gorm.DB
	userID     uuid.UUID
	categoryID uuid.UUID
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	db := openTestDB(t)
	now := time.Now().UTC()

	userID := uuid.New()
	if err := db.Create(&model.UserModel{
		ID:           userID,
		FirstName:    "Awa",
		LastName:     "Ndiaye",
		Email:        "awa@example.com",
		PasswordHash: "x",
		CreatedAt:    now,
		UpdatedAt:    now,
	}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	categoryID := uuid.New()
	if err := db.Create(&model.CategoryModel{
		ID:        categoryID,
		Name:      "Divers",
		Type:      string(entity.CategoryTypeExpense),
		Color:     "#6366F1",
		CreatedAt: now,
		UpdatedAt: now,
	}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	return &ledgerFixture{db: db, userID: userID, categoryID: categoryID}
}

func (f *ledgerFixture) seedAccount(t *testing.T, name string, accountType entity.AccountType, balance int64) uuid.UUID {
	t.Helper()

	now := time.Now().UTC()
	accountID := uuid.New()
	if err := f.db.Create(&model.AccountModel{
		ID:        accountID,
		UserID:    f.userID,
		Name:      name,
		Type:      string(accountType),
		Balance:   decimal.NewFromInt(balance),
		CreatedAt: now,
		UpdatedAt: now,
	}).Error; err != nil {
		t.Fatalf("seed account %s: %v", name, err)
	}
	return accountID
}

func (f *ledgerFixture) newTransaction(accountID uuid.UUID, amount int64, description string) *entity.Transaction {
	now := time.Now().UTC()
	return &entity.Transaction{
		ID:          uuid.New(),
		UserID:      f.userID,
		AccountID:   accountID,
		CategoryID:  f.categoryID,
		Description: description,
		Amount:      decimal.NewFromInt(amount),
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (f *ledgerFixture) accountBalance(t *testing.T, accountID uuid.UUID) decimal.Decimal {
	t.Helper()

	var accountModel model.AccountModel
	if err := f.db.First(&accountModel, "id = ?", accountID).Error; err != nil {
		t.Fatalf("load account: %v", err)
	}
	return accountModel.Balance
}

func TestCreateWithBalanceRejectsOverdraw(t *testing.T) {
	fixture := newLedgerFixture(t)
	repo := NewTransactionRepository(fixture.db)
	accountID := fixture.seedAccount(t, "Compte courant", entity.AccountTypeChecking, 100)

	err := repo.CreateWithBalance(context.Background(), fixture.newTransaction(accountID, -150, "Gros achat"))
	if !errors.Is(err, domainerror.ErrInsufficientFunds) {
		t.Fatalf("CreateWithBalance error = %v, want ErrInsufficientFunds", err)
	}

	if got := fixture.accountBalance(t, accountID); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance after rejected create = %v, want 100", got)
	}
	var count int64
	if err := fixture.db.Model(&model.TransactionModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	if count != 0 {
		t.Errorf("transaction rows = %d, want 0", count)
	}
}

func TestDeleteWithReversalIsUnconditional(t *testing.T) {
	fixture := newLedgerFixture(t)
	repo := NewTransactionRepository(fixture.db)
	accountID := fixture.seedAccount(t, "Compte courant", entity.AccountTypeChecking, 0)

	income := fixture.newTransaction(accountID, 100, "Prime")
	if err := repo.CreateWithBalance(context.Background(), income); err != nil {
		t.Fatalf("create income: %v", err)
	}
	expense := fixture.newTransaction(accountID, -50, "Courses")
	if err := repo.CreateWithBalance(context.Background(), expense); err != nil {
		t.Fatalf("create expense: %v", err)
	}

	// The income's money is partly spent. Undoing the income is not subject
	// to the funds guard, so the delete succeeds and the balance goes
	// negative.
	if err := repo.DeleteWithReversal(context.Background(), income); err != nil {
		t.Fatalf("DeleteWithReversal error = %v, want nil", err)
	}

	if got := fixture.accountBalance(t, accountID); !got.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("balance after reversal = %v, want -50", got)
	}
}

func TestUpdateWithReconciliationReversesOldAccountUnconditionally(t *testing.T) {
	fixture := newLedgerFixture(t)
	repo := NewTransactionRepository(fixture.db)
	sourceID := fixture.seedAccount(t, "Compte courant", entity.AccountTypeChecking, 0)
	targetID := fixture.seedAccount(t, "Epargne", entity.AccountTypeSavings, 0)

	income := fixture.newTransaction(sourceID, 500, "Prime")
	if err := repo.CreateWithBalance(context.Background(), income); err != nil {
		t.Fatalf("create income: %v", err)
	}
	expense := fixture.newTransaction(sourceID, -300, "Loyer")
	if err := repo.CreateWithBalance(context.Background(), expense); err != nil {
		t.Fatalf("create expense: %v", err)
	}

	moved := *income
	moved.AccountID = targetID
	moved.UpdatedAt = time.Now().UTC()
	if err := repo.UpdateWithReconciliation(context.Background(), &moved, income.Amount, sourceID); err != nil {
		t.Fatalf("UpdateWithReconciliation error = %v, want nil", err)
	}

	if got := fixture.accountBalance(t, sourceID); !got.Equal(decimal.NewFromInt(-300)) {
		t.Errorf("source balance = %v, want -300", got)
	}
	if got := fixture.accountBalance(t, targetID); !got.Equal(decimal.NewFromInt(500)) {
		t.Errorf("target balance = %v, want 500", got)
	}
}

func TestUpdateWithReconciliationGuardsTheNewAmount(t *testing.T) {
	fixture := newLedgerFixture(t)
	repo := NewTransactionRepository(fixture.db)
	accountID := fixture.seedAccount(t, "Compte courant", entity.AccountTypeChecking, 100)

	expense := fixture.newTransaction(accountID, -80, "Courses")
	if err := repo.CreateWithBalance(context.Background(), expense); err != nil {
		t.Fatalf("create expense: %v", err)
	}

	// Growing the expense past what reversing the old amount frees up must
	// fail and leave both the row and the balance untouched.
	grown := *expense
	grown.Amount = decimal.NewFromInt(-150)
	grown.UpdatedAt = time.Now().UTC()
	err := repo.UpdateWithReconciliation(context.Background(), &grown, expense.Amount, accountID)
	if !errors.Is(err, domainerror.ErrInsufficientFunds) {
		t.Fatalf("UpdateWithReconciliation error = %v, want ErrInsufficientFunds", err)
	}

	if got := fixture.accountBalance(t, accountID); !got.Equal(decimal.NewFromInt(20)) {
		t.Errorf("balance after rejected update = %v, want 20", got)
	}
	stored, err := repo.FindByID(context.Background(), expense.ID, fixture.userID)
	if err != nil {
		t.Fatalf("reload transaction: %v", err)
	}
	if !stored.Amount.Equal(decimal.NewFromInt(-80)) {
		t.Errorf("stored amount = %v, want -80", stored.Amount)
	}
}
