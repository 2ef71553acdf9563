package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AminataF33/budgetappback/internal/application/usecase/account"
	"github.com/AminataF33/budgetappback/internal/application/usecase/analytics"
	"github.com/AminataF33/budgetappback/internal/application/usecase/auth"
	"github.com/AminataF33/budgetappback/internal/application/usecase/budget"
	"github.com/AminataF33/budgetappback/internal/application/usecase/category"
	"github.com/AminataF33/budgetappback/internal/application/usecase/dashboard"
	"github.com/AminataF33/budgetappback/internal/application/usecase/goal"
	"github.com/AminataF33/budgetappback/internal/application/usecase/transaction"
	"github.com/AminataF33/budgetappback/internal/infra/server/router"
	"github.com/AminataF33/budgetappback/internal/integration/adapters"
	"github.com/AminataF33/budgetappback/internal/integration/entrypoint/controller"
	"github.com/AminataF33/budgetappback/internal/integration/entrypoint/middleware"
	"github.com/AminataF33/budgetappback/internal/integration/persistence"
	"github.com/AminataF33/budgetappback/internal/integration/persistence/model"
	"github.com/AminataF33/budgetappback/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	currentUserID     uuid.UUID
	currentAccountID  uuid.UUID
	otherAccountID    uuid.UUID
	currentCategoryID uuid.UUID
	otherCategoryID   uuid.UUID
	currentBudgetID   uuid.UUID
	currentGoalID     uuid.UUID
	lastTransactionID uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"accounts":       &model.AccountModel{},
			"categories":     &model.CategoryModel{},
			"transactions":   &model.TransactionModel{},
			"budgets":        &model.BudgetModel{},
			"goals":          &model.GoalModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Account setup steps
	ctx.Given(`^an account exists with name "([^"]*)" type "([^"]*)" and balance "([^"]*)"$`, test.anAccountExistsWithNameTypeAndBalance)
	ctx.Given(`^another account exists with name "([^"]*)" type "([^"]*)" and balance "([^"]*)"$`, test.anotherAccountExistsWithNameTypeAndBalance)

	// Category setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^another category exists with name "([^"]*)" and type "([^"]*)"$`, test.anotherCategoryExistsWithNameAndType)

	// Transaction setup steps
	ctx.Given(`^a transaction exists with description "([^"]*)" and amount "([^"]*)" on "([^"]*)"$`, test.aTransactionExistsWithDescriptionAndAmountOn)

	// Budget setup steps
	ctx.Given(`^a budget exists for the category with amount "([^"]*)" from "([^"]*)" to "([^"]*)"$`, test.aBudgetExistsForTheCategoryWithAmountFromTo)

	// Goal setup steps
	ctx.Given(`^a goal exists with title "([^"]*)" target "([^"]*)" and current "([^"]*)"$`, test.aGoalExistsWithTitleTargetAndCurrent)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I send a "([^"]*)" request for the transaction described "([^"]*)"$`, test.iSendARequestForTheTransactionDescribed)
	ctx.When(`^I send a "([^"]*)" request for the transaction described "([^"]*)" with body:$`, test.iSendARequestForTheTransactionDescribedWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
	ctx.Then(`^the account "([^"]*)" should have balance "([^"]*)"$`, test.theAccountShouldHaveBalance)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentAccountID = uuid.Nil
	t.otherAccountID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.otherCategoryID = uuid.Nil
	t.currentBudgetID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.lastTransactionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			accountRepo := persistence.NewAccountRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			budgetRepo := persistence.NewBudgetRepository(testDB.DbConn)
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			profileUseCase := auth.NewGetProfileUseCase(userRepo)

			// Create account use cases
			listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
			getAccountUseCase := account.NewGetAccountUseCase(accountRepo, transactionRepo)
			createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
			updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
			deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)
			balanceHistoryUseCase := account.NewBalanceHistoryUseCase(accountRepo)

			// Create category use cases
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
			categoryStatsUseCase := category.NewCategoryStatsUseCase(categoryRepo, budgetRepo)

			// Create transaction use cases
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, categoryRepo)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, accountRepo, categoryRepo)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
			duplicateTransactionUseCase := transaction.NewDuplicateTransactionUseCase(transactionRepo, accountRepo, categoryRepo)
			similarTransactionsUseCase := transaction.NewSimilarTransactionsUseCase(transactionRepo)
			periodStatsUseCase := transaction.NewPeriodStatsUseCase(transactionRepo)

			// Create budget use cases
			listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo)
			getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, transactionRepo)
			createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
			updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, categoryRepo)
			deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

			// Create goal use cases
			listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
			getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
			createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
			updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
			deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
			contributeGoalUseCase := goal.NewContributeGoalUseCase(goalRepo)

			// Create dashboard use cases
			dashboardSummaryUseCase := dashboard.NewSummaryUseCase(userRepo, accountRepo, transactionRepo, budgetRepo, goalRepo)
			dashboardStatsUseCase := dashboard.NewStatsUseCase(accountRepo, transactionRepo, budgetRepo, goalRepo)

			// Create analytics use cases
			analyticsSummaryUseCase := analytics.NewSummaryUseCase(transactionRepo, accountRepo)
			budgetReportUseCase := analytics.NewBudgetReportUseCase(budgetRepo, transactionRepo)
			goalReportUseCase := analytics.NewGoalReportUseCase(goalRepo)
			insightsUseCase := analytics.NewInsightsUseCase(transactionRepo, budgetRepo, goalRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				profileUseCase,
			)

			accountController := controller.NewAccountController(
				listAccountsUseCase,
				getAccountUseCase,
				createAccountUseCase,
				updateAccountUseCase,
				deleteAccountUseCase,
				balanceHistoryUseCase,
			)

			categoryController := controller.NewCategoryController(
				listCategoriesUseCase,
				getCategoryUseCase,
				createCategoryUseCase,
				updateCategoryUseCase,
				deleteCategoryUseCase,
				categoryStatsUseCase,
			)

			transactionController := controller.NewTransactionController(
				listTransactionsUseCase,
				createTransactionUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
				duplicateTransactionUseCase,
				similarTransactionsUseCase,
				periodStatsUseCase,
			)

			budgetController := controller.NewBudgetController(
				listBudgetsUseCase,
				getBudgetUseCase,
				createBudgetUseCase,
				updateBudgetUseCase,
				deleteBudgetUseCase,
			)

			goalController := controller.NewGoalController(
				listGoalsUseCase,
				getGoalUseCase,
				createGoalUseCase,
				updateGoalUseCase,
				deleteGoalUseCase,
				contributeGoalUseCase,
			)

			dashboardController := controller.NewDashboardController(
				dashboardSummaryUseCase,
				dashboardStatsUseCase,
			)

			analyticsController := controller.NewAnalyticsController(
				analyticsSummaryUseCase,
				budgetReportUseCase,
				goalReportUseCase,
				insightsUseCase,
			)

			// Create middleware. ENV=test makes the rate limiter a no-op.
			loginRateLimiter := middleware.NewRateLimiter(mock.NewRedis())
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				accountController,
				categoryController,
				transactionController,
				budgetController,
				goalController,
				dashboardController,
				analyticsController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password)
}

func (t *testContext) createUser(email, password string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		FirstName:    "Aminata",
		LastName:     "Fall",
		Email:        email,
		Phone:        "+221770000000",
		PasswordHash: hashPassword(password),
		City:         "Dakar",
		Profession:   "Engineer",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessTokenString, err := t.signToken("access", now, now.Add(15*time.Minute))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshTokenString, err := t.signToken("refresh", now, now.Add(7*24*time.Hour))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	// Store refresh token in database so rotation can invalidate it
	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) signToken(tokenType string, now, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(expiresAt),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "budgetapp",
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) anAccountExistsWithNameTypeAndBalance(name, accountType, balance string) error {
	id, err := t.createAccount(name, accountType, balance)
	if err != nil {
		return err
	}
	t.currentAccountID = id
	return nil
}

func (t *testContext) anotherAccountExistsWithNameTypeAndBalance(name, accountType, balance string) error {
	id, err := t.createAccount(name, accountType, balance)
	if err != nil {
		return err
	}
	t.otherAccountID = id
	return nil
}

func (t *testContext) createAccount(name, accountType, balance string) (uuid.UUID, error) {
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid balance %q: %w", balance, err)
	}

	accountID := uuid.New()
	now := time.Now().UTC()
	accountModel := &model.AccountModel{
		ID:        accountID,
		UserID:    t.currentUserID,
		Name:      name,
		Bank:      "Test Bank",
		Type:      accountType,
		Balance:   amount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return accountID, t.db.DbConn.Create(accountModel).Error
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	id, err := t.createCategory(name, categoryType)
	if err != nil {
		return err
	}
	t.currentCategoryID = id
	return nil
}

func (t *testContext) anotherCategoryExistsWithNameAndType(name, categoryType string) error {
	id, err := t.createCategory(name, categoryType)
	if err != nil {
		return err
	}
	t.otherCategoryID = id
	return nil
}

func (t *testContext) createCategory(name, categoryType string) (uuid.UUID, error) {
	categoryID := uuid.New()
	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		Name:      name,
		Type:      categoryType,
		Color:     "#6366F1",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return categoryID, t.db.DbConn.Create(categoryModel).Error
}

// aTransactionExistsWithDescriptionAndAmountOn seeds a transaction directly
// and applies its amount to the current account balance, mirroring what the
// create endpoint does.
func (t *testContext) aTransactionExistsWithDescriptionAndAmountOn(description, amount, date string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	categoryID := t.currentCategoryID
	if value.IsPositive() && t.otherCategoryID != uuid.Nil {
		categoryID = t.otherCategoryID
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		UserID:      t.currentUserID,
		AccountID:   t.currentAccountID,
		CategoryID:  categoryID,
		Description: description,
		Amount:      value,
		Date:        day,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := t.db.DbConn.Create(transactionModel).Error; err != nil {
		return err
	}

	return t.db.DbConn.Model(&model.AccountModel{}).
		Where("id = ?", t.currentAccountID).
		Update("balance", gorm.Expr("balance + ?", value)).Error
}

func (t *testContext) aBudgetExistsForTheCategoryWithAmountFromTo(amount, startDate, endDate string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	now := time.Now().UTC()
	budgetModel := &model.BudgetModel{
		ID:         budgetID,
		UserID:     t.currentUserID,
		CategoryID: t.currentCategoryID,
		Amount:     value,
		Period:     "monthly",
		StartDate:  start,
		EndDate:    end,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(budgetModel).Error
}

func (t *testContext) aGoalExistsWithTitleTargetAndCurrent(title, target, current string) error {
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", target, err)
	}
	currentAmount, err := decimal.NewFromString(current)
	if err != nil {
		return fmt.Errorf("invalid current %q: %w", current, err)
	}

	goalID := uuid.New()
	t.currentGoalID = goalID

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:            goalID,
		UserID:        t.currentUserID,
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Category:      "savings",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

// transactionIDByDescription resolves a seeded transaction by description so a
// scenario can target one that is not the most recently created.
func (t *testContext) transactionIDByDescription(description string) (uuid.UUID, error) {
	var transactionModel model.TransactionModel
	if err := t.db.DbConn.Where("description = ? AND user_id = ?", description, t.currentUserID).First(&transactionModel).Error; err != nil {
		return uuid.Nil, fmt.Errorf("transaction '%s' not found: %w", description, err)
	}
	return transactionModel.ID, nil
}

func (t *testContext) iSendARequestForTheTransactionDescribed(method, description string) error {
	id, err := t.transactionIDByDescription(description)
	if err != nil {
		return err
	}
	return t.executeRequest(method, "/api/v1/transactions/"+id.String(), nil)
}

func (t *testContext) iSendARequestForTheTransactionDescribedWithBody(method, description string, body *godog.DocString) error {
	id, err := t.transactionIDByDescription(description)
	if err != nil {
		return err
	}

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, "/api/v1/transactions/"+id.String(), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{account_id}}", t.currentAccountID.String())
	content = strings.ReplaceAll(content, "{{other_account_id}}", t.otherAccountID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{other_category_id}}", t.otherCategoryID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the created resource ID so follow-up requests can use it
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastTransactionID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theAccountShouldHaveBalance(name, expectedBalance string) error {
	var accountModel model.AccountModel
	if err := t.db.DbConn.Where("name = ? AND user_id = ?", name, t.currentUserID).First(&accountModel).Error; err != nil {
		return fmt.Errorf("account '%s' not found: %w", name, err)
	}

	expected, err := decimal.NewFromString(expectedBalance)
	if err != nil {
		return fmt.Errorf("invalid expected balance %q: %w", expectedBalance, err)
	}

	if !accountModel.Balance.Equal(expected) {
		return fmt.Errorf("account '%s' balance is %s, expected %s", name, accountModel.Balance, expected)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
