// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/AminataF33/budgetappback/config"
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
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

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
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
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

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
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

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
