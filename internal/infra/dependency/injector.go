// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/aminenidae/braincoinz/config"
	"github.com/aminenidae/braincoinz/internal/application/adapter"
	"github.com/aminenidae/braincoinz/internal/application/session"
	"github.com/aminenidae/braincoinz/internal/application/usecase/appconfig"
	"github.com/aminenidae/braincoinz/internal/application/usecase/auth"
	"github.com/aminenidae/braincoinz/internal/application/usecase/child"
	"github.com/aminenidae/braincoinz/internal/application/usecase/goal"
	"github.com/aminenidae/braincoinz/internal/application/usecase/ledger"
	"github.com/aminenidae/braincoinz/internal/application/usecase/purchase"
	"github.com/aminenidae/braincoinz/internal/infra/server/router"
	"github.com/aminenidae/braincoinz/internal/integration/adapters"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/controller"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/middleware"
	"github.com/aminenidae/braincoinz/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The clock is injected so the integration harness can drive rollovers.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, clock adapter.Clock) *Injector {
	// Repositories
	parentRepo := persistence.NewParentRepository(db)
	childRepo := persistence.NewChildRepository(db)
	walletRepo := persistence.NewWalletRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	appConfigRepo := persistence.NewAppConfigRepository(db)
	goalRepo := persistence.NewGoalRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// One locker instance serializes all wallet mutations per child.
	locker := ledger.NewWalletLocker()

	// Auth use cases
	registerUseCase := auth.NewRegisterParentUseCase(parentRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginParentUseCase(parentRepo, passwordService, tokenService)

	// Child use cases
	createChildUseCase := child.NewCreateChildUseCase(childRepo, clock)
	listChildrenUseCase := child.NewListChildrenUseCase(childRepo)

	// Ledger use cases
	recordLearningTimeUseCase := ledger.NewRecordLearningTimeUseCase(walletRepo, appConfigRepo, goalRepo, childRepo, locker, clock)
	getWalletUseCase := ledger.NewGetWalletUseCase(walletRepo, appConfigRepo, childRepo, locker, clock)
	adjustBalanceUseCase := ledger.NewAdjustBalanceUseCase(walletRepo, childRepo, locker, clock)
	resetWalletUseCase := ledger.NewResetWalletUseCase(walletRepo, childRepo, locker, clock)
	updateWalletSettingsUseCase := ledger.NewUpdateWalletSettingsUseCase(walletRepo, childRepo, locker, clock)
	listTransactionsUseCase := ledger.NewListTransactionsUseCase(walletRepo, transactionRepo, childRepo)

	// Purchase use cases
	checkPurchaseUseCase := purchase.NewCheckPurchaseUseCase(walletRepo, appConfigRepo, childRepo, locker, clock)
	purchaseUseCase := purchase.NewPurchaseRewardTimeUseCase(walletRepo, appConfigRepo, childRepo, locker, clock)

	// App registry use cases
	createAppUseCase := appconfig.NewCreateAppUseCase(appConfigRepo)
	updateAppUseCase := appconfig.NewUpdateAppUseCase(appConfigRepo)
	listAppsUseCase := appconfig.NewListAppsUseCase(appConfigRepo)
	seedDefaultsUseCase := appconfig.NewSeedDefaultsUseCase(appConfigRepo)

	// Goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, childRepo, appConfigRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, childRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, childRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, childRepo)

	// Session tracking
	tracker := session.NewTracker(recordLearningTimeUseCase, clock)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	childController := controller.NewChildController(createChildUseCase, listChildrenUseCase)
	walletController := controller.NewWalletController(getWalletUseCase, adjustBalanceUseCase, resetWalletUseCase, updateWalletSettingsUseCase, listTransactionsUseCase)
	purchaseController := controller.NewPurchaseController(checkPurchaseUseCase, purchaseUseCase)
	appConfigController := controller.NewAppConfigController(createAppUseCase, updateAppUseCase, listAppsUseCase, seedDefaultsUseCase)
	goalController := controller.NewGoalController(createGoalUseCase, listGoalsUseCase, updateGoalUseCase, deleteGoalUseCase)
	sessionController := controller.NewSessionController(tracker, recordLearningTimeUseCase)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiterWithConfig(redisClient, cfg.Economy.LoginMaxAttempts, cfg.Economy.LoginWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		childController,
		walletController,
		purchaseController,
		appConfigController,
		goalController,
		sessionController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
