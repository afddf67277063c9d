// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expire-tracker/backend/config"
	"github.com/expire-tracker/backend/internal/application/usecase/auth"
	"github.com/expire-tracker/backend/internal/application/usecase/category"
	"github.com/expire-tracker/backend/internal/application/usecase/dashboard"
	expiryusecase "github.com/expire-tracker/backend/internal/application/usecase/expiry"
	"github.com/expire-tracker/backend/internal/application/usecase/product"
	"github.com/expire-tracker/backend/internal/application/usecase/report"
	"github.com/expire-tracker/backend/internal/infra/server/router"
	"github.com/expire-tracker/backend/internal/integration/adapters"
	"github.com/expire-tracker/backend/internal/integration/email"
	"github.com/expire-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expire-tracker/backend/internal/integration/entrypoint/middleware"
	expiryworker "github.com/expire-tracker/backend/internal/integration/expiry"
	"github.com/expire-tracker/backend/internal/integration/pdf"
	"github.com/expire-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	ExpiryWorker *expiryworker.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	productRepo := persistence.NewProductRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	clock := adapters.NewSystemClock()
	notifier := email.NewResendNotifier(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail, cfg.Email.AppBaseURL)
	renderer := pdf.NewRenderer(cfg.Expiry.WarningWindowDays)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)

	// Create product use cases
	createProductUseCase := product.NewCreateProductUseCase(productRepo, categoryRepo, clock, cfg.Expiry.WarningWindowDays)
	getProductUseCase := product.NewGetProductUseCase(productRepo)
	listProductsUseCase := product.NewListProductsUseCase(productRepo)
	updateProductUseCase := product.NewUpdateProductUseCase(productRepo, categoryRepo, clock, cfg.Expiry.WarningWindowDays)
	deleteProductUseCase := product.NewDeleteProductUseCase(productRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create report and dashboard use cases
	summaryUseCase := report.NewGetSummaryUseCase(productRepo, clock, cfg.Expiry.WarningWindowDays)
	generateUseCase := report.NewGenerateUseCase(productRepo, renderer, clock)
	overviewUseCase := dashboard.NewGetOverviewUseCase(productRepo, categoryRepo, clock, cfg.Expiry.WarningWindowDays)

	// Create the expiry check worker
	runCheckUseCase := expiryusecase.NewRunCheckUseCase(productRepo, categoryRepo, notifier, clock, cfg.Expiry.WarningWindowDays)
	runLock := expiryworker.NewRedisRunLock(redisClient)
	worker := expiryworker.NewWorker(runCheckUseCase, runLock, expiryworker.WorkerConfig{
		Interval: cfg.Expiry.CheckInterval,
		LockTTL:  cfg.Expiry.LockTTL,
	})

	// Create controllers
	healthController := controller.NewHealthController()
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshUseCase)
	productController := controller.NewProductController(
		createProductUseCase,
		getProductUseCase,
		listProductsUseCase,
		updateProductUseCase,
		deleteProductUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	reportController := controller.NewReportController(summaryUseCase, generateUseCase)
	dashboardController := controller.NewDashboardController(overviewUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)

	// Create router
	appRouter := router.NewRouter(
		healthController,
		authController,
		productController,
		categoryController,
		reportController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       appRouter,
		ExpiryWorker: worker,
	}
}
