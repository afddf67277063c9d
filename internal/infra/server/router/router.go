// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expire-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expire-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	productController   *controller.ProductController
	categoryController  *controller.CategoryController
	reportController    *controller.ReportController
	dashboardController *controller.DashboardController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	productController *controller.ProductController,
	categoryController *controller.CategoryController,
	reportController *controller.ReportController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		productController:   productController,
		categoryController:  categoryController,
		reportController:    reportController,
		dashboardController: dashboardController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
		}

		products := v1.Group("/products")
		products.Use(r.authMiddleware.Authenticate())
		{
			products.GET("", r.productController.List)
			products.POST("", r.productController.Create)
			products.GET("/:id", r.productController.Get)
			products.PATCH("/:id", r.productController.Update)
			products.DELETE("/:id", r.productController.Delete)
		}

		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.authMiddleware.AdminRequired(), r.categoryController.Create)
			categories.PATCH("/:id", r.authMiddleware.AdminRequired(), r.categoryController.Update)
			categories.DELETE("/:id", r.authMiddleware.AdminRequired(), r.categoryController.Delete)
		}

		reports := v1.Group("/reports")
		reports.Use(r.authMiddleware.Authenticate())
		{
			reports.GET("/summary", r.reportController.Summary)
			reports.POST("/generate", r.reportController.Generate)
		}

		dashboard := v1.Group("/dashboard")
		dashboard.Use(r.authMiddleware.Authenticate())
		{
			dashboard.GET("/overview", r.dashboardController.Overview)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
