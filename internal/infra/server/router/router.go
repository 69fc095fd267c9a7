// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/controller"
	"github.com/aminenidae/braincoinz/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	childController     *controller.ChildController
	walletController    *controller.WalletController
	purchaseController  *controller.PurchaseController
	appConfigController *controller.AppConfigController
	goalController      *controller.GoalController
	sessionController   *controller.SessionController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	childController *controller.ChildController,
	walletController *controller.WalletController,
	purchaseController *controller.PurchaseController,
	appConfigController *controller.AppConfigController,
	goalController *controller.GoalController,
	sessionController *controller.SessionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		childController:     childController,
		walletController:    walletController,
		purchaseController:  purchaseController,
		appConfigController: appConfigController,
		goalController:      goalController,
		sessionController:   sessionController,
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
		}

		apps := v1.Group("/apps")
		apps.Use(r.authMiddleware.Authenticate())
		{
			apps.GET("", r.appConfigController.List)
			apps.POST("", r.appConfigController.Create)
			apps.POST("/seed", r.appConfigController.SeedDefaults)
			apps.PATCH("/:id", r.appConfigController.Update)
		}

		children := v1.Group("/children")
		children.Use(r.authMiddleware.Authenticate())
		{
			children.GET("", r.childController.List)
			children.POST("", r.childController.Create)

			children.GET("/:childId/wallet", r.walletController.Get)
			children.PATCH("/:childId/wallet", r.walletController.UpdateSettings)
			children.POST("/:childId/wallet/adjust", r.walletController.Adjust)
			children.POST("/:childId/wallet/reset", r.walletController.Reset)
			children.GET("/:childId/transactions", r.walletController.ListTransactions)

			children.POST("/:childId/purchases/check", r.purchaseController.Check)
			children.POST("/:childId/purchases", r.purchaseController.Purchase)

			children.GET("/:childId/goals", r.goalController.List)
			children.POST("/:childId/goals", r.goalController.Create)
			children.PATCH("/:childId/goals/:goalId", r.goalController.Update)
			children.DELETE("/:childId/goals/:goalId", r.goalController.Delete)

			children.GET("/:childId/sessions", r.sessionController.List)
			children.POST("/:childId/sessions", r.sessionController.Start)
			children.POST("/:childId/sessions/tick", r.sessionController.Tick)
			children.POST("/:childId/sessions/end", r.sessionController.End)
			children.POST("/:childId/learning-time", r.sessionController.RecordTime)
		}
	}
}
