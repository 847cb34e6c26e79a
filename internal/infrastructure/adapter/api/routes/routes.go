package routes

import (
	"github.com/gin-gonic/gin"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/handler"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/middleware"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/metrics"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Payment *handler.PaymentHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	authUseCase usecase.AuthUseCase,
	logger coreport.Logger,
) {
	router.GET("/home", handlers.Auth.Home)
	router.GET("/login", handlers.Auth.Login)

	authenticated := middleware.Auth(authUseCase, logger)

	// User administration is admin-only
	userRoutes := router.Group("/user", authenticated, middleware.RequireAdmin())
	{
		userRoutes.GET("", handlers.User.ListUsers)
		userRoutes.POST("", handlers.User.CreateUser)
		userRoutes.GET("/:public_id", handlers.User.GetUser)
		userRoutes.PUT("/:public_id", handlers.User.PromoteUser)
		userRoutes.DELETE("/:public_id", handlers.User.DeleteUser)
	}

	paymentRoutes := router.Group("/payment", authenticated)
	{
		paymentRoutes.GET("", handlers.Payment.ListPayments)
		paymentRoutes.POST("", handlers.Payment.CreatePayment)
		paymentRoutes.GET("/:id", handlers.Payment.GetPayment)
		paymentRoutes.DELETE("/:id", handlers.Payment.DeletePayment)
	}
}

// SetupMetrics mounts the scrape endpoint
func SetupMetrics(router *gin.Engine, m *metrics.Metrics, path string) {
	router.GET(path, gin.WrapH(m.Handler()))
}

// SetupMiddlewares configures global middlewares for the API.
// m may be nil when metrics are disabled.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string, m *metrics.Metrics) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
	if m != nil {
		router.Use(middleware.Metrics(m))
	}
}
