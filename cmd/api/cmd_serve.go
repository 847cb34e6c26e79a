package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/leoandrade/payment-api/internal/domain/usecase/auth"
	"github.com/leoandrade/payment-api/internal/domain/usecase/payment"
	"github.com/leoandrade/payment-api/internal/domain/usecase/user"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/handler"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/routes"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/database/migration"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/random"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/repository"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/security"
	"github.com/leoandrade/payment-api/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

// payment-api serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func runServer(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer app.close()

	cfg := app.cfg
	appLogger := app.logger

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.migrate(ctx); err != nil {
		return err
	}

	db := app.dbManager.DB()
	userRepo := repository.NewUserRepository(db, appLogger)
	paymentRepo := repository.NewPaymentRepository(db, appLogger)
	uow := app.dbManager.CreateUnitOfWork()

	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens, err := security.NewJWTTokenService(cfg.Auth.SecretKey, cfg.Auth.TokenTTL, app.clock)
	if err != nil {
		return err
	}
	randomSource := random.NewMathRandomSource()

	userUseCase := user.NewUserUseCase(userRepo, uow, hasher, appLogger)
	authUseCase := auth.NewAuthUseCase(userRepo, hasher, tokens, appLogger)
	paymentUseCase := payment.NewPaymentUseCase(paymentRepo, payment.NewCoinFlipAuthorizer(randomSource), randomSource, appLogger)

	if err := migration.CreateBootstrapAdmin(ctx, userUseCase, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword, appLogger); err != nil {
		appLogger.Error("Failed to create bootstrap admin", map[string]any{
			"error": err.Error(),
		})
	}

	var observer handler.PaymentObserver
	if app.metrics != nil {
		observer = app.metrics
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins, app.metrics)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:    handler.NewAuthHandler(authUseCase, appLogger),
		User:    handler.NewUserHandler(userUseCase, appLogger),
		Payment: handler.NewPaymentHandler(paymentUseCase, observer, appLogger),
	}, authUseCase, appLogger)
	if app.metrics != nil {
		routes.SetupMetrics(router, app.metrics, cfg.Metrics.Path)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": app.dbManager.Driver(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
