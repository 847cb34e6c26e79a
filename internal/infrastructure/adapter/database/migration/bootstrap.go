package migration

import (
	"context"

	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
)

// CreateBootstrapAdmin seeds the first admin so the admin-only endpoints are reachable.
// It does nothing when username or password is empty, or when the username is taken.
func CreateBootstrapAdmin(ctx context.Context, users usecase.UserUseCase, username, password string, logger coreport.Logger) error {
	if username == "" || password == "" {
		logger.Debug("Bootstrap admin not configured", nil)
		return nil
	}

	created, err := users.EnsureAdmin(ctx, username, password)
	if err != nil {
		return err
	}

	if created {
		logger.Info("Bootstrap admin created", map[string]any{
			"username": username,
		})
	}
	return nil
}
