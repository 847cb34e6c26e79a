package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/leoandrade/payment-api/internal/domain/entity"
	errs "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/persistence"
	"github.com/leoandrade/payment-api/internal/domain/port/security"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
)

// AuthUseCase verifies credentials and resolves access tokens
type AuthUseCase struct {
	userRepo persistence.UserRepository
	hasher   security.PasswordHasher
	tokens   security.TokenService
	logger   coreport.Logger
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenService,
	logger coreport.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login checks the credentials against the first user with that username and issues a token
func (a *AuthUseCase) Login(ctx context.Context, username, password string) (*usecase.LoginResult, error) {
	if username == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := a.userRepo.GetFirstByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			a.logger.Warn("Login attempt for unknown username", map[string]any{
				"username": username,
			})
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.hasher.Verify(user.PasswordHash, password) {
		a.logger.Warn("Login attempt with wrong password", map[string]any{
			"public_id": user.PublicID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.Issue(user.PublicID)
	if err != nil {
		a.logger.Error("Failed to issue access token", map[string]any{
			"public_id": user.PublicID,
			"error":     err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	a.logger.Info("User logged in", map[string]any{
		"public_id":  user.PublicID,
		"expires_at": expiresAt,
	})

	return &usecase.LoginResult{
		Username:  user.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate maps a token to its user, failing when the token is bad or the user is gone
func (a *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errs.ErrTokenMissing
	}

	claims, err := a.tokens.Verify(token)
	if err != nil {
		a.logger.Debug("Access token rejected", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInvalidToken
	}

	user, err := a.userRepo.GetByPublicID(ctx, claims.PublicID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			a.logger.Warn("Access token refers to a deleted user", map[string]any{
				"public_id": claims.PublicID,
			})
			return nil, errs.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}
