package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/leoandrade/payment-api/internal/domain/entity"
	errs "github.com/leoandrade/payment-api/internal/domain/error"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
)

// CreateUser registers a regular user with a fresh public ID
func (u *UserUseCase) CreateUser(ctx context.Context, actor *entity.User, req usecase.CreateUserRequest) (*entity.User, error) {
	if err := u.requireAdmin(actor, "create user"); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, errs.ErrInvalidRequest
	}

	return u.register(ctx, req.Username, req.Password, false)
}

// register hashes the secret and stores the new account
func (u *UserUseCase) register(ctx context.Context, username, password string, admin bool) (*entity.User, error) {
	hash, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(uuid.NewString(), username, hash)
	if err != nil {
		return nil, err
	}
	if admin {
		user.Promote()
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"user_id":   user.ID,
		"public_id": user.PublicID,
		"admin":     user.IsAdmin,
	})

	return user, nil
}

// EnsureAdmin seeds an admin account when nobody uses the username yet
func (u *UserUseCase) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return false, errs.ErrInvalidRequest
	}

	count, err := u.userRepo.CountByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if count > 0 {
		u.logger.Info("Bootstrap admin already exists", map[string]any{
			"username": username,
		})
		return false, nil
	}

	if _, err := u.register(ctx, username, password, true); err != nil {
		return false, err
	}
	return true, nil
}
