package user

import (
	"context"

	"github.com/leoandrade/payment-api/internal/domain/entity"
	errs "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/persistence"
	"github.com/leoandrade/payment-api/internal/domain/port/security"
)

// UserUseCase handles user administration
type UserUseCase struct {
	userRepo persistence.UserRepository
	uow      persistence.UnitOfWork
	hasher   security.PasswordHasher
	logger   coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	uow persistence.UnitOfWork,
	hasher security.PasswordHasher,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		uow:      uow,
		hasher:   hasher,
		logger:   logger,
	}
}

// ListUsers returns every user
func (u *UserUseCase) ListUsers(ctx context.Context, actor *entity.User) ([]*entity.User, error) {
	if err := u.requireAdmin(actor, "list users"); err != nil {
		return nil, err
	}

	return u.userRepo.List(ctx)
}

// GetUser returns the user with the given public ID
func (u *UserUseCase) GetUser(ctx context.Context, actor *entity.User, publicID string) (*entity.User, error) {
	if err := u.requireAdmin(actor, "get user"); err != nil {
		return nil, err
	}

	return u.userRepo.GetByPublicID(ctx, publicID)
}

// requireAdmin rejects callers without the admin role
func (u *UserUseCase) requireAdmin(actor *entity.User, operation string) error {
	if actor == nil {
		return errs.ErrInvalidToken
	}
	if !actor.IsAdmin {
		u.logger.Warn("Non-admin caller rejected", map[string]any{
			"public_id": actor.PublicID,
			"operation": operation,
		})
		return errs.ErrForbidden
	}
	return nil
}
