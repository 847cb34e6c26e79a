package usecase

import (
	"context"

	"github.com/leoandrade/payment-api/internal/domain/entity"
)

// CreateUserRequest carries the fields accepted when an admin registers a user.
// There is no admin flag: new users always start as regular users.
type CreateUserRequest struct {
	Username string
	Password string
}

// UserUseCase defines the user administration operations.
// Every operation takes the authenticated caller and requires it to be an admin.
type UserUseCase interface {
	// ListUsers returns every user
	ListUsers(ctx context.Context, actor *entity.User) ([]*entity.User, error)

	// GetUser returns the user with the given public ID
	GetUser(ctx context.Context, actor *entity.User, publicID string) (*entity.User, error)

	// CreateUser registers a new regular user with a fresh public ID and a hashed secret
	CreateUser(ctx context.Context, actor *entity.User, req CreateUserRequest) (*entity.User, error)

	// PromoteUser grants the admin role and returns the promoted user
	PromoteUser(ctx context.Context, actor *entity.User, publicID string) (*entity.User, error)

	// DeleteUser removes the user together with its payments and returns the removed user
	DeleteUser(ctx context.Context, actor *entity.User, publicID string) (*entity.User, error)

	// EnsureAdmin seeds an admin account when no user with the username exists.
	// Reports whether an account was created.
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}
