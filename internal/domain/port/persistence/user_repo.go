package persistence

import (
	"context"

	"github.com/leoandrade/payment-api/internal/domain/entity"
)

// UserRepository defines the credential store operations
type UserRepository interface {
	// List returns every user ordered by ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context) ([]*entity.User, error)

	// GetByPublicID retrieves a user by its public identifier
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given public ID
	// - ErrDatabaseConnection: If database connection fails
	GetByPublicID(ctx context.Context, publicID string) (*entity.User, error)

	// GetFirstByUsername retrieves the user with the lowest ID among those sharing the username.
	// Used by login; usernames are not unique.
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given username
	// - ErrDatabaseConnection: If database connection fails
	GetFirstByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and sets its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If the public ID collides with an existing user
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Promote sets the admin flag on the user with the given public ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given public ID
	// - ErrDatabaseConnection: If database connection fails
	Promote(ctx context.Context, publicID string) error

	// Delete removes the user with the given ID
	//
	// Possible errors:
	// - ErrUserNotFound: If the user no longer exists
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error

	// CountByUsername returns how many users share the username
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	CountByUsername(ctx context.Context, username string) (int64, error)
}
