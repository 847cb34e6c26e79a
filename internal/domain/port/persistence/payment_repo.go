package persistence

import (
	"context"

	"github.com/leoandrade/payment-api/internal/domain/entity"
)

// PaymentScope restricts payment queries to what a caller may see.
// The restriction is part of the query itself, never a filter over fetched rows.
type PaymentScope struct {
	OwnerID uint64 // Only rows owned by this user, unless All is set
	All     bool   // Admin scope: every row
}

// ScopeFor builds the scope a user is entitled to
func ScopeFor(user *entity.User) PaymentScope {
	if user.CanSeeAllPayments() {
		return PaymentScope{All: true}
	}
	return PaymentScope{OwnerID: user.ID}
}

// PaymentRepository defines the payment store operations
type PaymentRepository interface {
	// List returns payments visible in the scope ordered by ID
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context, scope PaymentScope) ([]*entity.Payment, error)

	// Get retrieves a payment visible in the scope
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the payment doesn't exist or is outside the scope
	// - ErrDatabaseConnection: If database connection fails
	Get(ctx context.Context, scope PaymentScope, id uint64) (*entity.Payment, error)

	// Create persists a new payment and sets its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If the owner doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, payment *entity.Payment) error

	// Delete removes a payment visible in the scope
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the payment doesn't exist or is outside the scope
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, scope PaymentScope, id uint64) error

	// DeleteByOwner removes every payment owned by the user and returns how many were removed
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	DeleteByOwner(ctx context.Context, ownerID uint64) (int64, error)
}
