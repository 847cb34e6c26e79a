package persistence

import (
	"context"
)

// UnitOfWork scopes several repository calls to one database transaction.
// Begin returns a context carrying the transaction; repositories obtained
// with that context share it until Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	// Rollback is a no-op when the transaction already finished
	Rollback(ctx context.Context) error

	GetUserRepository(ctx context.Context) UserRepository
	GetPaymentRepository(ctx context.Context) PaymentRepository
}
