package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/persistence"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// ErrNoTransaction is returned by Commit and Rollback on a context without Begin
var ErrNoTransaction = errors.New("no transaction found in context")

type txKey struct{}

// UnitOfWork keeps the open *gorm.DB transaction in the context
type UnitOfWork struct {
	db     *gorm.DB
	driver string
	logger coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, driver string, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:     db,
		driver: driver,
		logger: logger,
	}
}

func txFrom(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	return tx, ok && tx != nil
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{
			"driver": u.driver,
			"error":  tx.Error.Error(),
		})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// SQLite transactions are already serializable and reject this statement
	if u.driver == DriverPostgres {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
		}
	}

	u.logger.Debug("Transaction started", map[string]any{"driver": u.driver})
	return context.WithValue(ctx, txKey{}, tx), nil
}

// Commit commits the transaction carried by ctx
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := txFrom(ctx)
	if !ok {
		return ErrNoTransaction
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.logger.Debug("Transaction committed", nil)
	return nil
}

// Rollback rolls back the transaction carried by ctx
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := txFrom(ctx)
	if !ok {
		return ErrNoTransaction
	}

	err := tx.Rollback().Error
	switch {
	case err == nil:
		u.logger.Debug("Transaction rolled back", nil)
		return nil
	case errors.Is(err, sql.ErrTxDone):
		return nil
	default:
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
}

// GetUserRepository returns a user repository bound to the transaction in ctx, if any
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.dbFor(ctx), u.logger)
}

// GetPaymentRepository returns a payment repository bound to the transaction in ctx, if any
func (u *UnitOfWork) GetPaymentRepository(ctx context.Context) persistence.PaymentRepository {
	return repository.NewPaymentRepository(u.dbFor(ctx), u.logger)
}

func (u *UnitOfWork) dbFor(ctx context.Context) *gorm.DB {
	if tx, ok := txFrom(ctx); ok {
		return tx
	}
	return u.db.WithContext(ctx)
}
