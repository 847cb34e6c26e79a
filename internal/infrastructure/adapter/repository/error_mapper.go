package repository

import (
	"errors"
	"fmt"

	errs "github.com/leoandrade/payment-api/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypePayment represents the payment entity
	EntityTypePayment EntityType = "payment"
)

// ErrorMapper maps gorm and driver errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error raised while handling the given entity
func (m *ErrorMapper) MapError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.notFound(entityType)
	}

	switch classifyError(err) {
	case KindDuplicate, KindForeignKey, KindConstraint:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

func (m *ErrorMapper) notFound(entityType EntityType) error {
	switch entityType {
	case EntityTypePayment:
		return errs.ErrPaymentNotFound
	default:
		return errs.ErrUserNotFound
	}
}
