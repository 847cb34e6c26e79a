package repository

import (
	"errors"
	"fmt"
	"testing"

	errs "github.com/leoandrade/payment-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"gorm duplicate", gorm.ErrDuplicatedKey, KindDuplicate},
		{"wrapped gorm foreign key", fmt.Errorf("insert: %w", gorm.ErrForeignKeyViolated), KindForeignKey},
		{"postgres unique", errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_public_id"`), KindDuplicate},
		{"sqlite unique", errors.New("UNIQUE constraint failed: users.public_id"), KindDuplicate},
		{"sqlite foreign key", errors.New("FOREIGN KEY constraint failed"), KindForeignKey},
		{"sqlite not null", errors.New("NOT NULL constraint failed: payments.name"), KindConstraint},
		{"sqlite busy", errors.New("database is locked"), KindBusy},
		{"refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), KindConnection},
		{"unknown", errors.New("something odd"), KindNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyError(tc.err))
		})
	}
}

func TestErrorMapper(t *testing.T) {
	m := NewErrorMapper()

	assert.NoError(t, m.MapError(nil, EntityTypeUser))
	assert.ErrorIs(t, m.MapError(gorm.ErrRecordNotFound, EntityTypeUser), errs.ErrUserNotFound)
	assert.ErrorIs(t, m.MapError(gorm.ErrRecordNotFound, EntityTypePayment), errs.ErrPaymentNotFound)
	assert.ErrorIs(t, m.MapError(errors.New("FOREIGN KEY constraint failed"), EntityTypePayment), errs.ErrConstraintViolation)
	assert.ErrorIs(t, m.MapError(errors.New("database is locked"), EntityTypeUser), errs.ErrDatabaseConnection)
}
