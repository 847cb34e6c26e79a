package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/reqid"
	timeprovider "github.com/leoandrade/payment-api/internal/infrastructure/adapter/time"
	coremocks "github.com/leoandrade/payment-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestDescribeStatement(t *testing.T) {
	testCases := []struct {
		sql   string
		verb  string
		table string
	}{
		{`SELECT * FROM "payments" WHERE user_id = 1`, "SELECT", "payments"},
		{`INSERT INTO users (public_id) VALUES ('x')`, "INSERT", "users"},
		{`INSERT INTO "users" ("public_id") VALUES ('x')`, "INSERT", "users"},
		{`update "users" SET admin = true`, "UPDATE", "users"},
		{`DELETE FROM payments WHERE id = 3`, "DELETE", "payments"},
		{`SELECT count(*)`, "SELECT", ""},
		{`PRAGMA foreign_keys`, "", ""},
		{``, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.sql, func(t *testing.T) {
			verb, table := describeStatement(tc.sql)
			assert.Equal(t, tc.verb, verb)
			assert.Equal(t, tc.table, table)
		})
	}
}

func TestDatabaseLoggerTrace(t *testing.T) {
	tp := timeprovider.NewRealTimeProvider()
	ctx := reqid.WithValue(context.Background(), "req-1")
	query := func() (string, int64) { return "SELECT * FROM users", 2 }

	t.Run("Regular queries log at debug with the request id", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)
		core.EXPECT().Debug("SQL Query", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["request_id"] == "req-1" && fields["table"] == "users" && fields["rows"] == int64(2)
		})).Once()

		NewDatabaseLogger(core, tp, "info").Trace(ctx, time.Now(), query, nil)
	})

	t.Run("Errors log at error level", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)
		core.EXPECT().Error("SQL Error", mock.Anything).Once()

		NewDatabaseLogger(core, tp, "warn").Trace(ctx, time.Now(), query, errors.New("syntax error"))
	})

	t.Run("Record not found is not an error", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)
		core.EXPECT().Debug("SQL Query", mock.Anything).Once()

		NewDatabaseLogger(core, tp, "info").Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	})

	t.Run("Slow queries warn", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)
		core.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(core, tp, "warn").(*DatabaseLogger).WithSlowThreshold(time.Millisecond)
		l.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		core := coremocks.NewMockLogger(t)

		NewDatabaseLogger(core, tp, "silent").Trace(ctx, time.Now(), query, errors.New("boom"))
	})
}

func TestParamsFilter(t *testing.T) {
	l := NewDatabaseLogger(coremocks.NewMockLogger(t), nil, "info").(*DatabaseLogger)

	sql, params := l.ParamsFilter(context.Background(), "INSERT INTO payments (num_card) VALUES (?)", "4111111111111111")

	assert.Equal(t, "INSERT INTO payments (num_card) VALUES (?)", sql)
	assert.Empty(t, params)
}
