package database

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/leoandrade/payment-api/internal/domain/entity"
	errs "github.com/leoandrade/payment-api/internal/domain/error"
	"github.com/leoandrade/payment-api/internal/domain/port/persistence"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnectedTestDB(t *testing.T) *TestDBManager {
	t.Helper()

	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.Connect(t)
	testDB.SetupTestDB(t)
	return testDB
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()
	allScope := persistence.PaymentScope{All: true}

	t.Run("Commit persists changes from every repository", func(t *testing.T) {
		testDB := newConnectedTestDB(t)
		owner := testDB.CreateTestUser(t, "p1", "alice", false)
		testDB.CreateTestPayment(t, owner.ID, 100)
		uow := testDB.Manager.CreateUnitOfWork()

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		removed, err := uow.GetPaymentRepository(txCtx).DeleteByOwner(txCtx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)
		require.NoError(t, uow.GetUserRepository(txCtx).Delete(txCtx, owner.ID))
		require.NoError(t, uow.Commit(txCtx))

		_, err = uow.GetUserRepository(ctx).GetByPublicID(ctx, "p1")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Rollback discards changes", func(t *testing.T) {
		testDB := newConnectedTestDB(t)
		owner := testDB.CreateTestUser(t, "p1", "alice", false)
		testDB.CreateTestPayment(t, owner.ID, 100)
		uow := testDB.Manager.CreateUnitOfWork()

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		_, err = uow.GetPaymentRepository(txCtx).DeleteByOwner(txCtx, owner.ID)
		require.NoError(t, err)
		require.NoError(t, uow.Rollback(txCtx))

		payments, err := uow.GetPaymentRepository(ctx).List(ctx, allScope)
		require.NoError(t, err)
		assert.Len(t, payments, 1)
	})

	t.Run("Rollback after commit is tolerated", func(t *testing.T) {
		testDB := newConnectedTestDB(t)
		uow := testDB.Manager.CreateUnitOfWork()

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Commit(txCtx))

		assert.NoError(t, uow.Rollback(txCtx))
	})

	t.Run("Commit without a transaction fails", func(t *testing.T) {
		testDB := newConnectedTestDB(t)
		uow := testDB.Manager.CreateUnitOfWork()

		assert.ErrorIs(t, uow.Commit(ctx), ErrNoTransaction)
		assert.ErrorIs(t, uow.Rollback(ctx), ErrNoTransaction)
	})

	t.Run("Repositories outside a transaction use the base connection", func(t *testing.T) {
		testDB := newConnectedTestDB(t)
		uow := testDB.Manager.CreateUnitOfWork()

		user := &entity.User{PublicID: "p9", Username: "zed", PasswordHash: "h"}
		require.NoError(t, uow.GetUserRepository(ctx).Create(ctx, user))

		found, err := uow.GetUserRepository(ctx).GetByPublicID(ctx, "p9")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})
}

func TestManager(t *testing.T) {
	t.Run("Connect rejects an invalid config", func(t *testing.T) {
		manager := NewManager(&Config{Driver: "oracle"}, logger.NewNoopLogger(), nil)

		_, err := manager.Connect(context.Background())
		assert.Error(t, err)
	})

	t.Run("Pool observers receive stats on connect", func(t *testing.T) {
		observer := &recordingObserver{}
		testDB := NewTestDBManager(t, logger.NewNoopLogger())
		testDB.Manager = NewManager(testDB.Config, testDB.Logger, testDB.TimeProvider, observer)
		testDB.Connect(t)

		assert.Equal(t, DriverSQLite, testDB.Manager.Driver())
		calls, last := observer.snapshot()
		assert.GreaterOrEqual(t, calls, 1)
		assert.Equal(t, 1, last.MaxOpenConnections)
	})

	t.Run("Close is safe before connect", func(t *testing.T) {
		manager := NewManager(&Config{}, logger.NewNoopLogger(), nil)
		assert.NoError(t, manager.Close())
	})
}

type recordingObserver struct {
	mu    sync.Mutex
	calls int
	last  sql.DBStats
}

func (o *recordingObserver) ObservePool(stats sql.DBStats) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	o.last = stats
}

func (o *recordingObserver) snapshot() (int, sql.DBStats) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls, o.last
}
