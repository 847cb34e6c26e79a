package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/leoandrade/payment-api/internal/domain/entity"
	errs "github.com/leoandrade/payment-api/internal/domain/error"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
	coremocks "github.com/leoandrade/payment-api/mocks/port/core"
	persistencemocks "github.com/leoandrade/payment-api/mocks/port/persistence"
	securitymocks "github.com/leoandrade/payment-api/mocks/port/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

type fixture struct {
	userRepo    *persistencemocks.MockUserRepository
	paymentRepo *persistencemocks.MockPaymentRepository
	uow         *persistencemocks.MockUnitOfWork
	hasher      *securitymocks.MockPasswordHasher
	useCase     *UserUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f := &fixture{
		userRepo:    persistencemocks.NewMockUserRepository(t),
		paymentRepo: persistencemocks.NewMockPaymentRepository(t),
		uow:         persistencemocks.NewMockUnitOfWork(t),
		hasher:      securitymocks.NewMockPasswordHasher(t),
	}
	f.useCase = NewUserUseCase(f.userRepo, f.uow, f.hasher, logger)
	return f
}

var (
	admin   = &entity.User{ID: 1, PublicID: "admin-pid", Username: "admin", IsAdmin: true}
	regular = &entity.User{ID: 2, PublicID: "bob-pid", Username: "bob"}
)

func TestAdminOnlyOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("Non-admin is rejected before touching the store", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.useCase.ListUsers(ctx, regular)
		assert.ErrorIs(t, err, errs.ErrForbidden)

		_, err = f.useCase.GetUser(ctx, regular, "x")
		assert.ErrorIs(t, err, errs.ErrForbidden)

		_, err = f.useCase.CreateUser(ctx, regular, usecase.CreateUserRequest{Username: "a", Password: "b"})
		assert.ErrorIs(t, err, errs.ErrForbidden)

		_, err = f.useCase.PromoteUser(ctx, regular, "x")
		assert.ErrorIs(t, err, errs.ErrForbidden)

		_, err = f.useCase.DeleteUser(ctx, regular, "x")
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Missing caller is treated as an invalid token", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.useCase.ListUsers(ctx, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}

func TestListAndGetUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("List returns every user", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.EXPECT().List(mock.Anything).Return([]*entity.User{admin, regular}, nil).Once()

		users, err := f.useCase.ListUsers(ctx, admin)

		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("Get propagates not found", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.EXPECT().GetByPublicID(mock.Anything, "nope").Return(nil, errs.ErrUserNotFound).Once()

		user, err := f.useCase.GetUser(ctx, admin, "nope")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful user creation", func(t *testing.T) {
		f := newFixture(t)
		f.hasher.EXPECT().Hash("s3cret").Return("hashed", nil).Once()
		f.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			_, parseErr := uuid.Parse(u.PublicID)
			return u.Username == "carol" && u.PasswordHash == "hashed" && !u.IsAdmin && parseErr == nil
		})).Return(nil).Once()

		user, err := f.useCase.CreateUser(ctx, admin, usecase.CreateUserRequest{Username: "carol", Password: "s3cret"})

		require.NoError(t, err)
		assert.Equal(t, "carol", user.Username)
		assert.False(t, user.IsAdmin)
	})

	t.Run("Two creations get distinct public IDs", func(t *testing.T) {
		f := newFixture(t)
		var seen []string
		f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Twice()
		f.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, u *entity.User) {
			seen = append(seen, u.PublicID)
		}).Return(nil).Twice()

		_, err := f.useCase.CreateUser(ctx, admin, usecase.CreateUserRequest{Username: "dup", Password: "p"})
		require.NoError(t, err)
		_, err = f.useCase.CreateUser(ctx, admin, usecase.CreateUserRequest{Username: "dup", Password: "p"})
		require.NoError(t, err)

		require.Len(t, seen, 2)
		assert.NotEqual(t, seen[0], seen[1])
	})

	t.Run("Missing fields are rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.useCase.CreateUser(ctx, admin, usecase.CreateUserRequest{Username: "", Password: "p"})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = f.useCase.CreateUser(ctx, admin, usecase.CreateUserRequest{Username: "u", Password: ""})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Hash failure is an internal error", func(t *testing.T) {
		f := newFixture(t)
		f.hasher.EXPECT().Hash("p").Return("", errors.New("cost out of range")).Once()

		_, err := f.useCase.CreateUser(ctx, admin, usecase.CreateUserRequest{Username: "u", Password: "p"})

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestPromoteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Regular user becomes admin", func(t *testing.T) {
		f := newFixture(t)
		target := &entity.User{ID: 5, PublicID: "p5", Username: "eve"}
		f.userRepo.EXPECT().GetByPublicID(mock.Anything, "p5").Return(target, nil).Once()
		f.userRepo.EXPECT().Promote(mock.Anything, "p5").Return(nil).Once()

		user, err := f.useCase.PromoteUser(ctx, admin, "p5")

		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
		assert.Equal(t, "eve", user.Username)
	})

	t.Run("Promoting an admin is a no-op", func(t *testing.T) {
		f := newFixture(t)
		target := &entity.User{ID: 6, PublicID: "p6", Username: "root", IsAdmin: true}
		f.userRepo.EXPECT().GetByPublicID(mock.Anything, "p6").Return(target, nil).Once()

		user, err := f.useCase.PromoteUser(ctx, admin, "p6")

		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.EXPECT().GetByPublicID(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.useCase.PromoteUser(ctx, admin, "ghost")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey{}, "tx")

	t.Run("Deletes payments then the user and commits", func(t *testing.T) {
		f := newFixture(t)
		target := &entity.User{ID: 9, PublicID: "p9", Username: "frank"}

		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetUserRepository(txCtx).Return(f.userRepo).Once()
		f.uow.EXPECT().GetPaymentRepository(txCtx).Return(f.paymentRepo).Once()
		f.userRepo.EXPECT().GetByPublicID(txCtx, "p9").Return(target, nil).Once()
		f.paymentRepo.EXPECT().DeleteByOwner(txCtx, uint64(9)).Return(int64(3), nil).Once()
		f.userRepo.EXPECT().Delete(txCtx, uint64(9)).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		user, err := f.useCase.DeleteUser(ctx, admin, "p9")

		require.NoError(t, err)
		assert.Equal(t, "frank", user.Username)
	})

	t.Run("Unknown user rolls back", func(t *testing.T) {
		f := newFixture(t)

		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetUserRepository(txCtx).Return(f.userRepo).Once()
		f.uow.EXPECT().GetPaymentRepository(txCtx).Return(f.paymentRepo).Once()
		f.userRepo.EXPECT().GetByPublicID(txCtx, "ghost").Return(nil, errs.ErrUserNotFound).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.useCase.DeleteUser(ctx, admin, "ghost")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Payment cleanup failure rolls back and keeps the user", func(t *testing.T) {
		f := newFixture(t)
		target := &entity.User{ID: 9, PublicID: "p9", Username: "frank"}

		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetUserRepository(txCtx).Return(f.userRepo).Once()
		f.uow.EXPECT().GetPaymentRepository(txCtx).Return(f.paymentRepo).Once()
		f.userRepo.EXPECT().GetByPublicID(txCtx, "p9").Return(target, nil).Once()
		f.paymentRepo.EXPECT().DeleteByOwner(txCtx, uint64(9)).Return(int64(0), errs.ErrDatabaseConnection).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.useCase.DeleteUser(ctx, admin, "p9")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates the admin when the name is free", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.EXPECT().CountByUsername(mock.Anything, "root").Return(int64(0), nil).Once()
		f.hasher.EXPECT().Hash("toor").Return("hashed", nil).Once()
		f.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "root" && u.IsAdmin
		})).Return(nil).Once()

		created, err := f.useCase.EnsureAdmin(ctx, "root", "toor")

		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("Skips when the name is taken", func(t *testing.T) {
		f := newFixture(t)
		f.userRepo.EXPECT().CountByUsername(mock.Anything, "root").Return(int64(1), nil).Once()

		created, err := f.useCase.EnsureAdmin(ctx, "root", "toor")

		require.NoError(t, err)
		assert.False(t, created)
	})
}
