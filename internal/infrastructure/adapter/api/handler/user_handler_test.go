package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leoandrade/payment-api/internal/domain/entity"
	domainerr "github.com/leoandrade/payment-api/internal/domain/error"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
	usecasemocks "github.com/leoandrade/payment-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func userRouter(t *testing.T, actor *entity.User) (*gin.Engine, *usecasemocks.MockUserUseCase) {
	t.Helper()

	uc := usecasemocks.NewMockUserUseCase(t)
	h := NewUserHandler(uc, testLogger)

	router := gin.New()
	group := router.Group("/user", as(actor))
	group.GET("", h.ListUsers)
	group.POST("", h.CreateUser)
	group.GET("/:public_id", h.GetUser)
	group.PUT("/:public_id", h.PromoteUser)
	group.DELETE("/:public_id", h.DeleteUser)

	return router, uc
}

func TestListUsers(t *testing.T) {
	router, uc := userRouter(t, admin)
	uc.EXPECT().ListUsers(mock.Anything, admin).Return([]*entity.User{
		{ID: 1, PublicID: "p1", Username: "admin", PasswordHash: "h1", IsAdmin: true},
		{ID: 2, PublicID: "p2", Username: "bob", PasswordHash: "h2"},
	}, nil).Once()

	w := do(router, http.MethodGet, "/user", nil)

	require.Equal(t, http.StatusOK, w.Code)
	users := decode(t, w)["users"].([]any)
	require.Len(t, users, 2)
	second := users[1].(map[string]any)
	assert.Equal(t, float64(2), second["user_id"])
	assert.Equal(t, "p2", second["public_id"])
	assert.Equal(t, "bob", second["name"])
	assert.Equal(t, "h2", second["password"])
	assert.Equal(t, false, second["admin"])
}

func TestListUsersEmpty(t *testing.T) {
	router, uc := userRouter(t, admin)
	uc.EXPECT().ListUsers(mock.Anything, admin).Return(nil, nil).Once()

	w := do(router, http.MethodGet, "/user", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users":[]}`, w.Body.String())
}

func TestGetUser(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		router, uc := userRouter(t, admin)
		uc.EXPECT().GetUser(mock.Anything, admin, "p2").Return(regular, nil).Once()

		w := do(router, http.MethodGet, "/user/p2", nil)

		require.Equal(t, http.StatusOK, w.Code)
		user := decode(t, w)["user"].(map[string]any)
		assert.Equal(t, "bob", user["name"])
	})

	t.Run("Missing", func(t *testing.T) {
		router, uc := userRouter(t, admin)
		uc.EXPECT().GetUser(mock.Anything, admin, "ghost").Return(nil, domainerr.ErrUserNotFound).Once()

		w := do(router, http.MethodGet, "/user/ghost", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No user found!", decode(t, w)["message"])
	})

	t.Run("Non-admin", func(t *testing.T) {
		router, uc := userRouter(t, regular)
		uc.EXPECT().GetUser(mock.Anything, regular, "p1").Return(nil, domainerr.ErrForbidden).Once()

		w := do(router, http.MethodGet, "/user/p1", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "You are not allowed to perform that function!", decode(t, w)["message"])
	})

	t.Run("No caller", func(t *testing.T) {
		router, _ := userRouter(t, nil)

		w := do(router, http.MethodGet, "/user/p1", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Created and admin flag ignored", func(t *testing.T) {
		router, uc := userRouter(t, admin)
		uc.EXPECT().CreateUser(mock.Anything, admin, usecase.CreateUserRequest{Username: "carol", Password: "pw"}).
			Return(&entity.User{ID: 3, Username: "carol"}, nil).Once()

		w := do(router, http.MethodPost, "/user", map[string]any{"username": "carol", "password": "pw", "admin": true})

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"New user created!"}`, w.Body.String())
	})

	t.Run("Missing password", func(t *testing.T) {
		router, _ := userRouter(t, admin)

		w := do(router, http.MethodPost, "/user", map[string]any{"username": "carol"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, float64(domainerr.CodeInvalidRequest), decode(t, w)["code"])
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		router, _ := userRouter(t, admin)

		w := do(router, http.MethodPost, "/user", "{not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Store failure hides details", func(t *testing.T) {
		router, uc := userRouter(t, admin)
		uc.EXPECT().CreateUser(mock.Anything, admin, mock.Anything).Return(nil, domainerr.ErrDatabaseConnection).Once()

		w := do(router, http.MethodPost, "/user", map[string]any{"username": "carol", "password": "pw"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Internal server error", body["message"])
		assert.Equal(t, float64(domainerr.CodeDatabaseConnection), body["code"])
	})
}

func TestPromoteAndDeleteUser(t *testing.T) {
	t.Run("Promote", func(t *testing.T) {
		router, uc := userRouter(t, admin)
		uc.EXPECT().PromoteUser(mock.Anything, admin, "p2").Return(&entity.User{Username: "bob", IsAdmin: true}, nil).Once()

		w := do(router, http.MethodPut, "/user/p2", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"The user 'bob' has been promoted!"}`, w.Body.String())
	})

	t.Run("Promote missing", func(t *testing.T) {
		router, uc := userRouter(t, admin)
		uc.EXPECT().PromoteUser(mock.Anything, admin, "ghost").Return(nil, domainerr.ErrUserNotFound).Once()

		w := do(router, http.MethodPut, "/user/ghost", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		router, uc := userRouter(t, admin)
		uc.EXPECT().DeleteUser(mock.Anything, admin, "p2").Return(&entity.User{Username: "bob"}, nil).Once()

		w := do(router, http.MethodDelete, "/user/p2", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"The user 'bob' has been deleted!"}`, w.Body.String())
	})

	t.Run("Delete missing", func(t *testing.T) {
		router, uc := userRouter(t, admin)
		uc.EXPECT().DeleteUser(mock.Anything, admin, "ghost").Return(nil, domainerr.ErrUserNotFound).Once()

		w := do(router, http.MethodDelete, "/user/ghost", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No user found!", decode(t, w)["message"])
	})
}
