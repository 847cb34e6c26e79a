package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	domainerr "github.com/leoandrade/payment-api/internal/domain/error"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
	usecasemocks "github.com/leoandrade/payment-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockAuthUseCase) {
	t.Helper()

	uc := usecasemocks.NewMockAuthUseCase(t)
	h := NewAuthHandler(uc, testLogger)

	router := gin.New()
	router.GET("/login", h.Login)
	router.GET("/home", h.Home)
	return router, uc
}

func login(router *gin.Engine, username, password string, withAuth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	if withAuth {
		req.SetBasicAuth(username, password)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, uc := authRouter(t)
		uc.EXPECT().Login(mock.Anything, "bob", "pw").Return(&usecase.LoginResult{Username: "bob", Token: "jwt"}, nil).Once()

		w := login(router, "bob", "pw", true)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Welcome bob !","token":"jwt"}`, w.Body.String())
	})

	t.Run("No basic auth header", func(t *testing.T) {
		router, _ := authRouter(t)

		w := login(router, "", "", false)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Could not verify", w.Body.String())
		assert.Equal(t, `Basic realm="Login required!"`, w.Header().Get("WWW-Authenticate"))
	})

	t.Run("Wrong password", func(t *testing.T) {
		router, uc := authRouter(t)
		uc.EXPECT().Login(mock.Anything, "bob", "nope").Return(nil, domainerr.ErrInvalidCredentials).Once()

		w := login(router, "bob", "nope", true)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Could not verify", w.Body.String())
		assert.Equal(t, `Basic realm="Login required!"`, w.Header().Get("WWW-Authenticate"))
	})

	t.Run("Store outage is a server error", func(t *testing.T) {
		router, uc := authRouter(t)
		uc.EXPECT().Login(mock.Anything, "bob", "pw").Return(nil, domainerr.ErrDatabaseConnection).Once()

		w := login(router, "bob", "pw", true)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Header().Get("WWW-Authenticate"))
	})
}

func TestHome(t *testing.T) {
	router, _ := authRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/home", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, WelcomeText, w.Body.String())
}
