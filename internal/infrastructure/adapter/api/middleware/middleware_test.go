package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leoandrade/payment-api/internal/domain/entity"
	domainerr "github.com/leoandrade/payment-api/internal/domain/error"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/logger"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/metrics"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/reqid"
	usecasemocks "github.com/leoandrade/payment-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func protectedRouter(t *testing.T, adminOnly bool) (*gin.Engine, *usecasemocks.MockAuthUseCase) {
	t.Helper()

	auth := usecasemocks.NewMockAuthUseCase(t)
	router := gin.New()

	chain := []gin.HandlerFunc{Auth(auth, logger.NewNoopLogger())}
	if adminOnly {
		chain = append(chain, RequireAdmin())
	}
	chain = append(chain, func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.String(http.StatusOK, user.Username)
	})
	router.GET("/protected", chain...)

	return router, auth
}

func TestAuth(t *testing.T) {
	t.Run("Missing token", func(t *testing.T) {
		router, _ := protectedRouter(t, false)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "Token is missing!", body.Message)
		assert.Equal(t, domainerr.CodeTokenMissing, body.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		router, auth := protectedRouter(t, false)
		auth.EXPECT().Authenticate(mock.Anything, "bad").Return(nil, domainerr.ErrInvalidToken).Once()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(TokenHeader, "bad")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token is invalid!", decodeError(t, w).Message)
	})

	t.Run("Valid token reaches the handler with the user", func(t *testing.T) {
		router, auth := protectedRouter(t, false)
		auth.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.User{ID: 2, Username: "bob"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(TokenHeader, "good")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "bob", w.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("Regular user is refused", func(t *testing.T) {
		router, auth := protectedRouter(t, true)
		auth.EXPECT().Authenticate(mock.Anything, "tok").Return(&entity.User{ID: 2, Username: "bob"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(TokenHeader, "tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "You are not allowed to perform that function!", body.Message)
		assert.Equal(t, domainerr.CodeForbidden, body.Code)
	})

	t.Run("Admin passes", func(t *testing.T) {
		router, auth := protectedRouter(t, true)
		auth.EXPECT().Authenticate(mock.Anything, "tok").Return(&entity.User{ID: 1, Username: "root", IsAdmin: true}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(TokenHeader, "tok")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Without Auth in front the guard refuses", func(t *testing.T) {
		router := gin.New()
		router.GET("/x", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, reqid.FromCtx(c.Request.Context()))
	})

	t.Run("Generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(reqid.Header))
	})

	t.Run("Upstream value is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(reqid.Header, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Body.String())
		assert.Equal(t, "abc-123", w.Header().Get(reqid.Header))
	})
}

func TestCORS(t *testing.T) {
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	t.Run("Wildcard", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS([]string{"*"}))
		router.GET("/x", ok)

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), TokenHeader)
	})

	t.Run("Allow list", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS([]string{"https://App.example.com"}))
		router.GET("/x", ok)

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Preflight short-circuits", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS(nil))
		router.GET("/x", ok)

		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNoopLogger()))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, domainerr.CodeInternalServer, body.Code)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestMetrics(t *testing.T) {
	m := metrics.New()
	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/payment/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for _, path := range []string{"/payment/1", "/payment/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	out := w.Body.String()

	assert.True(t, strings.Contains(out, `payment_api_http_requests_total{method="GET",route="/payment/:id",status="200"} 2`), out)
	assert.Contains(t, out, `route="unmatched",status="404"`)
	assert.NotContains(t, out, `route="/payment/1"`)
}
