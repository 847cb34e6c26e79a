package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leoandrade/payment-api/internal/domain/entity"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/middleware"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/require"
)

var (
	admin   = &entity.User{ID: 1, PublicID: "admin-pid", Username: "admin", IsAdmin: true}
	regular = &entity.User{ID: 2, PublicID: "bob-pid", Username: "bob"}
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testLogger = logger.NewNoopLogger()

// as stands in for the auth middleware
func as(user *entity.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			middleware.SetCurrentUser(c, user)
		}
		c.Next()
	}
}

func do(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
