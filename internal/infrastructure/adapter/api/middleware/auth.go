package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leoandrade/payment-api/internal/domain/entity"
	domainerr "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/dto"
)

// TokenHeader carries the access token issued by the login endpoint
const TokenHeader = "X-Access-Token"

const currentUserKey = "current_user"

// Auth resolves the access token to a user and stores it in the gin context.
// Requests without a usable token are answered with 401 before any handler runs.
func Auth(authUseCase usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(TokenHeader))
		if token == "" {
			abortWithError(c, domainerr.ErrTokenMissing)
			return
		}

		user, err := authUseCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Access token rejected", map[string]any{
				"path":  c.FullPath(),
				"error": err.Error(),
			})
			abortWithError(c, err)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAdmin stops non-admin callers. It must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortWithError(c, domainerr.ErrInvalidToken)
			return
		}
		if !user.IsAdmin {
			abortWithError(c, domainerr.ErrForbidden)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by Auth
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok && user != nil
}

// SetCurrentUser stores the caller in the context
func SetCurrentUser(c *gin.Context, user *entity.User) {
	c.Set(currentUserKey, user)
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(domainerr.HTTPStatus(err), dto.NewErrorResponse(err))
}
