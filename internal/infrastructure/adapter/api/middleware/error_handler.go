package middleware

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/reqid"
)

// ErrorHandler recovers from panics in later handlers and answers 500 with the
// internal error body. The panic value goes to the log, never to the client.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		fields := map[string]any{
			"error":      fmt.Sprint(recovered),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"client_ip":  c.ClientIP(),
			"request_id": reqid.FromCtx(c.Request.Context()),
		}
		if user, ok := CurrentUser(c); ok {
			fields["public_id"] = user.PublicID
		}
		logger.Error("Panic recovered in API request", fields)

		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(domainerr.ErrInternalServer))
	})
}
