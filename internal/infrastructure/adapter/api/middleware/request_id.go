package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/reqid"
)

// RequestID reuses the caller's X-Request-ID or generates one, echoes it in
// the response and stores it in the request context for downstream logging
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(reqid.Header)
		if id == "" {
			id = reqid.New()
		}

		c.Header(reqid.Header, id)
		c.Request = c.Request.WithContext(reqid.WithValue(c.Request.Context(), id))
		c.Next()
	}
}
