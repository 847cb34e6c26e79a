package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leoandrade/payment-api/internal/domain/entity"
	domainerr "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/dto"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/middleware"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/reqid"
)

// respondError maps a domain error onto the API error body and logs server-side failures
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := domainerr.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		fields := map[string]any{
			"operation":  operation,
			"error":      err.Error(),
			"request_id": reqid.FromCtx(c.Request.Context()),
		}
		var paymentErr *domainerr.PaymentError
		if errors.As(err, &paymentErr) {
			for k, v := range paymentErr.LogFields() {
				fields[k] = v
			}
		}
		logger.Error("Request failed", fields)
	}

	c.JSON(status, dto.NewErrorResponse(err))
}

// caller returns the authenticated user or answers 401 when the auth middleware was skipped
func caller(c *gin.Context) (*entity.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(domainerr.ErrInvalidToken))
		return nil, false
	}
	return user, true
}

func message(c *gin.Context, text string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: text})
}
