package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leoandrade/payment-api/internal/domain/entity"
	domainerr "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/dto"
)

// Payment outcomes reported to the observer
const (
	OutcomeCreated  = "created"
	OutcomeDeclined = "declined"
	OutcomeRejected = "rejected"
)

// PaymentObserver receives the outcome of every payment attempt
type PaymentObserver interface {
	ObservePayment(method, outcome string)
}

type noopPaymentObserver struct{}

func (noopPaymentObserver) ObservePayment(string, string) {}

// PaymentHandler handles payment requests
type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	observer       PaymentObserver
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance. A nil observer disables outcome reporting.
func NewPaymentHandler(
	paymentUseCase usecase.PaymentUseCase,
	observer PaymentObserver,
	logger coreport.Logger,
) *PaymentHandler {
	if observer == nil {
		observer = noopPaymentObserver{}
	}
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		observer:       observer,
		logger:         logger,
	}
}

// paymentID parses the path id. Malformed ids answer like a missing payment.
func paymentID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(domainerr.ErrPaymentNotFound))
		return 0, false
	}
	return id, true
}

// ListPayments handles GET /payment
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}

	payments, err := h.paymentUseCase.ListPayments(c.Request.Context(), actor)
	if err != nil {
		respondError(c, h.logger, "list payments", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentListResponse(payments))
}

// GetPayment handles GET /payment/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	id, ok := paymentID(c)
	if !ok {
		return
	}

	payment, err := h.paymentUseCase.GetPayment(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, h.logger, "get payment", err)
		return
	}

	c.JSON(http.StatusOK, dto.SinglePaymentResponse{Payment: dto.NewPaymentResponse(payment)})
}

// CreatePayment handles POST /payment
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid create payment request", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	method := entity.PaymentMethod(*req.PaymentMethod).String()

	result, err := h.paymentUseCase.CreatePayment(c.Request.Context(), actor, req.ToUseCase())
	if err != nil {
		if errors.Is(err, domainerr.ErrPaymentDeclined) {
			h.observer.ObservePayment(method, OutcomeDeclined)
		} else {
			h.observer.ObservePayment(method, OutcomeRejected)
		}
		respondError(c, h.logger, "create payment", err)
		return
	}

	h.observer.ObservePayment(method, OutcomeCreated)

	if result.Ticket != "" {
		c.JSON(http.StatusOK, dto.TicketResponse{Ticket: result.Ticket})
		return
	}
	message(c, "Successful payment!")
}

// DeletePayment handles DELETE /payment/:id
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	id, ok := paymentID(c)
	if !ok {
		return
	}

	if err := h.paymentUseCase.DeletePayment(c.Request.Context(), actor, id); err != nil {
		respondError(c, h.logger, "delete payment", err)
		return
	}

	message(c, "The payment has been deleted!")
}
