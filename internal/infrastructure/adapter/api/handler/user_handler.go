package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles user administration requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// ListUsers handles GET /user
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}

	users, err := h.userUseCase.ListUsers(c.Request.Context(), actor)
	if err != nil {
		respondError(c, h.logger, "list users", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// GetUser handles GET /user/:public_id
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUser(c.Request.Context(), actor, c.Param("public_id"))
	if err != nil {
		respondError(c, h.logger, "get user", err)
		return
	}

	c.JSON(http.StatusOK, dto.SingleUserResponse{User: dto.NewUserResponse(user)})
}

// CreateUser handles POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid create user request", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	if _, err := h.userUseCase.CreateUser(c.Request.Context(), actor, usecase.CreateUserRequest{
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		respondError(c, h.logger, "create user", err)
		return
	}

	message(c, "New user created!")
}

// PromoteUser handles PUT /user/:public_id
func (h *UserHandler) PromoteUser(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.PromoteUser(c.Request.Context(), actor, c.Param("public_id"))
	if err != nil {
		respondError(c, h.logger, "promote user", err)
		return
	}

	message(c, fmt.Sprintf("The user '%s' has been promoted!", user.Username))
}

// DeleteUser handles DELETE /user/:public_id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.DeleteUser(c.Request.Context(), actor, c.Param("public_id"))
	if err != nil {
		respondError(c, h.logger, "delete user", err)
		return
	}

	message(c, fmt.Sprintf("The user '%s' has been deleted!", user.Username))
}
