package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/usecase"
	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/api/dto"
)

// WelcomeText is served by the home endpoint
const WelcomeText = "Bem vindo! Este eh um projeto de uma REST API simples para efetuar pagamentos."

const loginChallenge = `Basic realm="Login required!"`

// AuthHandler handles login and the public home page
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Login handles GET /login with HTTP basic credentials
func (h *AuthHandler) Login(c *gin.Context) {
	username, password, ok := c.Request.BasicAuth()
	if !ok {
		h.challenge(c)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, domainerr.ErrInvalidCredentials) {
			h.challenge(c)
			return
		}
		respondError(c, h.logger, "login", err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: fmt.Sprintf("Welcome %s !", result.Username),
		Token:   result.Token,
	})
}

// Home handles GET /home
func (h *AuthHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, WelcomeText)
}

func (h *AuthHandler) challenge(c *gin.Context) {
	c.Header("WWW-Authenticate", loginChallenge)
	c.String(http.StatusUnauthorized, domainerr.ErrInvalidCredentials.Error())
}
