package usecase

import (
	"context"
	"time"

	"github.com/leoandrade/payment-api/internal/domain/entity"
)

// LoginResult is returned after successful credential verification
type LoginResult struct {
	Username  string
	Token     string
	ExpiresAt time.Time
}

// AuthUseCase defines authentication operations
type AuthUseCase interface {
	// Login checks username and password and issues an access token.
	// All failures collapse to ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Authenticate resolves an access token to the user it was issued for.
	// Returns ErrInvalidToken when the token fails verification or its user no longer exists.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
