package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errs "github.com/leoandrade/payment-api/internal/domain/error"
	coreport "github.com/leoandrade/payment-api/internal/domain/port/core"
	"github.com/leoandrade/payment-api/internal/domain/port/security"
)

// DefaultTokenTTL is how long an issued token stays valid. It is also the
// upper bound: no token outlives it, whatever ttl the service was built with.
const DefaultTokenTTL = 15 * time.Minute

// Claims holds the typed JWT payload
type Claims struct {
	PublicID string `json:"public_id"`
	jwt.RegisteredClaims
}

// JWTTokenService issues HS256 tokens bound to a user's public ID
type JWTTokenService struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTTokenService creates a token service. A non-positive ttl, or one longer
// than DefaultTokenTTL, means DefaultTokenTTL.
func NewJWTTokenService(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) (security.TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	if ttl <= 0 || ttl > DefaultTokenTTL {
		ttl = DefaultTokenTTL
	}

	return &JWTTokenService{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs a token for the public ID
func (s *JWTTokenService) Issue(publicID string) (string, time.Time, error) {
	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		PublicID: publicID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, expiresAt, nil
}

// Verify parses the token, pinning the algorithm to HS256 and checking expiry
func (s *JWTTokenService) Verify(token string) (*security.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidToken, err.Error())
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.PublicID == "" {
		return nil, errs.ErrInvalidToken
	}

	return &security.TokenClaims{
		PublicID:  claims.PublicID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
