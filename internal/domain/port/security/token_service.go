package security

import "time"

// TokenClaims is what a verified access token asserts
type TokenClaims struct {
	PublicID  string
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-limited access tokens
type TokenService interface {
	// Issue signs a token bound to the public ID and returns it with its expiry
	Issue(publicID string) (string, time.Time, error)

	// Verify checks signature, algorithm and expiry.
	//
	// Possible errors:
	// - ErrInvalidToken: For any verification failure
	Verify(token string) (*TokenClaims, error)
}
