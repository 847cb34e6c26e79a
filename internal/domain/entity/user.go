package entity

import (
	"strings"

	errs "github.com/leoandrade/payment-api/internal/domain/error"
)

// User represents an account that can log in and own payments
type User struct {
	ID           uint64 // Store-assigned identifier, never exposed as a lookup key
	PublicID     string // Opaque identifier used in URLs and tokens
	Username     string // Not unique; login resolves the first match
	PasswordHash string // One-way hash of the login secret
	IsAdmin      bool   // Grants access to user administration and all payments
}

// NewUser creates a regular (non-admin) user from an already hashed secret
func NewUser(publicID, username, passwordHash string) (*User, error) {
	if strings.TrimSpace(publicID) == "" {
		return nil, errs.ErrInvalidRequest
	}
	if strings.TrimSpace(username) == "" {
		return nil, errs.ErrInvalidRequest
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &User{
		PublicID:     publicID,
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      false,
	}, nil
}

// Promote grants the admin role. Promoting an admin is a no-op.
func (u *User) Promote() {
	u.IsAdmin = true
}

// CanSeeAllPayments reports whether payment queries for this user skip owner scoping
func (u *User) CanSeeAllPayments() bool {
	return u.IsAdmin
}
