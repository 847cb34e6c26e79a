package entity

import (
	"testing"

	errs "github.com/leoandrade/payment-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("0b6f4a3e", "alice", "hash")

		require.NoError(t, err)
		assert.Equal(t, uint64(0), user.ID)
		assert.Equal(t, "0b6f4a3e", user.PublicID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.False(t, user.IsAdmin)
	})

	t.Run("Blank fields are rejected", func(t *testing.T) {
		testCases := []struct {
			name     string
			publicID string
			username string
			hash     string
		}{
			{"missing public id", "", "alice", "hash"},
			{"whitespace username", "pid", "   ", "hash"},
			{"missing hash", "pid", "alice", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				user, err := NewUser(tc.publicID, tc.username, tc.hash)
				assert.ErrorIs(t, err, errs.ErrInvalidRequest)
				assert.Nil(t, user)
			})
		}
	})
}

func TestUserPromote(t *testing.T) {
	user, err := NewUser("pid", "alice", "hash")
	require.NoError(t, err)
	assert.False(t, user.CanSeeAllPayments())

	user.Promote()
	assert.True(t, user.IsAdmin)
	assert.True(t, user.CanSeeAllPayments())

	user.Promote()
	assert.True(t, user.IsAdmin)
}
