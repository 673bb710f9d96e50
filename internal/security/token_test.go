package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, 10*time.Minute, time.Hour)

	t.Run("Session token", func(t *testing.T) {
		token, err := m.GenerateSessionToken("user@example.com")
		require.NoError(t, err)

		claims, err := m.ValidateToken(token, TokenTypeSession)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, TokenTypeSession, claims.Type)
	})

	t.Run("Pending token", func(t *testing.T) {
		token, err := m.GeneratePendingToken("user@example.com")
		require.NoError(t, err)

		claims, err := m.ValidateToken(token, TokenTypeOTPPending)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeOTPPending, claims.Type)
	})
}

func TestTokenManager_WrongType(t *testing.T) {
	m := NewTokenManager(testSecret, 10*time.Minute, time.Hour)

	// A pending token must not open the dashboard.
	token, err := m.GeneratePendingToken("user@example.com")
	require.NoError(t, err)

	_, err = m.ValidateToken(token, TokenTypeSession)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager(testSecret, -time.Minute, time.Hour)

	token, err := m.GeneratePendingToken("user@example.com")
	require.NoError(t, err)

	_, err = m.ValidateToken(token, TokenTypeOTPPending)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_Invalid(t *testing.T) {
	m := NewTokenManager(testSecret, 10*time.Minute, time.Hour)

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.ValidateToken("not.a.jwt", TokenTypeSession)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewTokenManager("another-secret-another-secret-32", 10*time.Minute, time.Hour)
		token, err := other.GenerateSessionToken("user@example.com")
		require.NoError(t, err)

		_, err = m.ValidateToken(token, TokenTypeSession)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
