package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "alice@example.com", "client", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "client", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "alice@example.com", "client", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaims(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "alice@example.com", "client", time.Hour)
	require.NoError(t, err)

	_, err = ExtractClaims(token + "x")
	assert.Error(t, err)
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, HashToken("other-token"))
}
