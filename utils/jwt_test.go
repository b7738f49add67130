package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(42, "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims["user_id"])

	remaining := TokenRemainingTTL(claims)
	assert.Greater(t, remaining, 11*time.Hour)
	assert.LessOrEqual(t, remaining, TokenTTL)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "test-secret")
	require.NoError(t, err)

	_, err = ParseJWT(token, "wrong-secret")
	require.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token", "test-secret")
	require.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestGuestCredentials(t *testing.T) {
	username, email, password := GuestCredentials()
	assert.Contains(t, username, "guest-")
	assert.Contains(t, email, "@kitcollabguest.com")
	assert.Equal(t, username, password)

	// Две генерации не совпадают
	username2, _, _ := GuestCredentials()
	assert.NotEqual(t, username, username2)
}
