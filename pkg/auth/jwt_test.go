package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 7*24*time.Hour)

	token, err := manager.GenerateToken("user-1", "vaidya", "vaidya@example.com")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "vaidya", claims.Username)
	assert.Equal(t, "vaidya@example.com", claims.Email)
}

func TestRefreshTokenCarriesOnlyUserID(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 7*24*time.Hour)

	token, err := manager.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Empty(t, claims.Username)
	assert.Empty(t, claims.Email)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, time.Hour)
	other := NewJWTManager("other-secret", time.Hour, time.Hour)

	token, err := manager.GenerateToken("user-1", "vaidya", "vaidya@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, time.Hour)

	token, err := manager.GenerateToken("user-1", "vaidya", "vaidya@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
