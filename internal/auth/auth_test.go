package auth_test

import (
	"testing"

	"delivery-ops-api-server/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, auth.CheckPasswordHash("s3cret", hash))
	assert.False(t, auth.CheckPasswordHash("wrong", hash))
}

func TestGenerateJWT(t *testing.T) {
	token, err := auth.GenerateJWT("user-1", "user@example.com")
	require.NoError(t, err)

	claims := &auth.JWTClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return auth.JwtSecret, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestGenerateJWT_BadSecretRejected(t *testing.T) {
	token, err := auth.GenerateJWT("user-1", "user@example.com")
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &auth.JWTClaims{}, func(*jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
