package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        "jti-1",
		Subject:   "42",
		Issuer:    "http://localhost:8000",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := Inspect(signed)
	require.NoError(t, err)
	assert.Equal(t, "jti-1", claims.ID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "http://localhost:8000", claims.Issuer)
	assert.True(t, claims.ExpiresAt.Equal(now.Add(time.Hour)))
	assert.False(t, claims.Expired(now))
	assert.True(t, claims.Expired(now.Add(2*time.Hour)))
}

func TestInspect_Opaque(t *testing.T) {
	_, err := Inspect("abc123")
	assert.ErrorIs(t, err, ErrOpaque)
}
