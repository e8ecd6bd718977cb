package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tok, err := GenerateJWT(42)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	require.Equal(t, "42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
}

func TestGenerateJWTWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "right-secret")

	tok, err := GenerateJWT(1)
	require.NoError(t, err)

	_, err = jwt.Parse(tok, func(*jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	require.Error(t, err)
}
