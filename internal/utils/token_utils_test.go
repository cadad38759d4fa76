package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	signed, err := GenerateJWT("user-1", "secret", time.Hour, "asset-tracker")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithIssuer("asset-tracker"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestGenerateJWT_RequiresSubjectAndSecret(t *testing.T) {
	_, err := GenerateJWT("", "secret", time.Hour, "")
	assert.Error(t, err)
	_, err = GenerateJWT("user-1", "", time.Hour, "")
	assert.Error(t, err)
}
