package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aonore/CRM-TRAMITES/models"
)

func TestSetJWTSecretSignsWithConfiguredKey(t *testing.T) {
	SetJWTSecret("configured-secret")
	defer SetJWTSecret("supersecretkey")

	tok, err := GenerateJWT(models.User{ID: 1, Email: "operator@example.com"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(tok, func(*jwt.Token) (interface{}, error) {
		return []byte("configured-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	_, err = jwt.Parse(tok, func(*jwt.Token) (interface{}, error) {
		return []byte("some-other-key"), nil
	})
	assert.Error(t, err)
}

func TestSetJWTSecretIgnoresEmpty(t *testing.T) {
	SetJWTSecret("configured-secret")
	defer SetJWTSecret("supersecretkey")

	SetJWTSecret("")

	tok, err := GenerateJWT(models.User{ID: 1, Email: "operator@example.com"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(tok, func(*jwt.Token) (interface{}, error) {
		return []byte("configured-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pass1234")
	require.NoError(t, err)

	assert.True(t, CheckPassword("pass1234", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
