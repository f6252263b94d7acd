package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	secret := []byte("test-secret")

	tok, err := Sign(secret, "user-1", "radiologist", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "radiologist", claims.Role)
}

func TestSignEmptySecret(t *testing.T) {
	_, err := Sign(nil, "user-1", "patient", time.Hour)
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	tok, err := Sign([]byte("secret-a"), "user-1", "patient", time.Hour)
	require.NoError(t, err)

	_, err = Parse([]byte("secret-b"), tok)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	secret := []byte("test-secret")
	tok, err := Sign(secret, "user-1", "patient", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(secret, tok)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse([]byte("test-secret"), "not-a-token")
	assert.Error(t, err)
}
