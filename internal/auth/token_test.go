package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	signed, err := GenerateToken(testSecret, "user-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := ParseToken(testSecret, signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	signed, err := GenerateToken(testSecret, "user-123")
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsMissingUserID(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"})
	signed, err := tok.SignedString(testSecret)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsUnsignedAlg(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "user-123"})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, signed)
	assert.Error(t, err)
}
