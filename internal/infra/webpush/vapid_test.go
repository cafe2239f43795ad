package webpush

import (
	"crypto/ecdsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVAPIDKeys_ParseBack(t *testing.T) {
	privateB64, publicB64, err := GenerateVAPIDKeys()
	require.NoError(t, err)

	key, err := ParseVAPIDKey(privateB64, publicB64)
	require.NoError(t, err)
	assert.Equal(t, publicB64, key.PublicKey())
}

func TestParseVAPIDKey_MismatchedPublicKey(t *testing.T) {
	privateB64, _, err := GenerateVAPIDKeys()
	require.NoError(t, err)
	_, otherPublic, err := GenerateVAPIDKeys()
	require.NoError(t, err)

	_, err = ParseVAPIDKey(privateB64, otherPublic)
	assert.Error(t, err)
}

func TestSignToken_Claims(t *testing.T) {
	privateB64, publicB64, err := GenerateVAPIDKeys()
	require.NoError(t, err)
	key, err := ParseVAPIDKey(privateB64, publicB64)
	require.NoError(t, err)

	now := time.Now()
	token, err := key.SignToken("https://push.example.net/send/abc123", "ops@example.com", 12*time.Hour, now)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (any, error) {
		return key.signingKey.Public().(*ecdsa.PublicKey), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, "https://push.example.net", claims["aud"])
	assert.Equal(t, "mailto:ops@example.com", claims["sub"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(12*time.Hour), exp.Time, time.Minute)
}

func TestSignToken_TTLCappedAt24Hours(t *testing.T) {
	privateB64, publicB64, err := GenerateVAPIDKeys()
	require.NoError(t, err)
	key, err := ParseVAPIDKey(privateB64, publicB64)
	require.NoError(t, err)

	now := time.Now()
	token, err := key.SignToken("https://push.example.net/send/abc123", "ops@example.com", 72*time.Hour, now)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (any, error) {
		return key.signingKey.Public().(*ecdsa.PublicKey), nil
	})
	require.NoError(t, err)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(maxTokenTTL), exp.Time, time.Minute)
}
