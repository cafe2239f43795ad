package webpush

import (
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionKeys(t *testing.T) (*ecdh.PrivateKey, []byte, string, string) {
	t.Helper()

	uaKey, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	authSecret := make([]byte, authSecretLength)
	_, err = rand.Read(authSecret)
	require.NoError(t, err)

	p256dh := base64.RawURLEncoding.EncodeToString(uaKey.PublicKey().Bytes())
	auth := base64.RawURLEncoding.EncodeToString(authSecret)

	return uaKey, authSecret, p256dh, auth
}

func TestEncryptPayload_RoundTrip(t *testing.T) {
	uaKey, authSecret, p256dh, auth := newSubscriptionKeys(t)

	plaintext := []byte(`{"title":"商品到貨通知","text":"您關注的商品已補貨","productId":"prod-42"}`)

	body, err := EncryptPayload(plaintext, p256dh, auth)
	require.NoError(t, err)

	decrypted, err := DecryptPayload(body, uaKey, authSecret)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncryptPayload_BodyLayout(t *testing.T) {
	_, _, p256dh, auth := newSubscriptionKeys(t)

	body, err := EncryptPayload([]byte("restock"), p256dh, auth)
	require.NoError(t, err)

	// salt(16) || rs(4) || idlen(1) || as_public(65) || ciphertext
	require.Greater(t, len(body), saltLength+4+1+publicKeyLength)
	assert.Equal(t, uint32(recordSize), binary.BigEndian.Uint32(body[saltLength:saltLength+4]))
	assert.Equal(t, byte(publicKeyLength), body[saltLength+4])
	assert.Equal(t, byte(0x04), body[saltLength+5], "application server key must be an uncompressed point")
}

func TestEncryptPayload_UniqueCiphertexts(t *testing.T) {
	_, _, p256dh, auth := newSubscriptionKeys(t)

	first, err := EncryptPayload([]byte("restock"), p256dh, auth)
	require.NoError(t, err)
	second, err := EncryptPayload([]byte("restock"), p256dh, auth)
	require.NoError(t, err)

	// Fresh salt and ephemeral key per message.
	assert.NotEqual(t, first, second)
}

func TestEncryptPayload_InvalidKeys(t *testing.T) {
	_, _, p256dh, auth := newSubscriptionKeys(t)

	_, err := EncryptPayload([]byte("restock"), "not-a-key", auth)
	assert.Error(t, err)

	_, err = EncryptPayload([]byte("restock"), p256dh, "%%%")
	assert.Error(t, err)
}

func TestDecryptPayload_TamperedCiphertext(t *testing.T) {
	uaKey, authSecret, p256dh, auth := newSubscriptionKeys(t)

	body, err := EncryptPayload([]byte("restock"), p256dh, auth)
	require.NoError(t, err)

	body[len(body)-1] ^= 0xff

	_, err = DecryptPayload(body, uaKey, authSecret)
	assert.Error(t, err)
}
