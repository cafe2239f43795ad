package webpush

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"math/big"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// maxTokenTTL is the protocol upper bound for a VAPID token's expiry.
const maxTokenTTL = 24 * time.Hour

// VAPIDKey is the application server key pair used to sign proof-of-origin
// tokens. The private key is the 32-byte P-256 scalar, the public key the
// 65-byte uncompressed point; both travel base64url-encoded in config.
type VAPIDKey struct {
	signingKey *ecdsa.PrivateKey
	publicB64  string
}

// ParseVAPIDKey reconstructs the application server key pair from its
// base64url-encoded halves and verifies they belong together.
func ParseVAPIDKey(privateB64, publicB64 string) (*VAPIDKey, error) {
	scalar, err := decodeKey(privateB64)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode VAPID private key")
	}
	if len(scalar) != 32 {
		return nil, errors.Errorf("VAPID private key must be a 32-byte scalar, got %d bytes", len(scalar))
	}

	ecdhKey, err := ecdh.P256().NewPrivateKey(scalar)
	if err != nil {
		return nil, errors.Wrap(err, "VAPID private key is not a valid P-256 scalar")
	}
	derivedPublic := base64.RawURLEncoding.EncodeToString(ecdhKey.PublicKey().Bytes())

	curve := elliptic.P256()
	x, y := curve.ScalarBaseMult(scalar)
	signingKey := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
		D:         new(big.Int).SetBytes(scalar),
	}
	if publicB64 != "" {
		configured, err := decodeKey(publicB64)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode VAPID public key")
		}
		if base64.RawURLEncoding.EncodeToString(configured) != derivedPublic {
			return nil, errors.New("VAPID public key does not match the private key")
		}
	}

	return &VAPIDKey{
		signingKey: signingKey,
		publicB64:  derivedPublic,
	}, nil
}

// PublicKey returns the base64url-encoded uncompressed public key, the value
// clients pass as applicationServerKey when subscribing.
func (k *VAPIDKey) PublicKey() string {
	return k.publicB64
}

// SignToken produces the ES256 JWT carried in the Authorization header.
// The audience is the push service origin derived from the endpoint, the
// expiry is bounded by the protocol's 24 hour cap, and the subject is the
// operator contact.
func (k *VAPIDKey) SignToken(endpoint, subscriber string, ttl time.Duration, now time.Time) (string, error) {
	endpointURL, err := url.Parse(endpoint)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse endpoint URL")
	}
	if endpointURL.Scheme == "" || endpointURL.Host == "" {
		return "", errors.Errorf("endpoint %q has no origin", endpoint)
	}

	if ttl <= 0 || ttl > maxTokenTTL {
		ttl = maxTokenTTL
	}

	claims := jwt.MapClaims{
		"aud": endpointURL.Scheme + "://" + endpointURL.Host,
		"exp": now.Add(ttl).Unix(),
		"sub": "mailto:" + subscriber,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(k.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign VAPID token")
	}

	return token, nil
}

// GenerateVAPIDKeys creates a fresh application server key pair, returned in
// the base64url encoding expected by config and by browser clients.
func GenerateVAPIDKeys() (privateB64, publicB64 string, err error) {
	key, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate key pair")
	}

	privateB64 = base64.RawURLEncoding.EncodeToString(key.Bytes())
	publicB64 = base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes())

	return privateB64, publicB64, nil
}
