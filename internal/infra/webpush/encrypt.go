// Package webpush implements the Web Push wire protocol: aes128gcm message
// encryption (RFC 8291), VAPID proof-of-origin tokens (RFC 8292) and the
// HTTP delivery to the push service endpoint.
package webpush

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

const (
	// recordSize is the rs field of the aes128gcm content header. A single
	// record always fits a push payload (the push service caps bodies at 4KB).
	recordSize = 4096

	saltLength       = 16
	authSecretLength = 16
	publicKeyLength  = 65 // uncompressed P-256 point
	cekLength        = 16
	nonceLength      = 12

	// lastRecordDelimiter terminates the final (here: only) record's plaintext.
	lastRecordDelimiter = 0x02
)

// EncryptPayload encrypts plaintext for one subscriber per RFC 8291.
//
// An ephemeral P-256 key pair is agreed against the subscriber's p256dh key,
// the content-encryption key and nonce are derived via HKDF seeded with the
// auth secret, and the payload is sealed with AES-128-GCM. The returned body
// is the aes128gcm coding: salt(16) || rs(4) || idlen(1) || as_public(65) ||
// ciphertext, ready to be posted to the endpoint.
func EncryptPayload(plaintext []byte, p256dh, auth string) ([]byte, error) {
	uaPublicRaw, err := decodeKey(p256dh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode p256dh key")
	}

	authSecret, err := decodeKey(auth)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode auth secret")
	}
	if len(authSecret) != authSecretLength {
		return nil, errors.Errorf("auth secret must be %d bytes, got %d", authSecretLength, len(authSecret))
	}

	curve := ecdh.P256()
	uaPublic, err := curve.NewPublicKey(uaPublicRaw)
	if err != nil {
		return nil, errors.Wrap(err, "p256dh is not a valid P-256 public key")
	}

	asPrivate, err := curve.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate ephemeral key pair")
	}
	asPublicRaw := asPrivate.PublicKey().Bytes()

	ecdhSecret, err := asPrivate.ECDH(uaPublic)
	if err != nil {
		return nil, errors.Wrap(err, "ECDH agreement failed")
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	cek, nonce, err := deriveKeys(ecdhSecret, authSecret, salt, uaPublicRaw, asPublicRaw)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(cek)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	record := make([]byte, 0, len(plaintext)+1)
	record = append(record, plaintext...)
	record = append(record, lastRecordDelimiter)
	ciphertext := gcm.Seal(nil, nonce, record, nil)

	// Content header per RFC 8188 §2.1.
	body := make([]byte, 0, saltLength+4+1+publicKeyLength+len(ciphertext))
	body = append(body, salt...)
	body = binary.BigEndian.AppendUint32(body, recordSize)
	body = append(body, byte(len(asPublicRaw)))
	body = append(body, asPublicRaw...)
	body = append(body, ciphertext...)

	return body, nil
}

// DecryptPayload reverses EncryptPayload given the subscriber's private key
// and auth secret. The dispatcher never calls this; it backs the round-trip
// tests and operational debugging of captured message bodies.
func DecryptPayload(body []byte, uaPrivate *ecdh.PrivateKey, authSecret []byte) ([]byte, error) {
	headerLength := saltLength + 4 + 1
	if len(body) < headerLength {
		return nil, errors.New("message body shorter than aes128gcm header")
	}

	salt := body[:saltLength]
	idLength := int(body[saltLength+4])
	if len(body) < headerLength+idLength {
		return nil, errors.New("message body truncated inside key id")
	}
	asPublicRaw := body[headerLength : headerLength+idLength]
	ciphertext := body[headerLength+idLength:]

	curve := ecdh.P256()
	asPublic, err := curve.NewPublicKey(asPublicRaw)
	if err != nil {
		return nil, errors.Wrap(err, "sender key id is not a valid P-256 public key")
	}

	ecdhSecret, err := uaPrivate.ECDH(asPublic)
	if err != nil {
		return nil, errors.Wrap(err, "ECDH agreement failed")
	}

	uaPublicRaw := uaPrivate.PublicKey().Bytes()
	cek, nonce, err := deriveKeys(ecdhSecret, authSecret, salt, uaPublicRaw, asPublicRaw)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(cek)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	record, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sealed record")
	}

	// Strip padding: trailing zeros after the delimiter octet.
	end := len(record)
	for end > 0 && record[end-1] == 0x00 {
		end--
	}
	if end == 0 || record[end-1] != lastRecordDelimiter {
		return nil, errors.New("missing record delimiter in decrypted payload")
	}

	return record[:end-1], nil
}

// deriveKeys runs the RFC 8291 key schedule, yielding the content-encryption
// key and nonce shared by sealing and opening.
func deriveKeys(ecdhSecret, authSecret, salt, uaPublicRaw, asPublicRaw []byte) (cek, nonce []byte, err error) {
	keyInfo := make([]byte, 0, len("WebPush: info")+1+2*publicKeyLength)
	keyInfo = append(keyInfo, []byte("WebPush: info")...)
	keyInfo = append(keyInfo, 0x00)
	keyInfo = append(keyInfo, uaPublicRaw...)
	keyInfo = append(keyInfo, asPublicRaw...)

	ikm, err := hkdfDerive(ecdhSecret, authSecret, keyInfo, 32)
	if err != nil {
		return nil, nil, err
	}

	cek, err = hkdfDerive(ikm, salt, []byte("Content-Encoding: aes128gcm\x00"), cekLength)
	if err != nil {
		return nil, nil, err
	}

	nonce, err = hkdfDerive(ikm, salt, []byte("Content-Encoding: nonce\x00"), nonceLength)
	if err != nil {
		return nil, nil, err
	}

	return cek, nonce, nil
}

func hkdfDerive(secret, salt, info []byte, length int) ([]byte, error) {
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), out); err != nil {
		return nil, errors.Wrap(err, "HKDF derivation failed")
	}

	return out, nil
}

// decodeKey accepts both padded and unpadded base64url, which subscriptions
// in the wild mix freely.
func decodeKey(value string) ([]byte, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(value, "="))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return decoded, nil
}
