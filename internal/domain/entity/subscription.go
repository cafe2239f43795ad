// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"stockwatch/internal/errors"
)

// ErrInvalidSubscription is returned when a push subscription is missing its
// endpoint or key material. Such a subscription must never be persisted.
var ErrInvalidSubscription = errors.New("invalid push subscription: endpoint, p256dh and auth are required")

// SubscriptionKeys holds the key material the push service hands out for a
// single device+browser installation. Both values are base64url-encoded.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"` // The device's P-256 public key, used for message encryption.
	Auth   string `json:"auth"`   // The 16-byte shared authentication secret, used in key derivation.
}

// PushSubscription represents a device's registered push destination plus the
// key material needed to encrypt messages to it.
type PushSubscription struct {
	Endpoint       string           `json:"endpoint"`                  // Opaque URL identifying the push service and the destination device.
	ExpirationTime *time.Time       `json:"expiration_time,omitempty"` // Optional timestamp after which the endpoint is invalid.
	Keys           SubscriptionKeys `json:"keys"`                      // Encryption key material for this destination.
}

// Validate reports whether the subscription carries everything needed to
// address and encrypt a push message. An incomplete subscription is rejected
// at creation and never persisted.
func (s *PushSubscription) Validate() error {
	if s == nil || s.Endpoint == "" || s.Keys.P256dh == "" || s.Keys.Auth == "" {
		return ErrInvalidSubscription
	}

	return nil
}

// Expired reports whether the subscription's endpoint has passed its
// expiration time at the given instant.
func (s *PushSubscription) Expired(now time.Time) bool {
	return s != nil && s.ExpirationTime != nil && now.After(*s.ExpirationTime)
}
