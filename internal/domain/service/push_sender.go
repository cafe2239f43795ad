// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"

	"stockwatch/internal/domain/entity"
	"stockwatch/internal/errors"
)

// Delivery outcome errors returned by PushSender implementations. Callers
// classify them with errors.Is to decide between retry, stale-endpoint
// cleanup and unrecoverable absorption.
var (
	// ErrDeliveryTransient marks a failure worth retrying: 429, 5xx, a
	// timed-out attempt, or a network error.
	ErrDeliveryTransient = errors.New("push delivery failed transiently")
	// ErrDeliveryGone marks an endpoint the push service reports as
	// permanently dead (404/410). Never retried.
	ErrDeliveryGone = errors.New("push endpoint is gone")
	// ErrDeliveryRejected marks any other permanent rejection by the push
	// service. Never retried.
	ErrDeliveryRejected = errors.New("push delivery rejected")
)

// PushPayload is the ephemeral application-level message constructed by the
// dispatcher immediately before encryption. It is never stored.
//
// The decrypted wire contract consumed by the notification receiver is JSON
// with the keys title, text and productId.
type PushPayload struct {
	Title     string `json:"title"`     // Store name, shown as the notification title.
	Text      string `json:"text"`      // Restock text, shown as the notification body.
	ProductID string `json:"productId"` // Routing metadata for notification clicks.
}

// SendResult reports what the push service answered for a single delivery.
type SendResult struct {
	StatusCode int // HTTP status returned by the push service; zero when the request never completed.
}

// PushSender delivers one encrypted payload to one subscription's endpoint.
//
// A 2xx answer means the push service accepted the message for delivery, not
// that the device received it. Non-success outcomes are surfaced through the
// delivery outcome errors above.
type PushSender interface {
	Send(ctx context.Context, subscription *entity.PushSubscription, payload *PushPayload) (*SendResult, error)
}
