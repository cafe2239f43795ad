// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a stock notification request.
// The only transition is StatusPending -> StatusSent; expiry and delivery
// failures are handled elsewhere and never produce another state.
type RequestStatus string

const (
	// StatusPending marks a request that still awaits delivery.
	StatusPending RequestStatus = "pending"
	// StatusSent marks a request whose notification has been handed to the push service.
	StatusSent RequestStatus = "sent"
)

// DeviceInfo is diagnostic metadata captured when a visitor opts in.
// It is immutable once set.
type DeviceInfo struct {
	UserAgent string `json:"user_agent"` // The browser's user agent string.
	Platform  string `json:"platform"`   // The client platform (e.g. "MacIntel", "Android").
	Language  string `json:"language"`   // The browser's preferred language tag.
}

// StockNotificationRequest represents a visitor's intent to be notified when
// an out-of-stock product becomes available again.
//
// Each request is owned by exactly one device+product pair. The store is the
// sole writer of Status; the dispatcher terminally updates it to sent via the
// store, and the request is never deleted by this subsystem.
type StockNotificationRequest struct {
	ID           uuid.UUID         `json:"id"`           // The Global Unique Identifier (GUID) for the request, assigned at creation.
	ProductID    string            `json:"product_id"`   // The product the visitor wants restocked. Treated as opaque, never validated against the catalog here.
	DeviceInfo   DeviceInfo        `json:"device_info"`  // Diagnostic metadata, immutable once set.
	Subscription *PushSubscription `json:"subscription"` // The push destination. Absent only transiently before registration completes.
	Status       RequestStatus     `json:"status"`       // pending or sent, one-directional.
	CreatedAt    time.Time         `json:"created_at"`   // Timestamp of when the visitor opted in, immutable.
}

// Deliverable reports whether the request carries a subscription that can
// still be addressed at the given instant.
func (r *StockNotificationRequest) Deliverable(now time.Time) bool {
	return r != nil && r.Subscription.Validate() == nil && !r.Subscription.Expired(now)
}
