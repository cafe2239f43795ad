package service

import (
	"context"
)

// RestockEvent signals that a product's stock transitioned from zero to
// positive. It is the sole entry point for a dispatch cycle.
type RestockEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	ProductID string `json:"product_id"`
}

// EventPublisher defines the interface for publishing restock events to the
// dispatch worker.
type EventPublisher interface {
	// PublishRestockEvent publishes a restock event for async processing
	PublishRestockEvent(ctx context.Context, event *RestockEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
