// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"stockwatch/internal/domain/entity"
	"stockwatch/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for stock notification persistence.
var (
	// ErrRequestNotFound is returned when a stock notification request is not found.
	ErrRequestNotFound = errors.New("stock notification request not found")
)

// StockNotificationRepository is the durable store of pending/sent
// notification requests, keyed by (product, subscription).
//
// It is the sole writer of a request's status. MarkSent must be safe to call
// concurrently for different request ids and idempotent for the same id.
type StockNotificationRepository interface {
	// CreateRequest persists a new request with status pending.
	//
	// Dedup policy: creating a request while a pending one already exists for
	// the same (productID, subscription endpoint) pair returns the existing
	// request untouched instead of inserting a duplicate.
	CreateRequest(ctx context.Context, request *entity.StockNotificationRequest) (*entity.StockNotificationRequest, error)

	// FindRequestByID retrieves a request by its unique ID.
	// Returns ErrRequestNotFound if the id does not exist.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.StockNotificationRequest, error)

	// ListPendingByProduct retrieves all requests with status pending for a
	// product, ordered by creation time ascending (first-asked, first-served).
	ListPendingByProduct(ctx context.Context, productID string) ([]*entity.StockNotificationRequest, error)

	// CountPendingByProduct reports how many requests still await delivery for a product.
	CountPendingByProduct(ctx context.Context, productID string) (int64, error)

	// MarkSent transitions a request from pending to sent. It is a no-op (not
	// an error) when the request is already sent, so dispatcher retries are
	// tolerated. Returns ErrRequestNotFound for unknown ids.
	MarkSent(ctx context.Context, id uuid.UUID) error

	// DeleteByEndpoint removes every request bound to the given subscription
	// endpoint. Used when a visitor revokes their opt-in; delivery itself
	// never deletes requests.
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}
