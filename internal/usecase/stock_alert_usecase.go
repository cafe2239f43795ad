package usecase

import (
	"context"

	"stockwatch/internal/domain/entity"
)

// CreateStockAlertInput carries everything a visitor submits when opting in
// to a back-in-stock notification.
type CreateStockAlertInput struct {
	ProductID    string                   `json:"product_id"`
	Subscription *entity.PushSubscription `json:"subscription"`
	DeviceInfo   entity.DeviceInfo        `json:"device_info"`
}

// StockAlertUsecase defines the interface for stock alert management use cases
type StockAlertUsecase interface {
	// CreateStockAlert registers a visitor's request to be notified when the
	// product is back in stock. Re-registering the same endpoint for the same
	// product returns the existing pending request.
	CreateStockAlert(ctx context.Context, input *CreateStockAlertInput) (*entity.StockNotificationRequest, error)

	// CancelStockAlert removes every request bound to the subscription
	// endpoint, for visitors who revoke their opt-in.
	CancelStockAlert(ctx context.Context, endpoint string) error

	// PendingCount reports how many requests still await delivery for a product.
	PendingCount(ctx context.Context, productID string) (int64, error)

	// NotifyRestock publishes a restock event so the dispatch worker picks
	// the product up asynchronously.
	NotifyRestock(ctx context.Context, productID string) error
}
