package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "stockwatch/internal/delivery/context"
	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/repository"
	"stockwatch/internal/domain/service"
	"stockwatch/internal/errors"
	"stockwatch/internal/usecase"

	"github.com/google/uuid"
)

// ErrEmptyProductID is returned when a stock alert names no product.
var ErrEmptyProductID = errors.New("product id must not be empty")

type stockAlertService struct {
	requestRepo repository.StockNotificationRepository
	publisher   service.EventPublisher
}

// NewStockAlertService creates a new stock alert service instance
func NewStockAlertService(
	requestRepo repository.StockNotificationRepository,
	publisher service.EventPublisher,
) usecase.StockAlertUsecase {
	return &stockAlertService{
		requestRepo: requestRepo,
		publisher:   publisher,
	}
}

// CreateStockAlert registers a visitor's request to be notified on restock.
// The subscription is validated before anything touches the database: a
// request without a working push destination is undeliverable garbage.
func (s *stockAlertService) CreateStockAlert(ctx context.Context, input *usecase.CreateStockAlertInput) (*entity.StockNotificationRequest, error) {
	if input.ProductID == "" {
		return nil, ErrEmptyProductID
	}
	if err := input.Subscription.Validate(); err != nil {
		return nil, err
	}
	if input.Subscription.Expired(time.Now()) {
		return nil, errors.Wrap(entity.ErrInvalidSubscription, "subscription already expired")
	}

	request := &entity.StockNotificationRequest{
		ID:           uuid.New(),
		ProductID:    input.ProductID,
		DeviceInfo:   input.DeviceInfo,
		Subscription: input.Subscription,
		Status:       entity.StatusPending,
		CreatedAt:    time.Now(),
	}

	created, err := s.requestRepo.CreateRequest(ctx, request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stock notification request")
	}

	return created, nil
}

// CancelStockAlert removes every request bound to the endpoint.
func (s *stockAlertService) CancelStockAlert(ctx context.Context, endpoint string) error {
	if endpoint == "" {
		return errors.Wrap(entity.ErrInvalidSubscription, "endpoint must not be empty")
	}

	return s.requestRepo.DeleteByEndpoint(ctx, endpoint)
}

// PendingCount reports how many requests still await delivery for a product.
func (s *stockAlertService) PendingCount(ctx context.Context, productID string) (int64, error) {
	if productID == "" {
		return 0, ErrEmptyProductID
	}

	return s.requestRepo.CountPendingByProduct(ctx, productID)
}

// NotifyRestock publishes a restock event for async dispatch.
func (s *stockAlertService) NotifyRestock(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrEmptyProductID
	}

	event := &service.RestockEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ProductID: productID,
	}

	if err := s.publisher.PublishRestockEvent(ctx, event); err != nil {
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			logger.Error("Failed to publish restock event",
				slog.String("product_id", productID),
				slog.Any("error", err),
			)
		}

		return errors.Wrap(err, "failed to publish restock event")
	}

	return nil
}
