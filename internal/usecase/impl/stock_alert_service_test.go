package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "stockwatch/internal/delivery/context"
	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/service"
	mockRepo "stockwatch/internal/mocks/repository"
	mockSvc "stockwatch/internal/mocks/service"
	"stockwatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestStockAlertService(t *testing.T) (
	usecase.StockAlertUsecase,
	*mockRepo.MockStockNotificationRepository,
	*mockSvc.MockEventPublisher,
) {
	requestRepo := mockRepo.NewMockStockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return NewStockAlertService(requestRepo, publisher), requestRepo, publisher
}

func validSubscription() *entity.PushSubscription {
	return &entity.PushSubscription{
		Endpoint: "https://push.example.net/send/abc123",
		Keys: entity.SubscriptionKeys{
			P256dh: "BODFgW43cauj3DflOn5nL0zRjbJxJLyjnEeLqkO86dGsNsbqZC0BMTbY8urrW7dGUCUSPDDJEvVxHW0sgVMBD1E",
			Auth:   "yPvr-mHMpJC0UDLvQqPYAg",
		},
	}
}

func TestStockAlertService_CreateStockAlert_Success(t *testing.T) {
	alertService, requestRepo, _ := createTestStockAlertService(t)

	ctx := context.Background()
	input := &usecase.CreateStockAlertInput{
		ProductID:    "prod-42",
		Subscription: validSubscription(),
		DeviceInfo: entity.DeviceInfo{
			UserAgent: "Mozilla/5.0",
			Platform:  "MacIntel",
			Language:  "zh-TW",
		},
	}

	requestRepo.EXPECT().
		CreateRequest(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, request *entity.StockNotificationRequest) (*entity.StockNotificationRequest, error) {
			assert.Equal(t, "prod-42", request.ProductID)
			assert.Equal(t, entity.StatusPending, request.Status)
			assert.NotZero(t, request.ID)
			assert.False(t, request.CreatedAt.IsZero())

			return request, nil
		})

	created, err := alertService.CreateStockAlert(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "prod-42", created.ProductID)
	assert.Equal(t, entity.StatusPending, created.Status)
}

func TestStockAlertService_CreateStockAlert_EmptyProductID(t *testing.T) {
	alertService, _, _ := createTestStockAlertService(t)

	_, err := alertService.CreateStockAlert(context.Background(), &usecase.CreateStockAlertInput{
		Subscription: validSubscription(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyProductID)
}

func TestStockAlertService_CreateStockAlert_InvalidSubscription(t *testing.T) {
	alertService, _, _ := createTestStockAlertService(t)

	_, err := alertService.CreateStockAlert(context.Background(), &usecase.CreateStockAlertInput{
		ProductID:    "prod-42",
		Subscription: &entity.PushSubscription{Endpoint: "https://push.example.net/send/abc123"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidSubscription)
}

func TestStockAlertService_CreateStockAlert_ExpiredSubscription(t *testing.T) {
	alertService, _, _ := createTestStockAlertService(t)

	expired := time.Now().Add(-time.Hour)
	subscription := validSubscription()
	subscription.ExpirationTime = &expired

	_, err := alertService.CreateStockAlert(context.Background(), &usecase.CreateStockAlertInput{
		ProductID:    "prod-42",
		Subscription: subscription,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidSubscription)
}

func TestStockAlertService_CreateStockAlert_RepositoryError(t *testing.T) {
	alertService, requestRepo, _ := createTestStockAlertService(t)

	ctx := context.Background()
	requestRepo.EXPECT().
		CreateRequest(ctx, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	_, err := alertService.CreateStockAlert(ctx, &usecase.CreateStockAlertInput{
		ProductID:    "prod-42",
		Subscription: validSubscription(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestStockAlertService_CancelStockAlert_Success(t *testing.T) {
	alertService, requestRepo, _ := createTestStockAlertService(t)

	ctx := context.Background()
	requestRepo.EXPECT().
		DeleteByEndpoint(ctx, "https://push.example.net/send/abc123").
		Return(nil)

	err := alertService.CancelStockAlert(ctx, "https://push.example.net/send/abc123")

	require.NoError(t, err)
}

func TestStockAlertService_CancelStockAlert_EmptyEndpoint(t *testing.T) {
	alertService, _, _ := createTestStockAlertService(t)

	err := alertService.CancelStockAlert(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidSubscription)
}

func TestStockAlertService_PendingCount(t *testing.T) {
	alertService, requestRepo, _ := createTestStockAlertService(t)

	ctx := context.Background()
	requestRepo.EXPECT().
		CountPendingByProduct(ctx, "prod-42").
		Return(int64(7), nil)

	count, err := alertService.PendingCount(ctx, "prod-42")

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestStockAlertService_NotifyRestock_Success(t *testing.T) {
	alertService, _, publisher := createTestStockAlertService(t)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	publisher.EXPECT().
		PublishRestockEvent(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.RestockEvent) error {
			assert.Equal(t, "prod-42", event.ProductID)
			assert.Equal(t, "req-123", event.RequestID)

			return nil
		})

	err := alertService.NotifyRestock(ctx, "prod-42")

	require.NoError(t, err)
}

func TestStockAlertService_NotifyRestock_PublishError(t *testing.T) {
	alertService, _, publisher := createTestStockAlertService(t)

	ctx := context.Background()
	publisher.EXPECT().
		PublishRestockEvent(ctx, mock.Anything).
		Return(errors.New("broker unreachable"))

	err := alertService.NotifyRestock(ctx, "prod-42")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish restock event")
}

func TestStockAlertService_NotifyRestock_EmptyProductID(t *testing.T) {
	alertService, _, _ := createTestStockAlertService(t)

	err := alertService.NotifyRestock(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyProductID)
}
