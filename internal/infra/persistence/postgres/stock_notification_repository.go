// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"stockwatch/internal/domain/entity"
	domainerrors "stockwatch/internal/domain/errors"
	"stockwatch/internal/domain/repository"
	"stockwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stockNotificationRepository implements the repository.StockNotificationRepository interface.
type stockNotificationRepository struct {
	db *gorm.DB
}

// NewStockNotificationRepository is the constructor for stockNotificationRepository.
func NewStockNotificationRepository(db *gorm.DB) repository.StockNotificationRepository {
	return &stockNotificationRepository{
		db: db,
	}
}

// CreateRequest persists a new request with status pending.
//
// Dedup policy is upsert-by-endpoint: a pending request already stored for the
// same (productID, endpoint) pair is returned untouched instead of inserting a
// duplicate, so repeated opt-ins on the same product page are idempotent.
func (repo *stockNotificationRepository) CreateRequest(ctx context.Context, request *entity.StockNotificationRequest) (*entity.StockNotificationRequest, error) {
	var existing model.StockNotificationRequestModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ? AND endpoint = ? AND status = ?",
			request.ProductID, request.Subscription.Endpoint, string(entity.StatusPending)).
		First(&existing).Error
	if err == nil {
		return toRequestDomain(&existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing pending request")
	}

	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrRequestCreationFailed.WrapMessage("missing required request information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create stock notification request")
	}

	// Update the entity with generated values
	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt

	return request, nil
}

// FindRequestByID retrieves a request by its unique ID.
func (repo *stockNotificationRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.StockNotificationRequest, error) {
	var requestM model.StockNotificationRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// ListPendingByProduct retrieves all pending requests for a product,
// first-asked first-served.
func (repo *stockNotificationRepository) ListPendingByProduct(ctx context.Context, productID string) ([]*entity.StockNotificationRequest, error) {
	var requestModels []*model.StockNotificationRequestModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND status = ?", productID, string(entity.StatusPending)).
		Order("created_at ASC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending requests")
	}

	requests := make([]*entity.StockNotificationRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

// CountPendingByProduct reports how many requests still await delivery for a product.
func (repo *stockNotificationRepository) CountPendingByProduct(ctx context.Context, productID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.StockNotificationRequestModel{}).
		Where("product_id = ? AND status = ?", productID, string(entity.StatusPending)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pending requests")
	}

	return count, nil
}

// MarkSent transitions a request from pending to sent.
//
// The guarded single UPDATE keeps concurrent calls safe; when no row changes
// the id is re-checked so a second call on an already-sent request is a no-op
// rather than an error.
func (repo *stockNotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StockNotificationRequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Update("status", string(entity.StatusSent))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark request sent")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var requestM model.StockNotificationRequestModel
	if err := repo.db.WithContext(ctx).
		Select("id").
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to verify request after mark sent")
	}

	// Row exists but no transition happened: already sent, idempotent no-op.
	return nil
}

// DeleteByEndpoint removes every request bound to the given subscription endpoint.
func (repo *stockNotificationRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	if err := repo.db.WithContext(ctx).
		Where("endpoint = ?", endpoint).
		Delete(&model.StockNotificationRequestModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete requests by endpoint")
	}

	return nil
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM StockNotificationRequestModel to a domain StockNotificationRequest entity.
func toRequestDomain(data *model.StockNotificationRequestModel) *entity.StockNotificationRequest {
	if data == nil {
		return nil
	}

	return &entity.StockNotificationRequest{
		ID:        data.ID,
		ProductID: data.ProductID,
		DeviceInfo: entity.DeviceInfo{
			UserAgent: data.UserAgent,
			Platform:  data.Platform,
			Language:  data.Language,
		},
		Subscription: &entity.PushSubscription{
			Endpoint:       data.Endpoint,
			ExpirationTime: data.ExpirationTime,
			Keys: entity.SubscriptionKeys{
				P256dh: data.P256dh,
				Auth:   data.Auth,
			},
		},
		Status:    entity.RequestStatus(data.Status),
		CreatedAt: data.CreatedAt,
	}
}

// fromRequestDomain converts a domain StockNotificationRequest entity to a GORM StockNotificationRequestModel.
func fromRequestDomain(data *entity.StockNotificationRequest) *model.StockNotificationRequestModel {
	if data == nil {
		return nil
	}

	requestM := &model.StockNotificationRequestModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserAgent: data.DeviceInfo.UserAgent,
		Platform:  data.DeviceInfo.Platform,
		Language:  data.DeviceInfo.Language,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
	}

	if data.Subscription != nil {
		requestM.Endpoint = data.Subscription.Endpoint
		requestM.P256dh = data.Subscription.Keys.P256dh
		requestM.Auth = data.Subscription.Keys.Auth
		requestM.ExpirationTime = data.Subscription.ExpirationTime
	}

	return requestM
}
