package model

import (
	"time"

	"github.com/google/uuid"
)

// StockNotificationRequestModel is the GORM-specific struct for the
// 'stock_notification_requests' table. One row per opt-in; the subscription
// is flattened into columns since it is immutable once stored.
type StockNotificationRequestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID string    `gorm:"type:text;not null;index:idx_stock_requests_product_status,priority:1"`
	Status    string    `gorm:"type:text;not null;default:'pending';index:idx_stock_requests_product_status,priority:2"`

	// Device diagnostics, immutable once set.
	UserAgent string `gorm:"type:text"`
	Platform  string `gorm:"type:text"`
	Language  string `gorm:"type:text"`

	// Push subscription. Validated before persistence, so the key columns are
	// non-null for every stored row.
	Endpoint       string `gorm:"type:text;not null;index"`
	P256dh         string `gorm:"type:text;not null"`
	Auth           string `gorm:"type:text;not null"`
	ExpirationTime *time.Time

	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockNotificationRequestModel) TableName() string {
	return "stock_notification_requests"
}

// StalePushEndpointModel is the GORM-specific struct for the
// 'stale_push_endpoints' table. Rows are written by the dispatcher when the
// push service reports an endpoint gone and drained by an external cleanup
// job; the endpoint primary key keeps each flagged at most once.
type StalePushEndpointModel struct {
	Endpoint  string `gorm:"type:text;primary_key"`
	FlaggedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StalePushEndpointModel) TableName() string {
	return "stale_push_endpoints"
}
