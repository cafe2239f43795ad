package postgres

import (
	"context"
	"time"

	"stockwatch/internal/domain/service"
	"stockwatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// staleEndpointSink implements the service.StaleEndpointSink interface.
type staleEndpointSink struct {
	db *gorm.DB
}

// NewStaleEndpointSink is the constructor for staleEndpointSink.
func NewStaleEndpointSink(db *gorm.DB) service.StaleEndpointSink {
	return &staleEndpointSink{
		db: db,
	}
}

// RecordStale flags a dead push endpoint for out-of-band cleanup. The
// ON CONFLICT DO NOTHING clause keeps re-flagging harmless.
func (sink *staleEndpointSink) RecordStale(ctx context.Context, endpoint string) error {
	staleM := &model.StalePushEndpointModel{
		Endpoint:  endpoint,
		FlaggedAt: time.Now(),
	}

	if err := sink.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(staleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return errors.Wrap(err, "failed to record stale endpoint")
	}

	return nil
}
