package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stockwatch/config"
	deliverycontext "stockwatch/internal/delivery/context"
	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/repository"
	"stockwatch/internal/domain/service"
	"stockwatch/internal/errors"
	"stockwatch/internal/usecase"

	"golang.org/x/sync/errgroup"
)

// deliveryOutcome is the terminal classification of one request's dispatch.
type deliveryOutcome int

const (
	outcomeSent deliveryOutcome = iota
	outcomeStale
	outcomeRejected
	outcomeRemaining
)

type dispatchService struct {
	requestRepo repository.StockNotificationRepository
	sender      service.PushSender
	staleSink   service.StaleEndpointSink
	logger      *slog.Logger

	title          string
	restockText    string
	workers        int
	maxAttempts    int
	backoffBase    time.Duration
	attemptTimeout time.Duration
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	cfg *config.Config,
	requestRepo repository.StockNotificationRepository,
	sender service.PushSender,
	staleSink service.StaleEndpointSink,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		requestRepo:    requestRepo,
		sender:         sender,
		staleSink:      staleSink,
		logger:         logger,
		title:          cfg.Store.Name,
		restockText:    cfg.Store.RestockText,
		workers:        cfg.Dispatch.Workers,
		maxAttempts:    cfg.Dispatch.MaxAttempts,
		backoffBase:    cfg.Dispatch.BackoffBase,
		attemptTimeout: cfg.Dispatch.AttemptTimeout,
	}
}

// DispatchProduct delivers a notification to every pending request for the
// product. Requests are processed oldest first through a bounded worker pool;
// every outcome except a transient failure ends with the request marked sent,
// so a request is notified at most once per restock.
func (s *dispatchService) DispatchProduct(ctx context.Context, productID string) (*usecase.DispatchSummary, error) {
	if productID == "" {
		return nil, ErrEmptyProductID
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	requests, err := s.requestRepo.ListPendingByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending requests")
	}

	summary := &usecase.DispatchSummary{ProductID: productID}
	if len(requests) == 0 {
		logger.Info("[Dispatch] No pending requests for product",
			slog.String("product_id", productID),
		)

		return summary, nil
	}

	logger.Info("[Dispatch] Starting dispatch cycle",
		slog.String("product_id", productID),
		slog.Int("pending", len(requests)),
	)

	payload := &service.PushPayload{
		Title:     s.title,
		Text:      s.restockText,
		ProductID: productID,
	}

	var mu sync.Mutex
	group := new(errgroup.Group)
	group.SetLimit(s.workers)

	for _, request := range requests {
		group.Go(func() error {
			outcome := s.deliver(ctx, logger, request, payload)

			mu.Lock()
			switch outcome {
			case outcomeSent:
				summary.Sent++
			case outcomeStale:
				summary.Stale++
			case outcomeRejected:
				summary.Rejected++
			case outcomeRemaining:
				summary.Remaining++
			}
			mu.Unlock()

			// A failed subscription never fails the cycle.
			return nil
		})
	}
	_ = group.Wait()

	logger.Info("[Dispatch] Dispatch cycle finished",
		slog.String("product_id", productID),
		slog.Int("sent", summary.Sent),
		slog.Int("stale", summary.Stale),
		slog.Int("rejected", summary.Rejected),
		slog.Int("remaining", summary.Remaining),
	)

	return summary, nil
}

// deliver runs the attempt loop for a single request and settles its status.
func (s *dispatchService) deliver(ctx context.Context, logger *slog.Logger, request *entity.StockNotificationRequest, payload *service.PushPayload) deliveryOutcome {
	if !request.Deliverable(time.Now()) {
		// Expired or malformed subscriptions can never be reached again.
		// They are settled, not flagged: the stale sink is reserved for
		// endpoints the push service itself reported gone.
		logger.Warn("[Dispatch] Subscription undeliverable, settling without attempt",
			slog.String("request_id", request.ID.String()),
		)
		s.markSent(ctx, logger, request)

		return outcomeRejected
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
		result, err := s.sender.Send(attemptCtx, request.Subscription, payload)
		cancel()

		switch {
		case err == nil:
			s.markSent(ctx, logger, request)

			return outcomeSent

		case errors.Is(err, service.ErrDeliveryGone):
			s.flagStale(ctx, logger, request)
			s.markSent(ctx, logger, request)

			return outcomeStale

		case errors.Is(err, service.ErrDeliveryTransient):
			lastErr = err
			logger.Warn("[Dispatch] Transient delivery failure",
				slog.String("request_id", request.ID.String()),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
			if attempt < s.maxAttempts && !s.backoff(ctx, attempt) {
				// Cycle cancelled while waiting; the request stays pending.
				return outcomeRemaining
			}

		default:
			// The push service understood the request and refused it.
			// Retrying an identical message cannot change the answer, so
			// the request is settled to keep the pipeline moving.
			statusCode := 0
			if result != nil {
				statusCode = result.StatusCode
			}
			logger.Warn("[Dispatch] Delivery rejected by push service",
				slog.String("request_id", request.ID.String()),
				slog.Int("status_code", statusCode),
				slog.Any("error", err),
			)
			s.markSent(ctx, logger, request)

			return outcomeRejected
		}
	}

	// Attempts exhausted; the request stays pending for the next restock cycle.
	logger.Warn("[Dispatch] Delivery attempts exhausted, request stays pending",
		slog.String("request_id", request.ID.String()),
		slog.Int("attempts", s.maxAttempts),
		slog.Any("error", lastErr),
	)

	return outcomeRemaining
}

// backoff sleeps before the next attempt, doubling the delay each retry.
// It reports false when the context ended first.
func (s *dispatchService) backoff(ctx context.Context, attempt int) bool {
	delay := s.backoffBase << (attempt - 1)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// markSent settles the request. MarkSent is idempotent, so a retry that lost
// the race with another worker is harmless.
func (s *dispatchService) markSent(ctx context.Context, logger *slog.Logger, request *entity.StockNotificationRequest) {
	if err := s.requestRepo.MarkSent(ctx, request.ID); err != nil {
		logger.Error("[Dispatch] Failed to mark request sent",
			slog.String("request_id", request.ID.String()),
			slog.Any("error", err),
		)
	}
}

// flagStale records the endpoint once so the owning system can prune it.
func (s *dispatchService) flagStale(ctx context.Context, logger *slog.Logger, request *entity.StockNotificationRequest) {
	if request.Subscription == nil {
		return
	}
	if err := s.staleSink.RecordStale(ctx, request.Subscription.Endpoint); err != nil {
		logger.Error("[Dispatch] Failed to record stale endpoint",
			slog.String("request_id", request.ID.String()),
			slog.Any("error", err),
		)
	}
}
