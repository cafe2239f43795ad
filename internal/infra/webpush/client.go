package webpush

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"stockwatch/config"
	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/service"
	"stockwatch/internal/errors"

	"github.com/sony/gobreaker"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for the web push sender, injected by Fx.
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// webPushSender implements service.PushSender over the Web Push protocol.
// A circuit breaker per push-service host keeps one misbehaving relay from
// burning delivery attempts for everyone else.
type webPushSender struct {
	httpClient *http.Client
	key        *VAPIDKey
	subscriber string
	tokenTTL   time.Duration
	messageTTL time.Duration
	logger     *slog.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewSender creates the web push sender from the VAPID configuration.
func NewSender(params SenderParams) (service.PushSender, error) {
	vapidCfg := params.Config.VAPID
	if vapidCfg == nil {
		return nil, errors.New("vapid configuration is required for push dispatch")
	}

	key, err := ParseVAPIDKey(vapidCfg.PrivateKey, vapidCfg.PublicKey)
	if err != nil {
		return nil, err
	}

	return &webPushSender{
		httpClient: &http.Client{},
		key:        key,
		subscriber: vapidCfg.Subscriber,
		tokenTTL:   vapidCfg.TokenTTL,
		messageTTL: vapidCfg.MessageTTL,
		logger:     params.Logger,
		breakers:   make(map[string]*gobreaker.CircuitBreaker),
	}, nil
}

// statusError is returned inside the breaker for answers that signal push
// service distress, so the breaker's failure counting sees them.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("push service returned status %d", e.code)
}

// Send encrypts the payload for the subscription and posts it to the
// endpoint. The attempt deadline comes from ctx; the caller owns retries.
func (s *webPushSender) Send(ctx context.Context, subscription *entity.PushSubscription, payload *service.PushPayload) (*service.SendResult, error) {
	if err := subscription.Validate(); err != nil {
		return nil, errors.Wrap(service.ErrDeliveryRejected, err.Error())
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(service.ErrDeliveryRejected, err.Error())
	}

	body, err := EncryptPayload(plaintext, subscription.Keys.P256dh, subscription.Keys.Auth)
	if err != nil {
		// Undecodable key material can never succeed.
		return nil, errors.Wrap(service.ErrDeliveryRejected, err.Error())
	}

	token, err := s.key.SignToken(subscription.Endpoint, s.subscriber, s.tokenTTL, time.Now())
	if err != nil {
		return nil, errors.Wrap(service.ErrDeliveryRejected, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, subscription.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(service.ErrDeliveryRejected, err.Error())
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Content-Encoding", "aes128gcm")
	req.Header.Set("TTL", strconv.Itoa(int(s.messageTTL.Seconds())))
	req.Header.Set("Urgency", "normal")
	req.Header.Set("Authorization", fmt.Sprintf("vapid t=%s, k=%s", token, s.key.PublicKey()))

	result, err := s.breakerFor(subscription.Endpoint).Execute(func() (any, error) {
		resp, doErr := s.httpClient.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		defer resp.Body.Close()
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, &statusError{code: resp.StatusCode}
		}

		return resp.StatusCode, nil
	})
	if err != nil {
		var se *statusError
		if errors.As(err, &se) {
			return &service.SendResult{StatusCode: se.code}, errors.Wrap(service.ErrDeliveryTransient, se.Error())
		}
		// Open breaker, timeouts and transport errors are all worth a retry.
		return nil, errors.Wrap(service.ErrDeliveryTransient, err.Error())
	}

	statusCode, _ := result.(int)
	sendResult := &service.SendResult{StatusCode: statusCode}

	switch {
	case statusCode >= 200 && statusCode < 300:
		return sendResult, nil
	case statusCode == http.StatusNotFound || statusCode == http.StatusGone:
		return sendResult, errors.Wrapf(service.ErrDeliveryGone, "endpoint responded %d", statusCode)
	default:
		return sendResult, errors.Wrapf(service.ErrDeliveryRejected, "endpoint responded %d", statusCode)
	}
}

// breakerFor returns the circuit breaker for the endpoint's host, creating it
// on first use.
func (s *webPushSender) breakerFor(endpoint string) *gobreaker.CircuitBreaker {
	host := endpoint
	if parsed, err := url.Parse(endpoint); err == nil && parsed.Host != "" {
		host = parsed.Host
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if breaker, ok := s.breakers[host]; ok {
		return breaker
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        host,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn("Push service breaker state changed",
				slog.String("host", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	s.breakers[host] = breaker

	return breaker
}
