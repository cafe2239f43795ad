package webpush

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockwatch/config"
	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/service"
	"stockwatch/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSender(t *testing.T) service.PushSender {
	t.Helper()

	privateB64, publicB64, err := GenerateVAPIDKeys()
	require.NoError(t, err)

	sender, err := NewSender(SenderParams{
		Config: &config.Config{
			VAPID: &config.VAPIDConfig{
				PrivateKey: privateB64,
				PublicKey:  publicB64,
				Subscriber: "ops@example.com",
				TokenTTL:   12 * time.Hour,
				MessageTTL: 24 * time.Hour,
			},
		},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	return sender
}

func testSubscription(t *testing.T, endpoint string) *entity.PushSubscription {
	t.Helper()

	_, _, p256dh, auth := newSubscriptionKeys(t)

	return &entity.PushSubscription{
		Endpoint: endpoint,
		Keys: entity.SubscriptionKeys{
			P256dh: p256dh,
			Auth:   auth,
		},
	}
}

func TestWebPushSender_Send_Success(t *testing.T) {
	var gotHeaders http.Header
	var gotBodyLen int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		gotBodyLen = len(body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sender := newTestSender(t)
	payload := &service.PushPayload{Title: "商品到貨通知", Text: "您關注的商品已補貨", ProductID: "prod-42"}

	result, err := sender.Send(context.Background(), testSubscription(t, server.URL+"/send/abc"), payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, result.StatusCode)

	assert.Equal(t, "aes128gcm", gotHeaders.Get("Content-Encoding"))
	assert.Equal(t, "application/octet-stream", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "86400", gotHeaders.Get("TTL"))
	assert.Regexp(t, `^vapid t=\S+, k=\S+$`, gotHeaders.Get("Authorization"))
	// salt || rs || idlen || as_public precede the ciphertext.
	assert.Greater(t, gotBodyLen, saltLength+4+1+publicKeyLength)
}

func TestWebPushSender_Send_GoneEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	sender := newTestSender(t)

	result, err := sender.Send(context.Background(), testSubscription(t, server.URL), &service.PushPayload{ProductID: "prod-42"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrDeliveryGone))
	assert.Equal(t, http.StatusGone, result.StatusCode)
}

func TestWebPushSender_Send_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	sender := newTestSender(t)

	result, err := sender.Send(context.Background(), testSubscription(t, server.URL), &service.PushPayload{ProductID: "prod-42"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrDeliveryRejected))
	assert.Equal(t, http.StatusBadRequest, result.StatusCode)
}

func TestWebPushSender_Send_RateLimitedIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	sender := newTestSender(t)

	result, err := sender.Send(context.Background(), testSubscription(t, server.URL), &service.PushPayload{ProductID: "prod-42"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrDeliveryTransient))
	assert.Equal(t, http.StatusTooManyRequests, result.StatusCode)
}

func TestWebPushSender_Send_TransportErrorIsTransient(t *testing.T) {
	sender := newTestSender(t)

	_, err := sender.Send(context.Background(), testSubscription(t, "http://127.0.0.1:1/send"), &service.PushPayload{ProductID: "prod-42"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrDeliveryTransient))
}

func TestWebPushSender_Send_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	sender := newTestSender(t)
	subscription := testSubscription(t, server.URL)

	for i := 0; i < 5; i++ {
		_, err := sender.Send(context.Background(), subscription, &service.PushPayload{ProductID: "prod-42"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, service.ErrDeliveryTransient))
	}
}

func TestWebPushSender_Send_InvalidSubscription(t *testing.T) {
	sender := newTestSender(t)

	_, err := sender.Send(context.Background(), &entity.PushSubscription{}, &service.PushPayload{ProductID: "prod-42"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrDeliveryRejected))
}
