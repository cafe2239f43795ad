package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockwatch/config"
	"stockwatch/internal/delivery/http/validator"
	"stockwatch/internal/domain/entity"
	mockUC "stockwatch/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStockAlertHandler(t *testing.T) (*StockAlertHandler, *mockUC.MockStockAlertUsecase) {
	stockAlertUC := mockUC.NewMockStockAlertUsecase(t)
	cfg := &config.Config{
		VAPID: &config.VAPIDConfig{PublicKey: "BKeyMaterial"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := &StockAlertHandler{
		cfg:          cfg,
		stockAlertUC: stockAlertUC,
		logger:       logger,
	}

	return handler, stockAlertUC
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestStockAlertHandler_CreateStockAlert_Success(t *testing.T) {
	handler, stockAlertUC := newTestStockAlertHandler(t)

	body := `{
		"product_id": "prod-42",
		"subscription": {
			"endpoint": "https://push.example.net/send/abc123",
			"keys": {"p256dh": "BPubKey", "auth": "AuthSecret"}
		},
		"device_info": {"user_agent": "Mozilla/5.0", "platform": "MacIntel", "language": "zh-TW"}
	}`
	c, rec := newJSONContext(http.MethodPost, "/api/stock-alerts", body)

	stockAlertUC.EXPECT().
		CreateStockAlert(mock.Anything, mock.Anything).
		Return(&entity.StockNotificationRequest{
			ID:        uuid.New(),
			ProductID: "prod-42",
			Status:    entity.StatusPending,
		}, nil)

	err := handler.CreateStockAlert(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "prod-42")
	assert.Contains(t, rec.Body.String(), "pending")
}

func TestStockAlertHandler_CreateStockAlert_MissingSubscription(t *testing.T) {
	handler, _ := newTestStockAlertHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/api/stock-alerts", `{"product_id": "prod-42"}`)

	err := handler.CreateStockAlert(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStockAlertHandler_CreateStockAlert_InvalidSubscription(t *testing.T) {
	handler, stockAlertUC := newTestStockAlertHandler(t)

	body := `{
		"product_id": "prod-42",
		"subscription": {
			"endpoint": "https://push.example.net/send/abc123",
			"keys": {"p256dh": "BPubKey", "auth": "AuthSecret"}
		}
	}`
	c, rec := newJSONContext(http.MethodPost, "/api/stock-alerts", body)

	stockAlertUC.EXPECT().
		CreateStockAlert(mock.Anything, mock.Anything).
		Return(nil, entity.ErrInvalidSubscription)

	err := handler.CreateStockAlert(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_SUBSCRIPTION")
}

func TestStockAlertHandler_CancelStockAlert_Success(t *testing.T) {
	handler, stockAlertUC := newTestStockAlertHandler(t)

	c, rec := newJSONContext(http.MethodDelete, "/api/stock-alerts?endpoint=https%3A%2F%2Fpush.example.net%2Fsend%2Fabc123", "")

	stockAlertUC.EXPECT().
		CancelStockAlert(mock.Anything, "https://push.example.net/send/abc123").
		Return(nil)

	err := handler.CancelStockAlert(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStockAlertHandler_CancelStockAlert_MissingEndpoint(t *testing.T) {
	handler, _ := newTestStockAlertHandler(t)

	c, rec := newJSONContext(http.MethodDelete, "/api/stock-alerts", "")

	err := handler.CancelStockAlert(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStockAlertHandler_GetPendingCount(t *testing.T) {
	handler, stockAlertUC := newTestStockAlertHandler(t)

	c, rec := newJSONContext(http.MethodGet, "/api/products/prod-42/pending-count", "")
	c.SetParamNames("productId")
	c.SetParamValues("prod-42")

	stockAlertUC.EXPECT().
		PendingCount(mock.Anything, "prod-42").
		Return(int64(3), nil)

	err := handler.GetPendingCount(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pending_count":3`)
}

func TestStockAlertHandler_GetPublicKey(t *testing.T) {
	handler, _ := newTestStockAlertHandler(t)

	c, rec := newJSONContext(http.MethodGet, "/api/push/public-key", "")

	err := handler.GetPublicKey(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "BKeyMaterial")
}

func TestStockAlertHandler_GetPublicKey_NotConfigured(t *testing.T) {
	handler, _ := newTestStockAlertHandler(t)
	handler.cfg = &config.Config{}

	c, rec := newJSONContext(http.MethodGet, "/api/push/public-key", "")

	err := handler.GetPublicKey(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
