package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stockwatch/internal/domain/service"
	mockUC "stockwatch/internal/mocks/usecase"
	"stockwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockDispatchUsecase) {
	dispatchUC := mockUC.NewMockDispatchUsecase(t)

	return &PushHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		dispatchUC:     dispatchUC,
	}, dispatchUC
}

func pushMessageBody(t *testing.T, event *service.RestockEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{Subscription: "projects/local/subscriptions/restock-sub"}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{"product_id": event.ProductID}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	handler, dispatchUC := newTestPushHandler(t)

	c, rec := newPushContext(pushMessageBody(t, &service.RestockEvent{ProductID: "prod-42"}))

	dispatchUC.EXPECT().
		DispatchProduct(mock.Anything, "prod-42").
		Return(&usecase.DispatchSummary{ProductID: "prod-42", Sent: 2}, nil)

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_DispatchErrorIsRetried(t *testing.T) {
	handler, dispatchUC := newTestPushHandler(t)

	c, rec := newPushContext(pushMessageBody(t, &service.RestockEvent{ProductID: "prod-42"}))

	dispatchUC.EXPECT().
		DispatchProduct(mock.Anything, "prod-42").
		Return(nil, errors.New("database unavailable"))

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_InvalidBase64(t *testing.T) {
	handler, _ := newTestPushHandler(t)

	c, rec := newPushContext(`{"message": {"data": "%%%not-base64%%%"}}`)

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_MissingProductID(t *testing.T) {
	handler, _ := newTestPushHandler(t)

	c, rec := newPushContext(pushMessageBody(t, &service.RestockEvent{}))

	err := handler.HandlePush(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_ExtractRequestID_PrefersAttributes(t *testing.T) {
	handler, _ := newTestPushHandler(t)

	msg := &PubSubMessage{}
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{"request_id": "attr-id"}

	id := handler.extractRequestID(t.Context(), msg, &service.RestockEvent{RequestID: "event-id"})

	assert.Equal(t, "attr-id", id)
}

func TestPushHandler_ExtractRequestID_FallsBackToMessageID(t *testing.T) {
	handler, _ := newTestPushHandler(t)

	msg := &PubSubMessage{}
	msg.Message.MessageID = "msg-1"

	id := handler.extractRequestID(t.Context(), msg, &service.RestockEvent{})

	assert.Equal(t, "msg-1", id)
}
