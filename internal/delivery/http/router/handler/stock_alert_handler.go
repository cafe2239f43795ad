package handler

import (
	"log/slog"
	"net/http"
	"time"

	"stockwatch/config"
	"stockwatch/internal/delivery/http/response"
	"stockwatch/internal/domain/entity"
	"stockwatch/internal/usecase"
	usecaseimpl "stockwatch/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StockAlertHandlerParams holds dependencies for StockAlertHandler, injected by Fx.
type StockAlertHandlerParams struct {
	fx.In

	Config       *config.Config
	StockAlertUC usecase.StockAlertUsecase
	Logger       *slog.Logger
}

// StockAlertHandler holds dependencies for stock-alert-related handlers
type StockAlertHandler struct {
	cfg          *config.Config
	stockAlertUC usecase.StockAlertUsecase
	logger       *slog.Logger
}

// NewStockAlertHandler is the constructor for StockAlertHandler
func NewStockAlertHandler(params StockAlertHandlerParams) *StockAlertHandler {
	return &StockAlertHandler{
		cfg:          params.Config,
		stockAlertUC: params.StockAlertUC,
		logger:       params.Logger,
	}
}

// SubscriptionKeysRequest carries the client's encryption key material.
type SubscriptionKeysRequest struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

// SubscriptionRequest mirrors the browser's PushSubscription JSON shape.
type SubscriptionRequest struct {
	Endpoint       string                  `json:"endpoint" validate:"required,url"`
	ExpirationTime *time.Time              `json:"expirationTime,omitempty"`
	Keys           SubscriptionKeysRequest `json:"keys" validate:"required"`
}

// DeviceInfoRequest carries optional diagnostic metadata about the client.
type DeviceInfoRequest struct {
	UserAgent string `json:"user_agent,omitempty"`
	Platform  string `json:"platform,omitempty"`
	Language  string `json:"language,omitempty"`
}

// CreateStockAlertRequest represents the request body for creating a stock alert
type CreateStockAlertRequest struct {
	ProductID    string              `json:"product_id" validate:"required"`
	Subscription SubscriptionRequest `json:"subscription" validate:"required"`
	DeviceInfo   *DeviceInfoRequest  `json:"device_info,omitempty"`
}

// CreateStockAlert handles a visitor opting in to a back-in-stock notification
func (h *StockAlertHandler) CreateStockAlert(c echo.Context) error {
	var req CreateStockAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateStockAlertInput{
		ProductID: req.ProductID,
		Subscription: &entity.PushSubscription{
			Endpoint:       req.Subscription.Endpoint,
			ExpirationTime: req.Subscription.ExpirationTime,
			Keys: entity.SubscriptionKeys{
				P256dh: req.Subscription.Keys.P256dh,
				Auth:   req.Subscription.Keys.Auth,
			},
		},
	}
	if req.DeviceInfo != nil {
		input.DeviceInfo = entity.DeviceInfo{
			UserAgent: req.DeviceInfo.UserAgent,
			Platform:  req.DeviceInfo.Platform,
			Language:  req.DeviceInfo.Language,
		}
	}

	request, err := h.stockAlertUC.CreateStockAlert(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidSubscription) || errors.Is(err, usecaseimpl.ErrEmptyProductID) {
			return response.BadRequest(c, "INVALID_SUBSCRIPTION", err.Error())
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Stock alert registered successfully")
}

// CancelStockAlert handles a visitor revoking their opt-in
func (h *StockAlertHandler) CancelStockAlert(c echo.Context) error {
	endpoint := c.QueryParam("endpoint")
	if endpoint == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter endpoint is required")
	}

	if err := h.stockAlertUC.CancelStockAlert(c.Request().Context(), endpoint); err != nil {
		if errors.Is(err, entity.ErrInvalidSubscription) {
			return response.BadRequest(c, "INVALID_SUBSCRIPTION", err.Error())
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Stock alert cancelled"}, "Stock alert cancelled successfully")
}

// GetPendingCount reports how many visitors await a product's restock
func (h *StockAlertHandler) GetPendingCount(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Path parameter productId is required")
	}

	count, err := h.stockAlertUC.PendingCount(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product_id":    productID,
		"pending_count": count,
	}, "Pending count retrieved successfully")
}

// GetPublicKey returns the application server key clients pass as
// applicationServerKey when subscribing.
func (h *StockAlertHandler) GetPublicKey(c echo.Context) error {
	if h.cfg.VAPID == nil || h.cfg.VAPID.PublicKey == "" {
		return response.NotFound(c, "PUSH_DISABLED", "Push notifications are not configured")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"public_key": h.cfg.VAPID.PublicKey,
	}, "Public key retrieved successfully")
}
