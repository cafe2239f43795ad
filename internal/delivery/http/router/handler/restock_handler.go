package handler

import (
	"log/slog"
	"net/http"

	"stockwatch/internal/delivery/http/response"
	"stockwatch/internal/usecase"
	usecaseimpl "stockwatch/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RestockHandlerParams holds dependencies for RestockHandler, injected by Fx.
type RestockHandlerParams struct {
	fx.In

	StockAlertUC usecase.StockAlertUsecase
	Logger       *slog.Logger
}

// RestockHandler receives restock signals from the inventory system.
type RestockHandler struct {
	stockAlertUC usecase.StockAlertUsecase
	logger       *slog.Logger
}

// NewRestockHandler is the constructor for RestockHandler
func NewRestockHandler(params RestockHandlerParams) *RestockHandler {
	return &RestockHandler{
		stockAlertUC: params.StockAlertUC,
		logger:       params.Logger,
	}
}

// NotifyRestockRequest represents the request body for the restock trigger
type NotifyRestockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// NotifyRestock accepts a zero-to-positive stock transition and queues the
// dispatch cycle. The response is 202: delivery happens asynchronously.
func (h *RestockHandler) NotifyRestock(c echo.Context) error {
	var req NotifyRestockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.stockAlertUC.NotifyRestock(c.Request().Context(), req.ProductID); err != nil {
		if errors.Is(err, usecaseimpl.ErrEmptyProductID) {
			return response.BadRequest(c, "INVALID_INPUT", err.Error())
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"product_id": req.ProductID,
	}, "Restock event accepted")
}
