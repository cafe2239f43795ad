// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stockwatch/internal/delivery/http/middleware"
	"stockwatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StockAlertHandler *handler.StockAlertHandler
	RestockHandler    *handler.RestockHandler
	InternalAuthMW    *middleware.InternalAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	stockAlertHandler *handler.StockAlertHandler
	restockHandler    *handler.RestockHandler
	internalAuthMW    *middleware.InternalAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		stockAlertHandler: params.StockAlertHandler,
		restockHandler:    params.RestockHandler,
		internalAuthMW:    params.InternalAuthMW,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront API
	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/stock-alerts", r.stockAlertHandler.CreateStockAlert)
		apiGroup.DELETE("/stock-alerts", r.stockAlertHandler.CancelStockAlert)
		apiGroup.GET("/products/:productId/pending-count", r.stockAlertHandler.GetPendingCount)
		apiGroup.GET("/push/public-key", r.stockAlertHandler.GetPublicKey)
	}

	// Internal routes called by the inventory system, never by browsers
	internalGroup := e.Group("/internal")
	internalGroup.Use(r.internalAuthMW.Authenticate)
	{
		internalGroup.POST("/restock", r.restockHandler.NotifyRestock)
	}
}
