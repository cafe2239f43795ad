package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"stockwatch/config"

	"github.com/labstack/echo/v4"
)

// InternalAuthMiddleware guards internal routes with a shared bearer token.
// The restock trigger is called by the inventory system, never by browsers.
type InternalAuthMiddleware struct {
	cfg *config.Config
}

// NewInternalAuthMiddleware is the constructor for InternalAuthMiddleware.
func NewInternalAuthMiddleware(cfg *config.Config) *InternalAuthMiddleware {
	return &InternalAuthMiddleware{cfg: cfg}
}

// Authenticate validates the shared token on internal routes.
func (m *InternalAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.cfg.InternalAuth == nil || m.cfg.InternalAuth.Token == "" {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Internal routes are disabled"})
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		if subtle.ConstantTimeCompare([]byte(tokenString), []byte(m.cfg.InternalAuth.Token)) != 1 {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid internal token"})
		}

		return next(c)
	}
}
