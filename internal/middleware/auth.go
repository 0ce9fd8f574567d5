package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"topup_store_echo/internal/services"
)

// RequireSession returns a middleware that rejects requests while nobody is
// signed in and exposes the active session to downstream handlers.
func RequireSession(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, authErr := auth.GetCurrentSession(c.Request().Context())
			if authErr != nil {
				return echo.NewHTTPError(http.StatusBadGateway, authErr.Message)
			}
			if sess == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Please log in to continue.")
			}

			c.Set("session", sess)
			return next(c)
		}
	}
}
