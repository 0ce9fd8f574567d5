package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"topup_store_echo/internal/models"
	"topup_store_echo/internal/services"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	auth   *services.AuthService
	ledger *services.OrderLedger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *services.AuthService, ledger *services.OrderLedger) *AuthHandler {
	return &AuthHandler{auth: auth, ledger: ledger}
}

// HandleRegister creates a new account; on success its session becomes active
func (h *AuthHandler) HandleRegister(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	sess, authErr := h.auth.SignUp(c.Request().Context(), req.Email, req.Password, req.Name)
	if authErr != nil {
		return c.JSON(authErrorStatus(authErr), authErr)
	}
	return c.JSON(http.StatusCreated, sess)
}

// HandleLogin exchanges credentials for a session
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	sess, authErr := h.auth.SignIn(c.Request().Context(), req.Email, req.Password)
	if authErr != nil {
		return c.JSON(authErrorStatus(authErr), authErr)
	}
	return c.JSON(http.StatusOK, sess)
}

// HandleLogout clears the departing user's order history, then invalidates
// the session. Logging out while signed out succeeds silently.
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	sess, _ := h.auth.GetCurrentSession(c.Request().Context())
	if sess != nil {
		h.ledger.ClearForUser(sess.User.ID)
	}

	if authErr := h.auth.SignOut(c.Request().Context()); authErr != nil {
		return c.JSON(authErrorStatus(authErr), authErr)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

// Session returns the current session projection, null when signed out
func (h *AuthHandler) Session(c echo.Context) error {
	sess, authErr := h.auth.GetCurrentSession(c.Request().Context())
	if authErr != nil {
		return c.JSON(authErrorStatus(authErr), authErr)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"session": sess})
}

// authErrorStatus maps the closed error taxonomy onto HTTP statuses. The
// client decides the user-facing wording; the server never localizes.
func authErrorStatus(e *models.AuthError) int {
	switch e.Code {
	case models.AuthErrInvalidCredentials:
		return http.StatusUnauthorized
	case models.AuthErrEmailNotConfirmed:
		return http.StatusForbidden
	case models.AuthErrEmailExists:
		return http.StatusConflict
	case models.AuthErrNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
