package handlers

import (
	"topup_store_echo/internal/models"

	"github.com/labstack/echo/v4"
)

// credentialsRequest carries the login/register form fields
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// purchaseRequest is a confirmed product selection from the storefront
type purchaseRequest struct {
	GameID        string `json:"game_id"`
	ProductID     string `json:"product_id"`
	PaymentMethod string `json:"payment_method"`
}

// paymentNotification is a gateway callback settling a pending order
type paymentNotification struct {
	OrderID string             `json:"order_id"`
	Status  models.OrderStatus `json:"status"`
}

// sessionFromContext returns the session the auth middleware stored, or nil
// on unguarded routes.
func sessionFromContext(c echo.Context) *models.Session {
	val := c.Get("session")
	if val == nil {
		return nil
	}
	sess, ok := val.(*models.Session)
	if !ok {
		return nil
	}
	return sess
}
