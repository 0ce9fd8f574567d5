package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"topup_store_echo/internal/services"
)

// OrderHandler handles the purchase flow and transaction history
type OrderHandler struct {
	ledger   *services.OrderLedger
	catalog  *services.Catalog
	payments *services.PaymentService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(ledger *services.OrderLedger, catalog *services.Catalog, payments *services.PaymentService) *OrderHandler {
	return &OrderHandler{ledger: ledger, catalog: catalog, payments: payments}
}

// ListOrders returns the current user's transaction history, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	sess := sessionFromContext(c)
	if sess == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Please log in to continue.")
	}
	return c.JSON(http.StatusOK, h.ledger.ListByUser(sess.User.ID))
}

// CreateOrder runs the purchase flow for a confirmed selection: resolve the
// product, run the payment step, record the order with the resulting status.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	sess := sessionFromContext(c)
	if sess == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Please log in to continue.")
	}

	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.GameID == "" || req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Game and product are required")
	}
	if req.PaymentMethod != "" && !h.catalog.ValidPaymentMethod(req.PaymentMethod) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown payment method")
	}

	game, product, ok := h.catalog.FindProduct(req.GameID, req.ProductID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Game or product not found")
	}

	order := h.payments.Purchase(c.Request().Context(), services.PurchaseInput{
		UserID:        sess.User.ID,
		CustomerEmail: sess.User.Email,
		Game:          game,
		Product:       product,
		PaymentMethod: req.PaymentMethod,
	})
	return c.JSON(http.StatusCreated, order)
}

// HandlePaymentNotification settles a pending order from a gateway callback.
// An unknown order id is accepted and ignored, matching the ledger contract.
func (h *OrderHandler) HandlePaymentNotification(c echo.Context) error {
	var n paymentNotification
	if err := c.Bind(&n); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if n.OrderID == "" || !n.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Order id and a known status are required")
	}

	h.payments.SettlePurchase(n.OrderID, n.Status)
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SeedSampleOrders fills the current user's history with demo orders
func (h *OrderHandler) SeedSampleOrders(c echo.Context) error {
	sess := sessionFromContext(c)
	if sess == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Please log in to continue.")
	}
	h.ledger.SeedSampleOrders(sess.User.ID)
	return c.JSON(http.StatusCreated, h.ledger.ListByUser(sess.User.ID))
}

// ClearOrders empties the whole ledger. Debug/administrative use.
func (h *OrderHandler) ClearOrders(c echo.Context) error {
	h.ledger.ClearAll()
	return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
}
