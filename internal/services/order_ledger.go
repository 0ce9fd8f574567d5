package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"topup_store_echo/internal/models"
)

// OrderLedger is the in-process store of purchase attempts. It is the only
// writer of its records; readers always receive snapshots, never live views.
// Records live only for the process lifetime.
type OrderLedger struct {
	mu     sync.Mutex
	orders []models.Order
}

// NewOrderLedger creates an empty ledger.
func NewOrderLedger() *OrderLedger {
	return &OrderLedger{}
}

// newOrderID combines the creation instant with a random suffix. Uniqueness
// within the process is the only requirement; insertion order, not the id,
// carries the recency ordering.
func newOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix)
}

// Append records a purchase attempt, assigning its id and creation date, and
// returns the fully populated order. The new order becomes the first element
// in iteration order.
func (l *OrderLedger) Append(in models.NewOrder) models.Order {
	order := models.Order{
		ID:            newOrderID(),
		GameName:      in.GameName,
		ProductName:   in.ProductName,
		Amount:        in.Amount,
		Status:        in.Status,
		Date:          time.Now().Format("2006-01-02"),
		UserID:        in.UserID,
		GameImage:     in.GameImage,
		PaymentMethod: in.PaymentMethod,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append([]models.Order{order}, l.orders...)
	return order
}

// ListAll returns a snapshot of every order, most recent first.
func (l *OrderLedger) ListAll() []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// ListByUser returns a snapshot of the orders whose user id matches exactly,
// most recent first. An unknown user yields an empty slice, never an error.
func (l *OrderLedger) ListByUser(userID string) []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Order, 0)
	for _, o := range l.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// UpdateStatus replaces the status of the matching order in place. An
// unknown order id is a silent no-op; downstream flows rely on that.
func (l *OrderLedger) UpdateStatus(orderID string, status models.OrderStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.orders {
		if l.orders[i].ID == orderID {
			l.orders[i].Status = status
			return
		}
	}
}

// SetPaymentRef records the gateway-side reference of the matching order.
// An unknown order id is a silent no-op, like UpdateStatus.
func (l *OrderLedger) SetPaymentRef(orderID, ref string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.orders {
		if l.orders[i].ID == orderID {
			l.orders[i].PaymentRef = ref
			return
		}
	}
}

// ClearForUser removes every order owned by userID. Clearing twice, or
// clearing a user with no orders, succeeds silently.
func (l *OrderLedger) ClearForUser(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := make([]models.Order, 0, len(l.orders))
	for _, o := range l.orders {
		if o.UserID != userID {
			kept = append(kept, o)
		}
	}
	l.orders = kept
}

// ClearAll empties the ledger unconditionally.
func (l *OrderLedger) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = nil
}

// SeedSampleOrders appends a fixed set of demo orders for the given user,
// covering every status. Debug use only.
func (l *OrderLedger) SeedSampleOrders(userID string) {
	samples := []models.NewOrder{
		{GameName: "Mobile Legends", ProductName: "86 Diamond", Amount: 12000, Status: models.OrderStatusSuccess, UserID: userID, PaymentMethod: "DANA"},
		{GameName: "Free Fire", ProductName: "70 Diamond", Amount: 10000, Status: models.OrderStatusPending, UserID: userID, PaymentMethod: "OVO"},
		{GameName: "Valorant", ProductName: "125 VP", Amount: 15000, Status: models.OrderStatusFailed, UserID: userID, PaymentMethod: "GoPay"},
		{GameName: "PUBG Mobile", ProductName: "325 UC", Amount: 45000, Status: models.OrderStatusSuccess, UserID: userID, PaymentMethod: "Bank Transfer"},
	}
	for _, s := range samples {
		l.Append(s)
	}
}
