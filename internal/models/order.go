package models

// OrderStatus represents the state of a purchase attempt
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusSuccess OrderStatus = "success"
	OrderStatusFailed  OrderStatus = "failed"
)

// Valid reports whether s is one of the known order statuses
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusSuccess, OrderStatusFailed:
		return true
	}
	return false
}

// Order records a single purchase attempt in the ledger
type Order struct {
	ID            string      `json:"id"`
	GameName      string      `json:"game_name"`
	ProductName   string      `json:"product_name"`
	Amount        int64       `json:"amount"` // smallest currency unit
	Status        OrderStatus `json:"status"`
	Date          string      `json:"date"` // calendar date, YYYY-MM-DD
	UserID        string      `json:"user_id"`
	GameImage     string      `json:"game_image,omitempty"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	PaymentRef    string      `json:"payment_ref,omitempty"` // gateway-side reference, e.g. a checkout redirect URL
}

// NewOrder carries the caller-supplied fields of an order before the ledger
// assigns its id and creation date
type NewOrder struct {
	GameName      string
	ProductName   string
	Amount        int64
	Status        OrderStatus
	UserID        string
	GameImage     string
	PaymentMethod string
}
