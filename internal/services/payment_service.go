package services

import (
	"context"
	"fmt"

	"topup_store_echo/internal/models"
)

// ChargeRequest describes one charge attempt handed to a gateway. OrderRef is
// the ledger order id; redirect-based gateways echo it back in their
// settlement notification.
type ChargeRequest struct {
	OrderRef      string
	Amount        int64
	Method        string
	Description   string
	CustomerEmail string
}

// ChargeResult is the gateway's verdict. Status is terminal for synchronous
// gateways and pending for redirect-based ones; Reference carries a
// gateway-side reference such as a redirect URL.
type ChargeResult struct {
	Status    models.OrderStatus
	Reference string
}

// PaymentGateway processes a charge for a purchase attempt.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// SimulatedGateway approves every charge locally, standing in for a real
// payment processor. Decline forces a declined outcome for demos and tests.
type SimulatedGateway struct {
	Decline bool
}

// Charge settles immediately with a terminal status. There is no checkout
// redirect, so no reference comes back.
func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if g.Decline {
		return &ChargeResult{Status: models.OrderStatusFailed}, nil
	}
	return &ChargeResult{Status: models.OrderStatusSuccess}, nil
}

// PaymentService sequences the purchase flow: run the payment step, then
// record the order in the ledger with the resulting status.
type PaymentService struct {
	gateway PaymentGateway
	ledger  *OrderLedger
}

// NewPaymentService creates a payment service over the given gateway and ledger.
func NewPaymentService(gateway PaymentGateway, ledger *OrderLedger) *PaymentService {
	return &PaymentService{gateway: gateway, ledger: ledger}
}

// PurchaseInput is a confirmed product selection.
type PurchaseInput struct {
	UserID        string
	CustomerEmail string
	Game          models.Game
	Product       models.Product
	PaymentMethod string
}

func chargeRequest(orderID string, in PurchaseInput) ChargeRequest {
	return ChargeRequest{
		OrderRef:      orderID,
		Amount:        in.Product.Price,
		Method:        in.PaymentMethod,
		Description:   fmt.Sprintf("%s - %s", in.Game.Name, in.Product.Label),
		CustomerEmail: in.CustomerEmail,
	}
}

func newOrder(in PurchaseInput, status models.OrderStatus) models.NewOrder {
	return models.NewOrder{
		GameName:      in.Game.Name,
		ProductName:   in.Product.Label,
		Amount:        in.Product.Price,
		Status:        status,
		UserID:        in.UserID,
		GameImage:     in.Game.Image,
		PaymentMethod: in.PaymentMethod,
	}
}

// Purchase appends the order as pending, charges with the ledger id as the
// gateway reference, then settles it with the gateway's verdict. Redirect
// gateways leave the order pending and their checkout reference is recorded
// on it; their later notification carries the same ledger id. A gateway
// transport failure is recorded as a failed order rather than propagated;
// the amount is fixed at order creation and never recomputed.
func (s *PaymentService) Purchase(ctx context.Context, in PurchaseInput) models.Order {
	order := s.InitiatePurchase(in)

	res, err := s.gateway.Charge(ctx, chargeRequest(order.ID, in))
	if err != nil {
		s.ledger.UpdateStatus(order.ID, models.OrderStatusFailed)
		order.Status = models.OrderStatusFailed
		return order
	}

	s.ledger.UpdateStatus(order.ID, res.Status)
	order.Status = res.Status
	if res.Reference != "" {
		s.ledger.SetPaymentRef(order.ID, res.Reference)
		order.PaymentRef = res.Reference
	}
	return order
}

// InitiatePurchase appends the order as pending before the payment step has
// settled. Redirect-based gateways finish it through SettlePurchase.
func (s *PaymentService) InitiatePurchase(in PurchaseInput) models.Order {
	return s.ledger.Append(newOrder(in, models.OrderStatusPending))
}

// SettlePurchase records the gateway's final verdict for a pending order.
// An unknown order id settles nothing; the ledger keeps that lenient.
func (s *PaymentService) SettlePurchase(orderID string, status models.OrderStatus) {
	s.ledger.UpdateStatus(orderID, status)
}
