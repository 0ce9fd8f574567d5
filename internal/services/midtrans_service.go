package services

import (
	"context"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"topup_store_echo/internal/models"
)

// MidtransGateway charges through Midtrans Snap. Snap transactions settle
// asynchronously, so a successful charge yields a pending order whose
// reference is the checkout redirect URL.
type MidtransGateway struct {
	SnapClient snap.Client
	CoreClient coreapi.Client
}

// NewMidtransGateway configures the Snap and Core API clients.
func NewMidtransGateway(serverKey, clientKey string, production bool) *MidtransGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	var s snap.Client
	s.New(serverKey, env)

	var c coreapi.Client
	c.New(serverKey, env)

	// Set Default Options
	midtrans.ServerKey = serverKey
	midtrans.ClientKey = clientKey
	midtrans.Environment = env

	return &MidtransGateway{
		SnapClient: s,
		CoreClient: c,
	}
}

// Charge creates a Snap transaction for the purchase.
func (g *MidtransGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	param := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderRef,
			GrossAmt: req.Amount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.OrderRef,
				Name:  req.Description,
				Price: req.Amount,
				Qty:   1,
			},
		},
	}
	if req.CustomerEmail != "" {
		param.CustomerDetail = &midtrans.CustomerDetails{Email: req.CustomerEmail}
	}

	resp, err := g.SnapClient.CreateTransaction(param)
	if err != nil {
		return nil, fmt.Errorf("midtrans create transaction error: %v", err)
	}

	return &ChargeResult{Status: models.OrderStatusPending, Reference: resp.RedirectURL}, nil
}

// CheckStatus asks Midtrans for the current state of a transaction.
func (g *MidtransGateway) CheckStatus(orderRef string) (models.OrderStatus, error) {
	resp, err := g.CoreClient.CheckTransaction(orderRef)
	if err != nil {
		return models.OrderStatusPending, fmt.Errorf("midtrans check transaction error: %v", err)
	}
	return statusFromMidtrans(resp.TransactionStatus), nil
}

// statusFromMidtrans maps Midtrans transaction states onto the order status
// enum. Anything not yet terminal stays pending.
func statusFromMidtrans(transactionStatus string) models.OrderStatus {
	switch transactionStatus {
	case "settlement", "capture":
		return models.OrderStatusSuccess
	case "deny", "expire", "cancel", "failure":
		return models.OrderStatusFailed
	default:
		return models.OrderStatusPending
	}
}
