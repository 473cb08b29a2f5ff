// Package provider defines the narrow surface the payment core needs from an
// external payment provider. Provider payloads are parsed into these typed
// shapes at the boundary; raw provider JSON never reaches the state machine.
package provider

//go:generate go run go.uber.org/mock/mockgen -source=./provider.go -destination=./mocks/provider_mock.go -package=mocks

import (
	"context"
)

// CreateOrderRequest describes a checkout order for one appointment.
type CreateOrderRequest struct {
	Title           string
	AmountCents     int64
	Reference       string
	NotificationURL string
	CustomerEmail   string
}

// CreateOrderResponse carries the provider's order handle and the URL the
// customer completes payment at.
type CreateOrderResponse struct {
	OrderID     string
	CheckoutURL string
}

// Charge is one paid (or attempted) segment of an order.
type Charge struct {
	ID        string
	PaidCents int64
	Canceled  bool
}

// OrderState is the provider's current view of an order, normalized. Canceled
// refers to the order itself, not to individual charges.
type OrderState struct {
	ID       string
	Canceled bool
	Charges  []Charge
}

// Gateway is the payment-provider client. Implementations wrap a concrete
// SDK; callers bound each call with the request context.
type Gateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (CreateOrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (OrderState, error)
	// RefundCharge refunds amountCents of the charge, or the full remaining
	// amount when amountCents is zero.
	RefundCharge(ctx context.Context, chargeID string, amountCents int64) error
}
