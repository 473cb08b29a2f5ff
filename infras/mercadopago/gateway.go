// Package mercadopago adapts the Mercado Pago SDK to the payment provider
// gateway. Checkout uses a preference (hosted checkout), order state comes
// from the merchant order, and refunds go through the payments refund API.
// Monetary amounts cross the boundary here: the core speaks integer cents,
// the SDK speaks decimal units.
package mercadopago

import (
	"context"
	"fmt"
	"math"
	"strconv"

	appProvider "agendo/internal/domains/payment/provider"

	mpConfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/merchantorder"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/rs/zerolog/log"
)

type gatewayImpl struct {
	preferences preference.Client
	orders      merchantorder.Client
	refunds     refund.Client
}

func NewGateway(accessToken string) (appProvider.Gateway, error) {
	cfg, err := mpConfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to configure mercadopago sdk: %w", err)
	}

	log.Info().Msg("mercadopago gateway initialized")

	return &gatewayImpl{
		preferences: preference.NewClient(cfg),
		orders:      merchantorder.NewClient(cfg),
		refunds:     refund.NewClient(cfg),
	}, nil
}

func (g *gatewayImpl) CreateOrder(ctx context.Context, req appProvider.CreateOrderRequest) (appProvider.CreateOrderResponse, error) {
	request := preference.Request{
		ExternalReference: req.Reference,
		NotificationURL:   req.NotificationURL,
		Items: []preference.ItemRequest{
			{
				Title:     req.Title,
				Quantity:  1,
				UnitPrice: centsToUnits(req.AmountCents),
			},
		},
	}

	resp, err := g.preferences.Create(ctx, request)
	if err != nil {
		return appProvider.CreateOrderResponse{}, fmt.Errorf("failed to create preference: %w", err)
	}

	return appProvider.CreateOrderResponse{
		OrderID:     resp.ID,
		CheckoutURL: resp.InitPoint,
	}, nil
}

func (g *gatewayImpl) GetOrder(ctx context.Context, orderID string) (appProvider.OrderState, error) {
	id, err := strconv.Atoi(orderID)
	if err != nil {
		return appProvider.OrderState{}, fmt.Errorf("invalid merchant order id %q: %w", orderID, err)
	}

	resp, err := g.orders.Get(ctx, id)
	if err != nil {
		return appProvider.OrderState{}, fmt.Errorf("failed to get merchant order: %w", err)
	}

	state := appProvider.OrderState{
		ID:       orderID,
		Canceled: resp.Cancelled,
	}

	for _, payment := range resp.Payments {
		state.Charges = append(state.Charges, appProvider.Charge{
			ID:        strconv.Itoa(payment.ID),
			PaidCents: unitsToCents(payment.TotalPaidAmount),
			Canceled:  chargeCanceled(payment.Status),
		})
	}

	return state, nil
}

func (g *gatewayImpl) RefundCharge(ctx context.Context, chargeID string, amountCents int64) error {
	paymentID, err := strconv.Atoi(chargeID)
	if err != nil {
		return fmt.Errorf("invalid payment id %q: %w", chargeID, err)
	}

	if amountCents <= 0 {
		if _, err := g.refunds.Create(ctx, paymentID); err != nil {
			return fmt.Errorf("failed to refund payment %d: %w", paymentID, err)
		}

		return nil
	}

	if _, err := g.refunds.CreatePartialRefund(ctx, paymentID, centsToUnits(amountCents)); err != nil {
		return fmt.Errorf("failed to partially refund payment %d: %w", paymentID, err)
	}

	return nil
}

func chargeCanceled(status string) bool {
	switch status {
	case "cancelled", "refunded", "charged_back":
		return true
	default:
		return false
	}
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}

func unitsToCents(units float64) int64 {
	return int64(math.Round(units * 100))
}
