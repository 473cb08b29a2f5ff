package service

import (
	"agendo/internal/domains/payment/model"
	"agendo/internal/domains/payment/provider"
)

// ClassifyOrder maps the provider's order state onto the internal payment
// status taxonomy. The function is pure; idempotency across webhook retries
// is handled by the event ledger, not here.
//
// Precedence: any live paid charge means approved. With no live paid charge,
// canceled charges that carried money mean refunded (all of them paid) or
// partially refunded (mixed with unpaid cancellations). An order the provider
// canceled outright is failed. Anything else is still pending.
func ClassifyOrder(order provider.OrderState) string {
	var paidActive, paidCanceled, unpaidCanceled int

	for _, charge := range order.Charges {
		switch {
		case charge.Canceled && charge.PaidCents > 0:
			paidCanceled++
		case charge.Canceled:
			unpaidCanceled++
		case charge.PaidCents > 0:
			paidActive++
		}
	}

	switch {
	case paidActive > 0:
		return model.StatusApproved
	case paidCanceled > 0 && unpaidCanceled == 0:
		return model.StatusRefunded
	case paidCanceled > 0:
		return model.StatusPartiallyRefunded
	case order.Canceled:
		return model.StatusFailed
	default:
		return model.StatusPending
	}
}

// PaidCharges returns the charges that currently hold money, in input order.
func PaidCharges(order provider.OrderState) []provider.Charge {
	charges := []provider.Charge{}

	for _, charge := range order.Charges {
		if !charge.Canceled && charge.PaidCents > 0 {
			charges = append(charges, charge)
		}
	}

	return charges
}
