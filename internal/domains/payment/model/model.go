package model

import (
	"agendo/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID                = "id"
	FieldAppointmentID     = "appointment_id"
	FieldProvider          = "provider"
	FieldProviderPaymentID = "provider_payment_id"
	FieldProviderOrderID   = "provider_order_id"
	FieldStatus            = "status"
)

const (
	StatusPending           = "pending"
	StatusApproved          = "approved"
	StatusFailed            = "failed"
	StatusRefunded          = "refunded"
	StatusPartiallyRefunded = "partially_refunded"
)

const (
	ProviderMercadoPago = "mercadopago"
)

const (
	KindDeposit = "deposit"
	KindBalance = "balance"
	KindFull    = "full"
)

// Payment records a single payment attempt against one appointment. Several
// rows may exist per appointment; the sum of approved rows' amounts is the
// appointment's paid total.
type Payment struct {
	ID                string `db:"id"`
	AppointmentID     string `db:"appointment_id"`
	Provider          string `db:"provider"`
	ProviderPaymentID string `db:"provider_payment_id"`
	ProviderOrderID   string `db:"provider_order_id"`
	Kind              string `db:"kind"`
	CoversDeposit     bool   `db:"covers_deposit"`
	Status            string `db:"status"`
	AmountCents       int64  `db:"amount_cents"`
	RawPayload        []byte `db:"raw_payload"`
	model.Metadata
}
