package model

import (
	"agendo/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldBranchID        = "branch_id"
	FieldName            = "name"
	FieldDurationMinutes = "duration_minutes"
	FieldPriceCents      = "price_cents"
	FieldDepositCents    = "deposit_cents"
	FieldBufferMinutes   = "buffer_minutes"
	FieldActive          = "active"
)

// Service is a bookable offering. Its numeric fields are the base values used
// when no service-type assignment overrides them. Base values are snapshotted
// onto appointments at creation time and never rewritten afterwards.
type Service struct {
	ID              string `db:"id"`
	BranchID        string `db:"branch_id"`
	Name            string `db:"name"`
	DurationMinutes int    `db:"duration_minutes"`
	PriceCents      int64  `db:"price_cents"`
	DepositCents    int64  `db:"deposit_cents"`
	BufferMinutes   int    `db:"buffer_minutes"`
	Active          bool   `db:"active"`
	model.Metadata
}

// ResolvedPricing is the effective duration/price/deposit/buffer for a
// service after applying service-type assignment overrides and clamps.
type ResolvedPricing struct {
	DurationMinutes int   `json:"duration_minutes"`
	PriceCents      int64 `json:"price_cents"`
	DepositCents    int64 `json:"deposit_cents"`
	BufferMinutes   int   `json:"buffer_minutes"`
}

// Clamp forces every numeric field to be non-negative and caps the deposit at
// the price.
func (p ResolvedPricing) Clamp() ResolvedPricing {
	if p.DurationMinutes < 0 {
		p.DurationMinutes = 0
	}

	if p.PriceCents < 0 {
		p.PriceCents = 0
	}

	if p.DepositCents < 0 {
		p.DepositCents = 0
	}

	if p.BufferMinutes < 0 {
		p.BufferMinutes = 0
	}

	if p.DepositCents > p.PriceCents {
		p.DepositCents = p.PriceCents
	}

	return p
}

// BasePricing returns the service's own values as a clamped ResolvedPricing.
func (s Service) BasePricing() ResolvedPricing {
	return ResolvedPricing{
		DurationMinutes: s.DurationMinutes,
		PriceCents:      s.PriceCents,
		DepositCents:    s.DepositCents,
		BufferMinutes:   s.BufferMinutes,
	}.Clamp()
}
