package model

import (
	"database/sql"
	"math"
	"strconv"
	"strings"
	"time"

	"agendo/shared/model"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID         = "id"
	FieldBranchID   = "branch_id"
	FieldCustomerID = "customer_id"
	FieldStaffID    = "staff_id"
	FieldServiceID  = "service_id"
	FieldStartsAt   = "starts_at"
	FieldEndsAt     = "ends_at"
	FieldStatus     = "status"
)

// SweepActor is recorded as the modifier on rows changed by maintenance
// sweeps, where no human user is behind the write.
const SweepActor = "system:sweep"

const (
	StatusPending   = "pending"
	StatusReserved  = "reserved"
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
	StatusCompleted = "completed"
)

// Appointment is the central entity: one customer booked with one staff
// member for one service, between two absolute instants. Price, deposit and
// buffer are snapshotted from pricing resolution at creation time.
type Appointment struct {
	ID            string    `db:"id"`
	BranchID      string    `db:"branch_id"`
	CustomerID    string    `db:"customer_id"`
	StaffID       string    `db:"staff_id"`
	ServiceID     string    `db:"service_id"`
	StartsAt      time.Time `db:"starts_at"`
	EndsAt        time.Time `db:"ends_at"`
	Status        string    `db:"status"`
	TotalCents    int64     `db:"total_cents"`
	DepositCents  int64     `db:"deposit_cents"`
	BufferMinutes int       `db:"buffer_minutes"`

	// LegacyDeposit is the decimal monetary column imported rows still carry.
	// DepositCents wins whenever it is positive; the decimal is the fallback.
	LegacyDeposit sql.NullString `db:"legacy_deposit"`
	model.Metadata
}

// Terminal reports whether the appointment reached a final state.
func (a Appointment) Terminal() bool {
	return a.Status == StatusCanceled || a.Status == StatusCompleted
}

// Occupying reports whether the appointment blocks its time range: canceled
// and completed appointments never occupy the calendar.
func (a Appointment) Occupying() bool {
	switch a.Status {
	case StatusPending, StatusReserved, StatusConfirmed:
		return true
	default:
		return false
	}
}

// RequiredDepositCents resolves the deposit the appointment must collect
// before confirmation: the integer-cents column when positive, else the
// legacy decimal column converted to cents, else zero (no deposit required).
func (a Appointment) RequiredDepositCents() int64 {
	if a.DepositCents > 0 {
		return a.DepositCents
	}

	return DecimalToCents(a.LegacyDeposit)
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps applies the half-open exclusion test: intervals that merely touch
// at an endpoint do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// UnpaidHold is one pending appointment joined with its approved-payment
// total, as raw column text. Imported rows sometimes carry numbers as
// strings, so normalization happens here, at the data-access boundary,
// instead of leaking loose shapes into sweep logic.
type UnpaidHold struct {
	ID            string         `db:"id"`
	DepositCents  sql.NullString `db:"deposit_cents"`
	LegacyDeposit sql.NullString `db:"legacy_deposit"`
	PaidTotal     sql.NullString `db:"paid_total"`
}

// RequiredDepositCents resolves the deposit with the same precedence as
// Appointment.RequiredDepositCents, tolerating stringly-typed cents.
func (h UnpaidHold) RequiredDepositCents() int64 {
	if cents := parseCents(h.DepositCents); cents > 0 {
		return cents
	}

	return DecimalToCents(h.LegacyDeposit)
}

// PaidCents returns the approved-payment total, clamped to zero when the
// aggregate is missing, malformed, or negative.
func (h UnpaidHold) PaidCents() int64 {
	cents := parseCents(h.PaidTotal)
	if cents < 0 {
		return 0
	}

	return cents
}

// DecimalToCents converts a decimal monetary string ("75.50") to cents by
// rounding. Missing or malformed values resolve to zero.
func DecimalToCents(value sql.NullString) int64 {
	if !value.Valid {
		return 0
	}

	raw := strings.TrimSpace(value.String)
	if raw == "" {
		return 0
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return int64(math.Round(amount * 100))
}

func parseCents(value sql.NullString) int64 {
	if !value.Valid {
		return 0
	}

	raw := strings.TrimSpace(value.String)
	if raw == "" {
		return 0
	}

	cents, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return int64(math.Round(cents))
}
