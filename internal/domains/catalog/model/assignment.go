package model

import (
	"database/sql"
	"fmt"
	"time"
)

const (
	AssignmentTableName  = "service_type_assignments"
	AssignmentEntityName = "service_type_assignment"

	FieldServiceID          = "service_id"
	FieldServiceTypeID      = "service_type_id"
	FieldUseServiceDefaults = "use_service_defaults"
	FieldPreferred          = "preferred"

	ServiceTypeTableName = "service_types"
)

// ServiceTypeAssignment optionally overrides a subset of a Service's numeric
// fields for one (service, service-type) pair. Override columns are nullable;
// a NULL override falls back to the service's base value per field.
type ServiceTypeAssignment struct {
	ID                 string        `db:"id"`
	ServiceID          string        `db:"service_id"`
	ServiceTypeID      string        `db:"service_type_id"`
	UseServiceDefaults sql.NullBool  `db:"use_service_defaults"`
	DurationMinutes    sql.NullInt64 `db:"duration_minutes"`
	PriceCents         sql.NullInt64 `db:"price_cents"`
	DepositCents       sql.NullInt64 `db:"deposit_cents"`
	BufferMinutes      sql.NullInt64 `db:"buffer_minutes"`
	Preferred          bool          `db:"preferred"`
	CreatedAt          time.Time     `db:"created_at"`

	// TypeActive comes from the joined service_types row; assignments whose
	// service-type is missing or inactive are excluded from resolution.
	TypeActive sql.NullBool `db:"type_active" table:"service_types" column:"active"`
}

// GetJoinQuery hooks the generic repository's join support.
func (ServiceTypeAssignment) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %s ON %s.id = %s.%s", ServiceTypeTableName, ServiceTypeTableName, AssignmentTableName, FieldServiceTypeID)
}

// Eligible reports whether the assignment may participate in pricing
// resolution.
func (a ServiceTypeAssignment) Eligible() bool {
	return a.TypeActive.Valid && a.TypeActive.Bool
}

// UsesDefaults reports whether the assignment defers entirely to the
// service's base values. An unset flag means true.
func (a ServiceTypeAssignment) UsesDefaults() bool {
	if !a.UseServiceDefaults.Valid {
		return true
	}

	return a.UseServiceDefaults.Bool
}

// Resolve applies the assignment's overrides on top of the service's base
// values, falling back to the base per absent field, then clamps.
func (a ServiceTypeAssignment) Resolve(svc Service) ResolvedPricing {
	if a.UsesDefaults() {
		return svc.BasePricing()
	}

	resolved := ResolvedPricing{
		DurationMinutes: svc.DurationMinutes,
		PriceCents:      svc.PriceCents,
		DepositCents:    svc.DepositCents,
		BufferMinutes:   svc.BufferMinutes,
	}

	if a.DurationMinutes.Valid {
		resolved.DurationMinutes = int(a.DurationMinutes.Int64)
	}

	if a.PriceCents.Valid {
		resolved.PriceCents = a.PriceCents.Int64
	}

	if a.DepositCents.Valid {
		resolved.DepositCents = a.DepositCents.Int64
	}

	if a.BufferMinutes.Valid {
		resolved.BufferMinutes = int(a.BufferMinutes.Int64)
	}

	return resolved.Clamp()
}
