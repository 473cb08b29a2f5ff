package model_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agendo/internal/domains/appointment/model"
)

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: true}
}

func TestDecimalToCents(t *testing.T) {
	tests := []struct {
		name  string
		value sql.NullString
		want  int64
	}{
		{"null", sql.NullString{}, 0},
		{"empty", nullString(""), 0},
		{"whitespace", nullString("   "), 0},
		{"malformed", nullString("invalid"), 0},
		{"decimal", nullString("75.50"), 7550},
		{"integer", nullString("35"), 3500},
		{"rounding", nullString("10.999"), 1100},
		{"padded", nullString(" 12.34 "), 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.DecimalToCents(tt.value))
		})
	}
}

func TestAppointmentRequiredDepositCents(t *testing.T) {
	tests := []struct {
		name        string
		appointment model.Appointment
		want        int64
	}{
		{
			name:        "integer cents wins over the legacy column",
			appointment: model.Appointment{DepositCents: 3500, LegacyDeposit: nullString("99.99")},
			want:        3500,
		},
		{
			name:        "legacy decimal is the fallback",
			appointment: model.Appointment{LegacyDeposit: nullString("75.50")},
			want:        7550,
		},
		{
			name:        "nothing configured means no deposit",
			appointment: model.Appointment{},
			want:        0,
		},
		{
			name:        "zero cents falls through to legacy",
			appointment: model.Appointment{DepositCents: 0, LegacyDeposit: nullString("10.00")},
			want:        1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.appointment.RequiredDepositCents())
		})
	}
}

func TestIntervalOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

	span := func(startMin, endMin int) model.Interval {
		return model.Interval{
			Start: base.Add(time.Duration(startMin) * time.Minute),
			End:   base.Add(time.Duration(endMin) * time.Minute),
		}
	}

	tests := []struct {
		name string
		a, b model.Interval
		want bool
	}{
		{"disjoint", span(0, 30), span(60, 90), false},
		{"touching endpoints do not overlap", span(0, 60), span(60, 120), false},
		{"partial overlap", span(0, 60), span(30, 90), true},
		{"contained", span(0, 120), span(30, 60), true},
		{"identical", span(0, 60), span(0, 60), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestAppointmentStatusPredicates(t *testing.T) {
	occupying := []string{model.StatusPending, model.StatusReserved, model.StatusConfirmed}
	for _, status := range occupying {
		assert.True(t, model.Appointment{Status: status}.Occupying(), status)
		assert.False(t, model.Appointment{Status: status}.Terminal(), status)
	}

	terminal := []string{model.StatusCanceled, model.StatusCompleted}
	for _, status := range terminal {
		assert.False(t, model.Appointment{Status: status}.Occupying(), status)
		assert.True(t, model.Appointment{Status: status}.Terminal(), status)
	}
}
