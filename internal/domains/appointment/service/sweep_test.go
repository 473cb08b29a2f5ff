package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agendo/internal/domains/appointment/model"
	"agendo/internal/domains/appointment/service"
)

func cell(value string) sql.NullString {
	return sql.NullString{String: value, Valid: true}
}

func TestPendingHoldsToCancel(t *testing.T) {
	tests := []struct {
		name  string
		holds []model.UnpaidHold
		want  []string
	}{
		{
			name:  "no holds",
			holds: nil,
			want:  []string{},
		},
		{
			name: "unpaid and underpaid holds are canceled",
			holds: []model.UnpaidHold{
				{ID: "partial", DepositCents: cell("5000"), PaidTotal: cell("2500")},
				{ID: "unpaid", DepositCents: cell("3500")},
			},
			want: []string{"partial", "unpaid"},
		},
		{
			name: "covered deposit survives",
			holds: []model.UnpaidHold{
				{ID: "covered", DepositCents: cell("3500"), PaidTotal: cell("3500")},
				{ID: "overpaid", DepositCents: cell("3500"), PaidTotal: cell("5000")},
			},
			want: []string{},
		},
		{
			name: "no deposit required means nothing was ever owed",
			holds: []model.UnpaidHold{
				{ID: "no-deposit", DepositCents: cell("0")},
				{ID: "blank-deposit"},
			},
			want: []string{},
		},
		{
			name: "legacy decimal deposit converts to cents",
			holds: []model.UnpaidHold{
				{ID: "legacy", LegacyDeposit: cell("75.50"), PaidTotal: cell("2500")},
				{ID: "legacy-covered", LegacyDeposit: cell("75.50"), PaidTotal: cell("7550")},
			},
			want: []string{"legacy"},
		},
		{
			name: "malformed and negative paid totals count as zero",
			holds: []model.UnpaidHold{
				{ID: "invalid-paid", DepositCents: cell("1000"), PaidTotal: cell("invalid")},
				{ID: "negative-paid", DepositCents: cell("1000"), PaidTotal: cell("-500")},
			},
			want: []string{"invalid-paid", "negative-paid"},
		},
		{
			name: "malformed deposit resolves to zero and survives",
			holds: []model.UnpaidHold{
				{ID: "broken", DepositCents: cell("invalid"), LegacyDeposit: cell("not-a-number")},
			},
			want: []string{},
		},
		{
			name: "duplicate ids collapse to one",
			holds: []model.UnpaidHold{
				{ID: "partial", DepositCents: cell("5000"), PaidTotal: cell("2500")},
				{ID: "partial", DepositCents: cell("5000"), PaidTotal: cell("2500")},
			},
			want: []string{"partial"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.PendingHoldsToCancel(tt.holds))
		})
	}
}

func TestAppointmentService_RunMaintenanceSweep(t *testing.T) {
	svc, m := newTestService(t)

	holds := []model.UnpaidHold{
		{ID: "stale-hold", DepositCents: cell("3000")},
		{ID: "covered-hold", DepositCents: cell("3000"), PaidTotal: cell("3000")},
	}

	m.repo.EXPECT().
		CompleteStale(gomock.Any(), testNow.Add(-testSettings().AutoCompleteGrace), 200).
		Return(int64(2), nil)
	m.repo.EXPECT().
		ListUnpaidHolds(gomock.Any(), testNow.Add(-testSettings().AutoCancelGrace), 200).
		Return(holds, nil)
	m.repo.EXPECT().
		CancelByIDs(gomock.Any(), []string{"stale-hold"}, model.SweepActor).
		Return(int64(1), nil)

	res, err := svc.RunMaintenanceSweep(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), res.CompletedCount)
	assert.Equal(t, int64(1), res.CanceledCount)
}
