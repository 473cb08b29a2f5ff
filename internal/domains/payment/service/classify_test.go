package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agendo/internal/domains/payment/model"
	"agendo/internal/domains/payment/provider"
	"agendo/internal/domains/payment/service"
)

func TestClassifyOrder(t *testing.T) {
	tests := []struct {
		name  string
		order provider.OrderState
		want  string
	}{
		{
			name:  "no charges and order alive",
			order: provider.OrderState{ID: "ord-1"},
			want:  model.StatusPending,
		},
		{
			name:  "no charges and order canceled",
			order: provider.OrderState{ID: "ord-1", Canceled: true},
			want:  model.StatusFailed,
		},
		{
			name: "live paid charge",
			order: provider.OrderState{Charges: []provider.Charge{
				{ID: "ch-1", PaidCents: 3000},
			}},
			want: model.StatusApproved,
		},
		{
			name: "live paid charge outranks canceled ones",
			order: provider.OrderState{Charges: []provider.Charge{
				{ID: "ch-1", PaidCents: 3000, Canceled: true},
				{ID: "ch-2", PaidCents: 3000},
			}},
			want: model.StatusApproved,
		},
		{
			name: "every paid charge canceled",
			order: provider.OrderState{Charges: []provider.Charge{
				{ID: "ch-1", PaidCents: 3000, Canceled: true},
			}},
			want: model.StatusRefunded,
		},
		{
			name: "paid and unpaid cancellations mixed",
			order: provider.OrderState{Charges: []provider.Charge{
				{ID: "ch-1", PaidCents: 3000, Canceled: true},
				{ID: "ch-2", Canceled: true},
			}},
			want: model.StatusPartiallyRefunded,
		},
		{
			name: "only unpaid cancellations on a live order",
			order: provider.OrderState{Charges: []provider.Charge{
				{ID: "ch-1", Canceled: true},
			}},
			want: model.StatusPending,
		},
		{
			name: "unpaid live charge is still pending",
			order: provider.OrderState{Charges: []provider.Charge{
				{ID: "ch-1"},
			}},
			want: model.StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ClassifyOrder(tt.order))
		})
	}
}

func TestPaidCharges(t *testing.T) {
	order := provider.OrderState{Charges: []provider.Charge{
		{ID: "ch-1", PaidCents: 1000},
		{ID: "ch-2", PaidCents: 2000, Canceled: true},
		{ID: "ch-3"},
		{ID: "ch-4", PaidCents: 3000},
	}}

	charges := service.PaidCharges(order)

	assert.Len(t, charges, 2)
	assert.Equal(t, "ch-1", charges[0].ID)
	assert.Equal(t, "ch-4", charges[1].ID)
}
