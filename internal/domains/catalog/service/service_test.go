package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agendo/infras/otel/mocks"
	catalogMocks "agendo/internal/domains/catalog/mocks"
	"agendo/internal/domains/catalog/model"
	"agendo/internal/domains/catalog/service"
	"agendo/shared/failure"
)

func nullBool(value bool) sql.NullBool {
	return sql.NullBool{Bool: value, Valid: true}
}

func nullInt(value int64) sql.NullInt64 {
	return sql.NullInt64{Int64: value, Valid: true}
}

func baseService() model.Service {
	return model.Service{
		ID:              "svc-1",
		BranchID:        "br-1",
		Name:            "Haircut",
		DurationMinutes: 60,
		PriceCents:      10000,
		DepositCents:    3000,
		BufferMinutes:   10,
		Active:          true,
	}
}

func TestResolvePricing(t *testing.T) {
	svc := baseService()

	tests := []struct {
		name        string
		assignments []model.ServiceTypeAssignment
		preferred   string
		want        model.ResolvedPricing
		wantOK      bool
	}{
		{
			name:        "no assignments",
			assignments: nil,
			wantOK:      false,
		},
		{
			name: "all assignments ineligible",
			assignments: []model.ServiceTypeAssignment{
				{ServiceTypeID: "type-a", TypeActive: nullBool(false)},
				{ServiceTypeID: "type-b"},
			},
			wantOK: false,
		},
		{
			name: "first eligible wins without preference",
			assignments: []model.ServiceTypeAssignment{
				{ServiceTypeID: "type-a", TypeActive: nullBool(false)},
				{
					ServiceTypeID:      "type-b",
					TypeActive:         nullBool(true),
					UseServiceDefaults: nullBool(false),
					DurationMinutes:    nullInt(45),
				},
			},
			want:   model.ResolvedPricing{DurationMinutes: 45, PriceCents: 10000, DepositCents: 3000, BufferMinutes: 10},
			wantOK: true,
		},
		{
			name: "preferred type selected over the first",
			assignments: []model.ServiceTypeAssignment{
				{
					ServiceTypeID:      "type-a",
					TypeActive:         nullBool(true),
					UseServiceDefaults: nullBool(false),
					PriceCents:         nullInt(5000),
				},
				{
					ServiceTypeID:      "type-b",
					TypeActive:         nullBool(true),
					UseServiceDefaults: nullBool(false),
					PriceCents:         nullInt(12000),
				},
			},
			preferred: "type-b",
			want:      model.ResolvedPricing{DurationMinutes: 60, PriceCents: 12000, DepositCents: 3000, BufferMinutes: 10},
			wantOK:    true,
		},
		{
			name: "unknown preference falls back to first eligible",
			assignments: []model.ServiceTypeAssignment{
				{
					ServiceTypeID:      "type-a",
					TypeActive:         nullBool(true),
					UseServiceDefaults: nullBool(false),
					DurationMinutes:    nullInt(30),
				},
			},
			preferred: "type-missing",
			want:      model.ResolvedPricing{DurationMinutes: 30, PriceCents: 10000, DepositCents: 3000, BufferMinutes: 10},
			wantOK:    true,
		},
		{
			name: "defaults flag defers to the service base values",
			assignments: []model.ServiceTypeAssignment{
				{
					ServiceTypeID:      "type-a",
					TypeActive:         nullBool(true),
					UseServiceDefaults: nullBool(true),
					DurationMinutes:    nullInt(15),
					PriceCents:         nullInt(1),
				},
			},
			want:   model.ResolvedPricing{DurationMinutes: 60, PriceCents: 10000, DepositCents: 3000, BufferMinutes: 10},
			wantOK: true,
		},
		{
			name: "unset defaults flag means defaults",
			assignments: []model.ServiceTypeAssignment{
				{
					ServiceTypeID:   "type-a",
					TypeActive:      nullBool(true),
					DurationMinutes: nullInt(15),
				},
			},
			want:   model.ResolvedPricing{DurationMinutes: 60, PriceCents: 10000, DepositCents: 3000, BufferMinutes: 10},
			wantOK: true,
		},
		{
			name: "deposit override clamped to price",
			assignments: []model.ServiceTypeAssignment{
				{
					ServiceTypeID:      "type-a",
					TypeActive:         nullBool(true),
					UseServiceDefaults: nullBool(false),
					PriceCents:         nullInt(4000),
					DepositCents:       nullInt(9000),
				},
			},
			want:   model.ResolvedPricing{DurationMinutes: 60, PriceCents: 4000, DepositCents: 4000, BufferMinutes: 10},
			wantOK: true,
		},
		{
			name: "negative overrides clamp to zero",
			assignments: []model.ServiceTypeAssignment{
				{
					ServiceTypeID:      "type-a",
					TypeActive:         nullBool(true),
					UseServiceDefaults: nullBool(false),
					DurationMinutes:    nullInt(-30),
					PriceCents:         nullInt(-100),
					DepositCents:       nullInt(-100),
					BufferMinutes:      nullInt(-5),
				},
			},
			want:   model.ResolvedPricing{},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := service.ResolvePricing(svc, tt.assignments, tt.preferred)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestServiceBasePricing(t *testing.T) {
	svc := baseService()
	svc.DepositCents = 15000

	pricing := svc.BasePricing()

	assert.Equal(t, svc.PriceCents, pricing.DepositCents)

	svc = model.Service{DurationMinutes: -10, PriceCents: -1, DepositCents: -1, BufferMinutes: -1}
	assert.Equal(t, model.ResolvedPricing{}, svc.BasePricing())
}

func TestCatalogService_GetService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("missing row becomes not found", func(t *testing.T) {
		mockRepo.EXPECT().
			GetService(gomock.Any(), gomock.Any()).
			Return(model.Service{}, nil)

		_, err := svc.GetService(context.Background(), "svc-missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		mockRepo.EXPECT().
			GetService(gomock.Any(), gomock.Any()).
			Return(model.Service{}, errors.New("connection reset"))

		_, err := svc.GetService(context.Background(), "svc-1")

		assert.Error(t, err)
	})

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().
			GetService(gomock.Any(), gomock.Any()).
			Return(baseService(), nil)

		got, err := svc.GetService(context.Background(), "svc-1")

		assert.NoError(t, err)
		assert.Equal(t, "svc-1", got.ID)
	})
}

func TestCatalogService_ResolvePricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().
		GetService(gomock.Any(), gomock.Any()).
		Return(baseService(), nil)
	mockRepo.EXPECT().
		ListAssignments(gomock.Any(), "svc-1").
		Return([]model.ServiceTypeAssignment{
			{
				ServiceTypeID:      "type-a",
				TypeActive:         nullBool(true),
				UseServiceDefaults: nullBool(false),
				DurationMinutes:    nullInt(45),
			},
		}, nil)

	pricing, ok, err := svc.ResolvePricing(context.Background(), "svc-1", "")

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 45, pricing.DurationMinutes)
	assert.Equal(t, int64(10000), pricing.PriceCents)
}
