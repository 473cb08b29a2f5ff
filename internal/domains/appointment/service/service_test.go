package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agendo/config"
	"agendo/infras/otel/mocks"
	appointmentMocks "agendo/internal/domains/appointment/mocks"
	"agendo/internal/domains/appointment/model"
	"agendo/internal/domains/appointment/model/dto"
	"agendo/internal/domains/appointment/service"
	catalogModel "agendo/internal/domains/catalog/model"
	catalogServiceMocks "agendo/internal/domains/catalog/service/mocks"
	paymentServiceMocks "agendo/internal/domains/payment/service/mocks"
	scheduleMocks "agendo/internal/domains/schedule/mocks"
	scheduleModel "agendo/internal/domains/schedule/model"
	"agendo/shared/failure"
)

// stubCache always misses so service tests exercise the real path. Writes and
// invalidation run on background goroutines, a strict mock there would race
// the test's lifecycle.
type stubCache struct{}

func (stubCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (stubCache) Get(_ context.Context, _ string, _ any) error        { return errors.New("cache miss") }
func (stubCache) Delete(_ context.Context, _ string) error            { return nil }
func (stubCache) Clear(_ context.Context, _ string) error             { return nil }

type serviceMocks struct {
	repo     *appointmentMocks.MockAppointment
	catalog  *catalogServiceMocks.MockCatalog
	schedule *scheduleMocks.MockSchedule
	payments *paymentServiceMocks.MockPayment
}

var testNow = time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

func testSettings() service.Settings {
	return service.Settings{
		SlotStep:             15 * time.Minute,
		DefaultBufferMinutes: 10,
		CancelLeadTime:       24 * time.Hour,
		AutoCompleteGrace:    3 * time.Hour,
		AutoCancelGrace:      2 * time.Hour,
		SweepBatchSize:       200,
		SnapshotHorizonDays:  5,
		Now:                  func() time.Time { return testNow },
	}
}

func newTestService(t *testing.T) (service.Appointment, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:     appointmentMocks.NewMockAppointment(ctrl),
		catalog:  catalogServiceMocks.NewMockCatalog(ctrl),
		schedule: scheduleMocks.NewMockSchedule(ctrl),
		payments: paymentServiceMocks.NewMockPayment(ctrl),
	}

	svc := service.New(m.repo, m.catalog, m.schedule, m.payments, testSettings(), &config.Config{}, stubCache{}, mocks.NewOtel())

	return svc, m
}

func testCatalogService() catalogModel.Service {
	return catalogModel.Service{
		ID:              "svc-1",
		BranchID:        "br-1",
		Name:            "Haircut",
		DurationMinutes: 60,
		PriceCents:      10000,
		DepositCents:    3000,
		Active:          true,
	}
}

func pendingAppointment(startsAt time.Time) model.Appointment {
	return model.Appointment{
		ID:           "appt-1",
		BranchID:     "br-1",
		CustomerID:   "cust-1",
		StaffID:      "st-1",
		ServiceID:    "svc-1",
		StartsAt:     startsAt,
		EndsAt:       startsAt.Add(time.Hour),
		Status:       model.StatusPending,
		TotalCents:   10000,
		DepositCents: 3000,
	}
}

func TestComputeRefund(t *testing.T) {
	tests := []struct {
		name          string
		paidCents     int64
		depositCents  int64
		insidePenalty bool
		want          int64
	}{
		{"outside penalty refunds everything", 8000, 5000, false, 8000},
		{"inside penalty forfeits the deposit", 8000, 5000, true, 3000},
		{"paid below deposit clamps to zero", 3000, 5000, true, 0},
		{"nothing paid refunds nothing", 0, 5000, false, 0},
		{"no deposit refunds everything inside penalty", 8000, 0, true, 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ComputeRefund(tt.paidCents, tt.depositCents, tt.insidePenalty))
		})
	}
}

func TestAppointmentService_Create(t *testing.T) {
	t.Run("invalid start format", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(context.Background(), dto.CreateAppointmentRequest{
			ServiceID:  "svc-1",
			CustomerID: "cust-1",
			StartsAt:   "tomorrow at nine",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("closed day leaves nobody to book", func(t *testing.T) {
		svc, m := newTestService(t)

		m.catalog.EXPECT().GetService(gomock.Any(), "svc-1").Return(testCatalogService(), nil).AnyTimes()
		m.catalog.EXPECT().ResolvePricing(gomock.Any(), "svc-1", "").Return(catalogModel.ResolvedPricing{}, false, nil).AnyTimes()
		m.schedule.EXPECT().GetBranch(gomock.Any(), "br-1").Return(scheduleModel.Branch{ID: "br-1", Timezone: "UTC"}, nil).AnyTimes()
		m.schedule.EXPECT().GetBusinessHours(gomock.Any(), "br-1", gomock.Any()).Return(scheduleModel.BusinessHours{}, nil)

		_, err := svc.Create(context.Background(), dto.CreateAppointmentRequest{
			ServiceID:  "svc-1",
			CustomerID: "cust-1",
			StartsAt:   "2026-09-08T09:00:00Z",
		})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("occupied slot is a conflict", func(t *testing.T) {
		svc, m := newTestService(t)

		m.catalog.EXPECT().GetService(gomock.Any(), "svc-1").Return(testCatalogService(), nil).AnyTimes()
		m.catalog.EXPECT().ResolvePricing(gomock.Any(), "svc-1", "").Return(catalogModel.ResolvedPricing{}, false, nil).AnyTimes()
		m.schedule.EXPECT().GetBranch(gomock.Any(), "br-1").Return(scheduleModel.Branch{ID: "br-1", Timezone: "UTC"}, nil).AnyTimes()
		m.schedule.EXPECT().GetBusinessHours(gomock.Any(), "br-1", gomock.Any()).
			Return(scheduleModel.BusinessHours{ID: "bh-1", OpenTime: "09:00", CloseTime: "12:00"}, nil)
		m.schedule.EXPECT().GetStaffHours(gomock.Any(), "st-1", gomock.Any()).
			Return(scheduleModel.StaffHours{ID: "sh-1", StartTime: "09:00", EndTime: "12:00"}, nil)
		m.repo.EXPECT().ListBusyBetween(gomock.Any(), "st-1", gomock.Any(), gomock.Any()).
			Return([]model.Appointment{pendingAppointment(time.Date(2026, 9, 8, 9, 0, 0, 0, time.UTC))}, nil)
		m.schedule.EXPECT().ListBlackouts(gomock.Any(), "st-1", gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.Create(context.Background(), dto.CreateAppointmentRequest{
			ServiceID:  "svc-1",
			StaffID:    "st-1",
			CustomerID: "cust-1",
			StartsAt:   "2026-09-08T09:30:00Z",
		})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("free slot books a pending appointment", func(t *testing.T) {
		svc, m := newTestService(t)

		m.catalog.EXPECT().GetService(gomock.Any(), "svc-1").Return(testCatalogService(), nil).AnyTimes()
		m.catalog.EXPECT().ResolvePricing(gomock.Any(), "svc-1", "").Return(catalogModel.ResolvedPricing{}, false, nil).AnyTimes()
		m.schedule.EXPECT().GetBranch(gomock.Any(), "br-1").Return(scheduleModel.Branch{ID: "br-1", Timezone: "UTC"}, nil).AnyTimes()
		m.schedule.EXPECT().GetBusinessHours(gomock.Any(), "br-1", gomock.Any()).
			Return(scheduleModel.BusinessHours{ID: "bh-1", OpenTime: "09:00", CloseTime: "12:00"}, nil)
		m.schedule.EXPECT().GetStaffHours(gomock.Any(), "st-1", gomock.Any()).
			Return(scheduleModel.StaffHours{ID: "sh-1", StartTime: "09:00", EndTime: "12:00"}, nil)
		m.repo.EXPECT().ListBusyBetween(gomock.Any(), "st-1", gomock.Any(), gomock.Any()).Return(nil, nil)
		m.schedule.EXPECT().ListBlackouts(gomock.Any(), "st-1", gomock.Any(), gomock.Any()).Return(nil, nil)

		var created model.Appointment

		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, appointment model.Appointment) error {
				created = appointment

				return nil
			})

		res, err := svc.Create(context.Background(), dto.CreateAppointmentRequest{
			ServiceID:  "svc-1",
			StaffID:    "st-1",
			CustomerID: "cust-1",
			StartsAt:   "2026-09-08T09:00:00Z",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, int64(10000), res.TotalCents)
		assert.Equal(t, int64(3000), res.DepositCents)

		assert.Equal(t, "cust-1", created.CustomerID)
		assert.Equal(t, time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC), created.EndsAt.UTC())
	})

	t.Run("storage overlap conflict propagates", func(t *testing.T) {
		svc, m := newTestService(t)

		m.catalog.EXPECT().GetService(gomock.Any(), "svc-1").Return(testCatalogService(), nil).AnyTimes()
		m.catalog.EXPECT().ResolvePricing(gomock.Any(), "svc-1", "").Return(catalogModel.ResolvedPricing{}, false, nil).AnyTimes()
		m.schedule.EXPECT().GetBranch(gomock.Any(), "br-1").Return(scheduleModel.Branch{ID: "br-1", Timezone: "UTC"}, nil).AnyTimes()
		m.schedule.EXPECT().GetBusinessHours(gomock.Any(), "br-1", gomock.Any()).
			Return(scheduleModel.BusinessHours{ID: "bh-1", OpenTime: "09:00", CloseTime: "12:00"}, nil)
		m.schedule.EXPECT().GetStaffHours(gomock.Any(), "st-1", gomock.Any()).
			Return(scheduleModel.StaffHours{ID: "sh-1", StartTime: "09:00", EndTime: "12:00"}, nil)
		m.repo.EXPECT().ListBusyBetween(gomock.Any(), "st-1", gomock.Any(), gomock.Any()).Return(nil, nil)
		m.schedule.EXPECT().ListBlackouts(gomock.Any(), "st-1", gomock.Any(), gomock.Any()).Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(failure.Conflict("time slot no longer available"))

		_, err := svc.Create(context.Background(), dto.CreateAppointmentRequest{
			ServiceID:  "svc-1",
			StaffID:    "st-1",
			CustomerID: "cust-1",
			StartsAt:   "2026-09-08T09:00:00Z",
		})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestAppointmentService_Cancel(t *testing.T) {
	t.Run("foreign appointment looks missing", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").
			Return(pendingAppointment(testNow.Add(48*time.Hour)), nil)

		_, err := svc.Cancel(context.Background(), "appt-1", "somebody-else")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("finalized appointment cannot be canceled", func(t *testing.T) {
		svc, m := newTestService(t)

		appointment := pendingAppointment(testNow.Add(48 * time.Hour))
		appointment.Status = model.StatusCompleted

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appointment, nil)

		_, err := svc.Cancel(context.Background(), "appt-1", "cust-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("inside the penalty window the deposit is forfeited", func(t *testing.T) {
		svc, m := newTestService(t)

		appointment := pendingAppointment(testNow.Add(2 * time.Hour))
		appointment.DepositCents = 5000

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appointment, nil)
		m.payments.EXPECT().PaidTotal(gomock.Any(), "appt-1").Return(int64(8000), nil)
		m.payments.EXPECT().RefundForCancellation(gomock.Any(), "appt-1", int64(3000)).Return(int64(3000))
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "appt-1", model.StatusCanceled, "cust-1").Return(nil)

		res, err := svc.Cancel(context.Background(), "appt-1", "cust-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(3000), res.RefundedCents)
	})

	t.Run("outside the penalty window everything paid comes back", func(t *testing.T) {
		svc, m := newTestService(t)

		appointment := pendingAppointment(testNow.Add(48 * time.Hour))
		appointment.DepositCents = 5000

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appointment, nil)
		m.payments.EXPECT().PaidTotal(gomock.Any(), "appt-1").Return(int64(8000), nil)
		m.payments.EXPECT().RefundForCancellation(gomock.Any(), "appt-1", int64(8000)).Return(int64(8000))
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "appt-1", model.StatusCanceled, "cust-1").Return(nil)

		res, err := svc.Cancel(context.Background(), "appt-1", "cust-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(8000), res.RefundedCents)
	})

	t.Run("refund failure does not block the cancellation", func(t *testing.T) {
		svc, m := newTestService(t)

		appointment := pendingAppointment(testNow.Add(48 * time.Hour))

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appointment, nil)
		m.payments.EXPECT().PaidTotal(gomock.Any(), "appt-1").Return(int64(8000), nil)
		m.payments.EXPECT().RefundForCancellation(gomock.Any(), "appt-1", int64(8000)).Return(int64(0))
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "appt-1", model.StatusCanceled, "cust-1").Return(nil)

		res, err := svc.Cancel(context.Background(), "appt-1", "cust-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(8000), res.RefundedCents)
	})
}

func TestAppointmentService_Reschedule(t *testing.T) {
	newStart := testNow.Add(72 * time.Hour).Format(time.RFC3339)

	t.Run("only pending appointments move", func(t *testing.T) {
		svc, m := newTestService(t)

		appointment := pendingAppointment(testNow.Add(48 * time.Hour))
		appointment.Status = model.StatusConfirmed

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(appointment, nil)

		_, err := svc.Reschedule(context.Background(), "appt-1", "cust-1", dto.RescheduleRequest{StartsAt: newStart})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.Contains(t, err.Error(), "only pending")
	})

	t.Run("original start too close even when the new one is far", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").
			Return(pendingAppointment(testNow.Add(time.Hour)), nil)

		_, err := svc.Reschedule(context.Background(), "appt-1", "cust-1", dto.RescheduleRequest{StartsAt: newStart})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.Contains(t, err.Error(), "original start")
	})

	t.Run("new start too close even when the original is far", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").
			Return(pendingAppointment(testNow.Add(48*time.Hour)), nil)

		soon := testNow.Add(time.Hour).Format(time.RFC3339)

		_, err := svc.Reschedule(context.Background(), "appt-1", "cust-1", dto.RescheduleRequest{StartsAt: soon})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
		assert.Contains(t, err.Error(), "new start")
	})

	t.Run("successful move keeps the resolved duration", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").
			Return(pendingAppointment(testNow.Add(48*time.Hour)), nil)
		m.catalog.EXPECT().GetService(gomock.Any(), "svc-1").Return(testCatalogService(), nil)
		m.catalog.EXPECT().ResolvePricing(gomock.Any(), "svc-1", "").
			Return(catalogModel.ResolvedPricing{}, false, nil)
		m.repo.EXPECT().
			UpdateTimes(gomock.Any(), "appt-1", testNow.Add(72*time.Hour), testNow.Add(73*time.Hour), "cust-1").
			Return(int64(1), nil)

		res, err := svc.Reschedule(context.Background(), "appt-1", "cust-1", dto.RescheduleRequest{StartsAt: newStart})

		assert.NoError(t, err)
		assert.Equal(t, testNow.Add(72*time.Hour).Format(time.RFC3339), res.StartsAt)
		assert.Equal(t, testNow.Add(73*time.Hour).Format(time.RFC3339), res.EndsAt)
	})

	t.Run("losing the status race is a conflict", func(t *testing.T) {
		svc, m := newTestService(t)

		m.repo.EXPECT().GetByID(gomock.Any(), "appt-1").
			Return(pendingAppointment(testNow.Add(48*time.Hour)), nil)
		m.catalog.EXPECT().GetService(gomock.Any(), "svc-1").Return(testCatalogService(), nil)
		m.catalog.EXPECT().ResolvePricing(gomock.Any(), "svc-1", "").
			Return(catalogModel.ResolvedPricing{}, false, nil)
		m.repo.EXPECT().
			UpdateTimes(gomock.Any(), "appt-1", gomock.Any(), gomock.Any(), "cust-1").
			Return(int64(0), nil)

		_, err := svc.Reschedule(context.Background(), "appt-1", "cust-1", dto.RescheduleRequest{StartsAt: newStart})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}
