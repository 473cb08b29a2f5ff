package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"agendo/config"
	"agendo/infras/otel"
	"agendo/internal/domains/appointment/model"
	"agendo/internal/domains/appointment/model/dto"
	"agendo/internal/domains/appointment/repository"
	catalogService "agendo/internal/domains/catalog/service"
	paymentService "agendo/internal/domains/payment/service"
	scheduleRepository "agendo/internal/domains/schedule/repository"
	"agendo/shared"
	"agendo/shared/cache"
	"agendo/shared/constant"
	gDto "agendo/shared/dto"
	"agendo/shared/failure"
	"agendo/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheAvailability = "appointment:availability"
	cacheGet          = "appointment:get"
	cacheGetAll       = "appointment:get_all"
	cacheCalendar     = "appointment:calendar"
)

type Appointment interface {
	ComputeAvailableSlots(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	Get(ctx context.Context, id, customerID string) (dto.AppointmentResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, customerID, status string) (dto.GetAppointmentsResponse, error)
	Cancel(ctx context.Context, id, customerID string) (dto.CancelResponse, error)
	Reschedule(ctx context.Context, id, customerID string, req dto.RescheduleRequest) (dto.RescheduleResponse, error)
	RunMaintenanceSweep(ctx context.Context) (dto.SweepResult, error)
	BuildCalendar(ctx context.Context, req dto.CalendarRequest, customerID string) ([]DaySnapshot, error)
}

type serviceImpl struct {
	repo     repository.Appointment
	catalog  catalogService.Catalog
	schedule scheduleRepository.Schedule
	payments paymentService.Payment
	settings Settings
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Appointment,
	catalog catalogService.Catalog,
	schedule scheduleRepository.Schedule,
	payments paymentService.Payment,
	settings Settings,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otl otel.Otel,
) Appointment {
	return &serviceImpl{
		repo:     repo,
		catalog:  catalog,
		schedule: schedule,
		payments: payments,
		settings: settings,
		cfg:      cfg,
		cache:    redisCache,
		otel:     otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	startsAt, err := req.StartInstant()
	if err != nil {
		return res, failure.BadRequestFromString("invalid starts_at, expected RFC3339") //nolint:wrapcheck
	}

	svc, err := s.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		return res, err
	}

	branch, err := s.schedule.GetBranch(ctx, svc.BranchID)
	if err != nil {
		log.Error().Err(err).Str("branchID", svc.BranchID).Msg("failed to get branch")

		return res, fmt.Errorf("failed to get branch: %w", err)
	}

	loc := timezone.Location(branch.Timezone)
	date := timezone.DayString(startsAt, loc)

	staffID, slots, err := s.availableSlots(ctx, req.ServiceID, req.ServiceTypeID, req.StaffID, date)
	if err != nil {
		return res, err
	}

	if staffID == constant.Empty {
		return res, failure.NotFound("no staff available") //nolint:wrapcheck
	}

	if !containsInstant(slots, startsAt) {
		return res, failure.Conflict("time slot not available") //nolint:wrapcheck
	}

	pricing := s.resolvePricing(ctx, svc, req.ServiceTypeID)
	endsAt := startsAt.Add(time.Duration(pricing.DurationMinutes) * time.Minute)

	appointment := req.ToModel(svc.BranchID, staffID, startsAt, endsAt, pricing.PriceCents, pricing.DepositCents, pricing.BufferMinutes, req.CustomerID)

	if err = s.repo.Create(ctx, appointment); err != nil {
		log.Error().Err(err).Str("staffID", staffID).Msg("failed to create appointment")

		return res, err
	}

	s.invalidateAppointmentCaches(ctx)

	res.FromModel(appointment)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, customerID string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGet, id, customerID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment")

		return res, nil
	}

	appointment, err := s.getOwned(ctx, id, customerID)
	if err != nil {
		return res, err
	}

	res.FromModel(appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, customerID, status string) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filters := []any{
		gDto.Filter{
			Field:    model.FieldCustomerID,
			Value:    customerID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if status != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    status,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAll, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id, customerID string) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getOwned(ctx, id, customerID)
	if err != nil {
		return res, err
	}

	if appointment.Terminal() {
		return res, failure.Conflict("appointment already finalized") //nolint:wrapcheck
	}

	paid, err := s.payments.PaidTotal(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("appointmentID", id).Msg("failed to get paid total")

		return res, fmt.Errorf("failed to get paid total: %w", err)
	}

	now := s.settings.clock()
	insidePenalty := appointment.StartsAt.Sub(now) < s.settings.CancelLeadTime
	refund := ComputeRefund(paid, appointment.RequiredDepositCents(), insidePenalty)

	// Refund attempts never block the cancellation itself.
	s.payments.RefundForCancellation(ctx, id, refund)

	if err = s.repo.UpdateStatus(ctx, id, model.StatusCanceled, customerID); err != nil {
		log.Error().Err(err).Str("appointmentID", id).Msg("failed to cancel appointment")

		return res, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	s.invalidateAppointmentCaches(ctx)

	res.RefundedCents = refund

	return res, nil
}

func (s *serviceImpl) Reschedule(ctx context.Context, id, customerID string, req dto.RescheduleRequest) (res dto.RescheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	newStart, err := req.StartInstant()
	if err != nil {
		return res, failure.BadRequestFromString("invalid starts_at, expected RFC3339") //nolint:wrapcheck
	}

	appointment, err := s.getOwned(ctx, id, customerID)
	if err != nil {
		return res, err
	}

	if appointment.Status != model.StatusPending {
		return res, failure.Conflict("only pending appointments can be rescheduled") //nolint:wrapcheck
	}

	now := s.settings.clock()

	if appointment.StartsAt.Sub(now) < s.settings.CancelLeadTime {
		return res, failure.Conflict("original start is too close to reschedule") //nolint:wrapcheck
	}

	if newStart.Sub(now) < s.settings.CancelLeadTime {
		return res, failure.Conflict("new start is too close to now") //nolint:wrapcheck
	}

	svc, err := s.catalog.GetService(ctx, appointment.ServiceID)
	if err != nil {
		return res, err
	}

	pricing := s.resolvePricing(ctx, svc, constant.Empty)
	newEnd := newStart.Add(time.Duration(pricing.DurationMinutes) * time.Minute)

	affected, err := s.repo.UpdateTimes(ctx, id, newStart, newEnd, customerID)
	if err != nil {
		log.Error().Err(err).Str("appointmentID", id).Msg("failed to reschedule appointment")

		return res, err
	}

	if affected == 0 {
		return res, failure.Conflict("only pending appointments can be rescheduled") //nolint:wrapcheck
	}

	s.invalidateAppointmentCaches(ctx)

	res.StartsAt = newStart.UTC().Format(constant.DateFormat)
	res.EndsAt = newEnd.UTC().Format(constant.DateFormat)

	return res, nil
}

// getOwned fetches the appointment and hides it from callers who do not own
// it. An ownership mismatch is indistinguishable from a missing row.
func (s *serviceImpl) getOwned(ctx context.Context, id, customerID string) (model.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("appointmentID", id).Msg("failed to get appointment")

		return appointment, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty || appointment.CustomerID != customerID {
		return appointment, failure.NotFound("appointment not found") //nolint:wrapcheck
	}

	return appointment, nil
}

func (s *serviceImpl) invalidateAppointmentCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheAvailability)
		shared.InvalidateCaches(c, s.cache, cacheGet)
		shared.InvalidateCaches(c, s.cache, cacheGetAll)
		shared.InvalidateCaches(c, s.cache, cacheCalendar)
	}()
}

// ComputeRefund returns the amount to hand back on cancellation. Outside the
// penalty window everything paid comes back; inside it the deposit is
// forfeited and the result is clamped at zero.
func ComputeRefund(paidCents, depositCents int64, insidePenalty bool) int64 {
	if !insidePenalty {
		return paidCents
	}

	refund := paidCents - depositCents
	if refund < 0 {
		return 0
	}

	return refund
}

func containsInstant(slots []time.Time, target time.Time) bool {
	for _, slot := range slots {
		if slot.Equal(target) {
			return true
		}
	}

	return false
}
