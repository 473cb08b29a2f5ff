package service

import (
	"context"
	"fmt"
	"time"

	"agendo/internal/domains/appointment/model"
	"agendo/internal/domains/appointment/model/dto"
	catalogModel "agendo/internal/domains/catalog/model"
	"agendo/shared"
	"agendo/shared/constant"
	"agendo/shared/failure"
	"agendo/shared/timezone"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) ComputeAvailableSlots(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ComputeAvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheAvailability, req.ServiceID, req.ServiceTypeID, req.StaffID, req.Date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	staffID, slots, err := s.availableSlots(ctx, req.ServiceID, req.ServiceTypeID, req.StaffID, req.Date)
	if err != nil {
		return res, err
	}

	res.FromSlots(staffID, req.Date, slots)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

// availableSlots runs the full engine for one service/staff/day and returns
// the staff member used plus the ascending list of free slot starts. Missing
// configuration (closed day, no staff, no staff hours) is an empty result,
// never an error.
func (s *serviceImpl) availableSlots(ctx context.Context, serviceID, serviceTypeID, staffID, date string) (string, []time.Time, error) {
	svc, err := s.catalog.GetService(ctx, serviceID)
	if err != nil {
		return staffID, nil, err
	}

	branch, err := s.schedule.GetBranch(ctx, svc.BranchID)
	if err != nil {
		log.Error().Err(err).Str("branchID", svc.BranchID).Msg("failed to get branch")

		return staffID, nil, fmt.Errorf("failed to get branch: %w", err)
	}

	loc := timezone.Location(branch.Timezone)

	day, err := timezone.ParseDate(date, loc)
	if err != nil {
		return staffID, nil, failure.BadRequestFromString("invalid date, expected YYYY-MM-DD") //nolint:wrapcheck
	}

	pricing := s.resolvePricing(ctx, svc, serviceTypeID)
	if pricing.DurationMinutes <= 0 {
		return staffID, nil, nil
	}

	span := time.Duration(pricing.DurationMinutes+pricing.BufferMinutes) * time.Minute
	weekday := timezone.WeekdayIndex(day, loc)

	hours, err := s.schedule.GetBusinessHours(ctx, svc.BranchID, weekday)
	if err != nil {
		log.Error().Err(err).Msg("failed to get business hours")

		return staffID, nil, fmt.Errorf("failed to get business hours: %w", err)
	}

	if hours.ID == constant.Empty {
		return staffID, nil, nil
	}

	if staffID == constant.Empty {
		staff, err := s.schedule.PickStaff(ctx, svc.BranchID, weekday)
		if err != nil {
			log.Error().Err(err).Msg("failed to pick staff")

			return staffID, nil, fmt.Errorf("failed to pick staff: %w", err)
		}

		if staff.ID == constant.Empty {
			return staffID, nil, nil
		}

		staffID = staff.ID
	}

	staffHours, err := s.schedule.GetStaffHours(ctx, staffID, weekday)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff hours")

		return staffID, nil, fmt.Errorf("failed to get staff hours: %w", err)
	}

	if staffHours.ID == constant.Empty {
		return staffID, nil, nil
	}

	dayStart, dayEnd, err := workingWindow(day, hours.OpenTime, hours.CloseTime, staffHours.StartTime, staffHours.EndTime, loc)
	if err != nil {
		return staffID, nil, failure.BadRequest(err) //nolint:wrapcheck
	}

	if !dayStart.Before(dayEnd) {
		return staffID, nil, nil
	}

	busy, err := s.busyIntervals(ctx, staffID, dayStart, dayEnd)
	if err != nil {
		return staffID, nil, err
	}

	return staffID, FreeSlots(dayStart, dayEnd, s.settings.SlotStep, span, busy), nil
}

// busyIntervals collects appointments and blackouts of the staff member that
// intersect the window. Stored rows are taken as is, the buffer lives on the
// candidate side only.
func (s *serviceImpl) busyIntervals(ctx context.Context, staffID string, from, to time.Time) ([]model.Interval, error) {
	appointments, err := s.repo.ListBusyBetween(ctx, staffID, from, to)
	if err != nil {
		log.Error().Err(err).Str("staffID", staffID).Msg("failed to list busy appointments")

		return nil, fmt.Errorf("failed to list busy appointments: %w", err)
	}

	blackouts, err := s.schedule.ListBlackouts(ctx, staffID, from, to)
	if err != nil {
		log.Error().Err(err).Str("staffID", staffID).Msg("failed to list blackouts")

		return nil, fmt.Errorf("failed to list blackouts: %w", err)
	}

	busy := make([]model.Interval, 0, len(appointments)+len(blackouts))

	for _, appointment := range appointments {
		busy = append(busy, model.Interval{Start: appointment.StartsAt, End: appointment.EndsAt})
	}

	for _, blackout := range blackouts {
		busy = append(busy, model.Interval{Start: blackout.StartsAt, End: blackout.EndsAt})
	}

	return busy, nil
}

// resolvePricing applies service-type overrides, falling back to the
// service's own base values when no eligible assignment exists.
func (s *serviceImpl) resolvePricing(ctx context.Context, svc catalogModel.Service, serviceTypeID string) catalogModel.ResolvedPricing {
	pricing, ok, err := s.catalog.ResolvePricing(ctx, svc.ID, serviceTypeID)
	if err != nil || !ok {
		return svc.BasePricing()
	}

	return pricing
}

// workingWindow intersects the branch's open hours with the staff member's
// personal hours on the given day: the window opens at the later start and
// closes at the earlier end.
func workingWindow(day time.Time, openClock, closeClock, staffStart, staffEnd string, loc *time.Location) (time.Time, time.Time, error) {
	openAt, err := timezone.AtClock(day, openClock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	closeAt, err := timezone.AtClock(day, closeClock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startAt, err := timezone.AtClock(day, staffStart, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endAt, err := timezone.AtClock(day, staffEnd, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if startAt.After(openAt) {
		openAt = startAt
	}

	if endAt.Before(closeAt) {
		closeAt = endAt
	}

	return openAt, closeAt, nil
}

// FreeSlots enumerates candidate starts on the step grid from dayStart while
// the candidate's span still fits before dayEnd, keeping every candidate
// whose [start, start+span) interval overlaps no busy interval. The overlap
// test is half-open, so back-to-back bookings touching at an endpoint are
// allowed.
func FreeSlots(dayStart, dayEnd time.Time, step, span time.Duration, busy []model.Interval) []time.Time {
	if span <= 0 || step <= 0 {
		return nil
	}

	slots := []time.Time{}

	for start := dayStart; !start.Add(span).After(dayEnd); start = start.Add(step) {
		candidate := model.Interval{Start: start, End: start.Add(span)}

		free := true

		for _, interval := range busy {
			if candidate.Overlaps(interval) {
				free = false

				break
			}
		}

		if free {
			slots = append(slots, start)
		}
	}

	return slots
}
