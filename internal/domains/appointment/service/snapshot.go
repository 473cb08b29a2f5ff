package service

import (
	"context"
	"fmt"
	"time"

	"agendo/internal/domains/appointment/model"
	"agendo/internal/domains/appointment/model/dto"
	"agendo/shared"
	"agendo/shared/constant"
	"agendo/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	DayAvailable       = "available"
	DayPartiallyBooked = "partially_booked"
	DayFullyBooked     = "fully_booked"
)

// DefaultTimeLabels is the rendering template for a day's bookable hours.
// Day classification counts distinct occupied labels against its length.
var DefaultTimeLabels = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// SnapshotOptions tunes the snapshot builder. The zero value is unusable;
// use NewSnapshotOptions for sane defaults.
type SnapshotOptions struct {
	FallbackBufferMinutes int
	HorizonDays           int
	TimeLabels            []string
	Location              *time.Location
	Now                   time.Time
}

func NewSnapshotOptions(fallbackBuffer, horizonDays int, loc *time.Location, now time.Time) SnapshotOptions {
	if horizonDays <= 0 {
		horizonDays = 60
	}

	if loc == nil {
		loc = timezone.GetLocation()
	}

	return SnapshotOptions{
		FallbackBufferMinutes: fallbackBuffer,
		HorizonDays:           horizonDays,
		TimeLabels:            DefaultTimeLabels,
		Location:              loc,
		Now:                   now,
	}
}

// DaySnapshot is the advisory calendar affordance for a single day. Status
// reflects other customers' load; Mine is flagged independently, a day can be
// fully booked and still "mine".
type DaySnapshot struct {
	Date         string           `json:"date"`
	Status       string           `json:"status"`
	Mine         bool             `json:"mine"`
	BookedLabels []string         `json:"booked_labels"`
	Busy         []model.Interval `json:"busy"`
	Labels       []string         `json:"labels"`
}

func (s *serviceImpl) BuildCalendar(ctx context.Context, req dto.CalendarRequest, customerID string) (res []DaySnapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BuildCalendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheCalendar, req.BranchID, req.StaffID, customerID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for calendar")

		return res, nil
	}

	branch, err := s.schedule.GetBranch(ctx, req.BranchID)
	if err != nil {
		log.Error().Err(err).Str("branchID", req.BranchID).Msg("failed to get branch")

		return res, fmt.Errorf("failed to get branch: %w", err)
	}

	loc := timezone.Location(branch.Timezone)
	now := s.settings.clock()
	opts := NewSnapshotOptions(s.settings.DefaultBufferMinutes, s.settings.SnapshotHorizonDays, loc, now)

	from := timezone.StartOfDay(now, loc)
	to := from.AddDate(0, 0, opts.HorizonDays)

	appointments, err := s.repo.ListForBranchBetween(ctx, req.BranchID, req.StaffID, from, to)
	if err != nil {
		log.Error().Err(err).Str("branchID", req.BranchID).Msg("failed to list appointments for calendar")

		return res, fmt.Errorf("failed to list appointments for calendar: %w", err)
	}

	res = BuildAvailabilitySnapshot(appointments, customerID, opts)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save calendar to cache")
		}
	}()

	return res, nil
}

// BuildAvailabilitySnapshot classifies every day of the horizon from the raw
// appointment list. Only occupying appointments count; a day with no distinct
// occupied time labels is available, one matching the full template is fully
// booked, anything in between is partially booked. The user's own bookings
// flag the day as mine without changing the classification.
func BuildAvailabilitySnapshot(appointments []model.Appointment, userID string, opts SnapshotOptions) []DaySnapshot {
	type dayAcc struct {
		labels []string
		seen   map[string]bool
		busy   []model.Interval
		mine   bool
	}

	days := map[string]*dayAcc{}

	for _, appointment := range appointments {
		if !appointment.Occupying() {
			continue
		}

		date := timezone.DayString(appointment.StartsAt, opts.Location)

		acc, ok := days[date]
		if !ok {
			acc = &dayAcc{seen: map[string]bool{}}
			days[date] = acc
		}

		label := timezone.ClockString(appointment.StartsAt, opts.Location)
		if !acc.seen[label] {
			acc.seen[label] = true
			acc.labels = append(acc.labels, label)
		}

		buffer := appointment.BufferMinutes
		if buffer <= 0 {
			buffer = opts.FallbackBufferMinutes
		}

		acc.busy = append(acc.busy, model.Interval{
			Start: appointment.StartsAt,
			End:   appointment.EndsAt.Add(time.Duration(buffer) * time.Minute),
		})

		if userID != "" && appointment.CustomerID == userID {
			acc.mine = true
		}
	}

	start := timezone.StartOfDay(opts.Now, opts.Location)
	snapshots := make([]DaySnapshot, 0, opts.HorizonDays)

	for offset := range opts.HorizonDays {
		day := start.AddDate(0, 0, offset)
		date := timezone.DayString(day, opts.Location)

		snapshot := DaySnapshot{
			Date:         date,
			Status:       DayAvailable,
			BookedLabels: []string{},
			Busy:         []model.Interval{},
			Labels:       opts.TimeLabels,
		}

		if acc, ok := days[date]; ok {
			snapshot.Mine = acc.mine
			snapshot.BookedLabels = acc.labels
			snapshot.Busy = acc.busy

			switch {
			case len(acc.labels) == 0:
				snapshot.Status = DayAvailable
			case len(acc.labels) >= len(opts.TimeLabels):
				snapshot.Status = DayFullyBooked
			default:
				snapshot.Status = DayPartiallyBooked
			}
		}

		snapshots = append(snapshots, snapshot)
	}

	return snapshots
}
