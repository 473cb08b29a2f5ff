package service

import (
	"context"
	"fmt"

	"agendo/internal/domains/appointment/model"
	"agendo/internal/domains/appointment/model/dto"
	"agendo/shared/constant"

	"github.com/rs/zerolog/log"
)

// RunMaintenanceSweep finalizes stale appointments in two bounded passes:
// anything that started long enough ago is completed, and pending holds whose
// deposit stayed unpaid past the grace period are canceled. Callers wanting
// full convergence repeat the sweep until both counts are zero.
func (s *serviceImpl) RunMaintenanceSweep(ctx context.Context) (res dto.SweepResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSweepScopeName, constant.OtelSweepScopeName+".RunMaintenanceSweep")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.settings.clock()

	completed, err := s.repo.CompleteStale(ctx, now.Add(-s.settings.AutoCompleteGrace), s.settings.SweepBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to auto-complete stale appointments")

		return res, fmt.Errorf("failed to auto-complete stale appointments: %w", err)
	}

	holds, err := s.repo.ListUnpaidHolds(ctx, now.Add(-s.settings.AutoCancelGrace), s.settings.SweepBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list unpaid holds")

		return res, fmt.Errorf("failed to list unpaid holds: %w", err)
	}

	canceled, err := s.repo.CancelByIDs(ctx, PendingHoldsToCancel(holds), model.SweepActor)
	if err != nil {
		log.Error().Err(err).Msg("failed to auto-cancel unpaid holds")

		return res, fmt.Errorf("failed to auto-cancel unpaid holds: %w", err)
	}

	if completed > 0 || canceled > 0 {
		s.invalidateAppointmentCaches(ctx)

		log.Info().
			Int64("completed", completed).
			Int64("canceled", canceled).
			Msg("maintenance sweep applied transitions")
	}

	res.CompletedCount = completed
	res.CanceledCount = canceled

	return res, nil
}

// PendingHoldsToCancel keeps the holds whose required deposit is positive and
// not yet covered by approved payments. A zero required deposit means nothing
// was ever owed, so the hold survives. Duplicate ids collapse to one.
func PendingHoldsToCancel(holds []model.UnpaidHold) []string {
	ids := []string{}
	seen := map[string]bool{}

	for _, hold := range holds {
		if seen[hold.ID] {
			continue
		}

		required := hold.RequiredDepositCents()
		if required <= 0 {
			continue
		}

		if hold.PaidCents() >= required {
			continue
		}

		seen[hold.ID] = true
		ids = append(ids, hold.ID)
	}

	return ids
}
