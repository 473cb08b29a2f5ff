package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendo/config"
	"agendo/di"
	appointmentService "agendo/internal/domains/appointment/service"
	"agendo/shared/logger"

	"github.com/rs/zerolog/log"
)

const sweepInterval = time.Minute

// The sweeper finalizes stale appointments on a fixed interval. Each tick
// repeats the bounded sweep until a pass reports zero transitions, so the
// backlog converges even after downtime.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	service := di.InitializeSweeper()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Dur("interval", sweepInterval).Msg("maintenance sweeper started")

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		sweepUntilConverged(ctx, service)

		select {
		case <-ctx.Done():
			log.Info().Msg("maintenance sweeper shutting down")

			return
		case <-ticker.C:
		}
	}
}

func sweepUntilConverged(ctx context.Context, service appointmentService.Appointment) {
	for {
		if ctx.Err() != nil {
			return
		}

		res, err := service.RunMaintenanceSweep(ctx)
		if err != nil {
			log.Error().Err(err).Msg("maintenance sweep failed, retrying next tick")

			return
		}

		if res.CompletedCount == 0 && res.CanceledCount == 0 {
			return
		}
	}
}
