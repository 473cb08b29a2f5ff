package service

import (
	"time"

	"agendo/config"
	"agendo/shared/timezone"
)

// Settings carries every tunable the booking operations depend on. It is
// built once from the environment and injected, so tests can vary thresholds
// and the clock without touching process-wide state.
type Settings struct {
	SlotStep             time.Duration
	DefaultBufferMinutes int
	CancelLeadTime       time.Duration
	AutoCompleteGrace    time.Duration
	AutoCancelGrace      time.Duration
	SweepBatchSize       int
	SnapshotHorizonDays  int

	// Now supplies the current instant. Defaults to the application clock.
	Now func() time.Time
}

func NewSettings(cfg *config.Config) Settings {
	return Settings{
		SlotStep:             time.Duration(cfg.Booking.SlotStepMinutes) * time.Minute,
		DefaultBufferMinutes: cfg.Booking.DefaultBufferMinutes,
		CancelLeadTime:       time.Duration(cfg.Booking.CancelLeadTimeHours) * time.Hour,
		AutoCompleteGrace:    time.Duration(cfg.Booking.AutoCompleteGraceHours) * time.Hour,
		AutoCancelGrace:      time.Duration(cfg.Booking.AutoCancelGraceHours) * time.Hour,
		SweepBatchSize:       cfg.Booking.SweepBatchSize,
		SnapshotHorizonDays:  cfg.Booking.SnapshotHorizonDays,
		Now:                  timezone.Now,
	}
}

func (s Settings) clock() time.Time {
	if s.Now == nil {
		return timezone.Now()
	}

	return s.Now()
}
