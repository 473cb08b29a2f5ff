// Package notify schedules customer-facing reminder messages. Dispatch is
// fire-and-forget over Kafka; the reminder worker fleet consumes the topic.
package notify

//go:generate go run go.uber.org/mock/mockgen -source=./notify.go -destination=./mocks/notify_mock.go -package=mocks

import (
	"context"
	"fmt"

	"agendo/config"
	"agendo/infras/kafka"

	"github.com/rs/zerolog/log"
)

type Dispatcher interface {
	// EnqueueDefaultReminders schedules the standard reminder sequence for
	// the appointment. Failures are the caller's to swallow; confirming an
	// appointment must never hinge on reminder delivery.
	EnqueueDefaultReminders(ctx context.Context, appointmentID string) error
}

type reminderMessage struct {
	AppointmentID string `json:"appointment_id"`
	Kind          string `json:"kind"`
}

type dispatcherImpl struct {
	client kafka.Client
	topic  string
}

func NewDispatcher(client kafka.Client, cfg *config.Config) Dispatcher {
	return &dispatcherImpl{
		client: client,
		topic:  cfg.Kafka.ReminderTopic,
	}
}

func (d *dispatcherImpl) EnqueueDefaultReminders(ctx context.Context, appointmentID string) error {
	message := kafka.Message{
		Key: appointmentID,
		Value: reminderMessage{
			AppointmentID: appointmentID,
			Kind:          "default",
		},
	}

	if err := d.client.SendMessages(ctx, d.topic, message); err != nil {
		log.Error().Err(err).Str("appointmentID", appointmentID).Msg("failed to enqueue reminders")

		return fmt.Errorf("failed to enqueue reminders: %w", err)
	}

	return nil
}
