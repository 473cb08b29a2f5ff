package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"agendo/config"
	"agendo/infras/boltdb"
	"agendo/infras/otel"
	appointmentModel "agendo/internal/domains/appointment/model"
	appointmentRepository "agendo/internal/domains/appointment/repository"
	"agendo/internal/domains/notify"
	"agendo/internal/domains/payment/model"
	"agendo/internal/domains/payment/model/dto"
	"agendo/internal/domains/payment/provider"
	"agendo/internal/domains/payment/repository"
	"agendo/shared/constant"
	"agendo/shared/failure"
	"agendo/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReconcileActor is recorded as the modifier on rows changed by webhook
// reconciliation.
const ReconcileActor = "system:payment"

type Payment interface {
	// Checkout opens a provider order for the appointment's outstanding
	// deposit (or full price when no deposit is configured) and records the
	// pending payment attempt.
	Checkout(ctx context.Context, appointmentID, customerID string) (dto.CheckoutResponse, error)
	// RecordPaymentEvent reconciles one provider webhook delivery. Duplicate
	// events, unknown orders, and provider lookup failures resolve to a
	// successful no-op because providers retry deliveries.
	RecordPaymentEvent(ctx context.Context, event dto.WebhookEvent) error
	PaidTotal(ctx context.Context, appointmentID string) (int64, error)
	// RefundForCancellation pushes up to amountCents back onto the
	// appointment's approved payments, oldest first. Each provider call is
	// isolated; a failed refund is logged and skipped. Returns the amount
	// actually submitted for refund.
	RefundForCancellation(ctx context.Context, appointmentID string, amountCents int64) int64
}

type serviceImpl struct {
	repo         repository.Payment
	appointments appointmentRepository.Appointment
	gateway      provider.Gateway
	ledger       boltdb.Ledger
	notifier     notify.Dispatcher
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Payment,
	appointments appointmentRepository.Appointment,
	gateway provider.Gateway,
	ledger boltdb.Ledger,
	notifier notify.Dispatcher,
	cfg *config.Config,
	otl otel.Otel,
) Payment {
	return &serviceImpl{
		repo:         repo,
		appointments: appointments,
		gateway:      gateway,
		ledger:       ledger,
		notifier:     notifier,
		cfg:          cfg,
		otel:         otl,
	}
}

func (s *serviceImpl) Checkout(ctx context.Context, appointmentID, customerID string) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		log.Error().Err(err).Str("appointmentID", appointmentID).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty || appointment.CustomerID != customerID {
		return res, failure.NotFound("appointment not found") //nolint:wrapcheck
	}

	if appointment.Status != appointmentModel.StatusPending {
		return res, failure.Conflict("appointment is not awaiting payment") //nolint:wrapcheck
	}

	amount := appointment.RequiredDepositCents()
	kind := model.KindDeposit
	coversDeposit := true

	if amount <= 0 {
		amount = appointment.TotalCents
		kind = model.KindFull
		coversDeposit = false
	}

	if amount <= 0 {
		return res, failure.Conflict("appointment has nothing to pay") //nolint:wrapcheck
	}

	order, err := s.gateway.CreateOrder(ctx, provider.CreateOrderRequest{
		Title:           fmt.Sprintf("Appointment %s", appointmentID),
		AmountCents:     amount,
		Reference:       appointmentID,
		NotificationURL: s.cfg.Payment.MercadoPago.NotificationURL,
	})
	if err != nil {
		log.Error().Err(err).Str("appointmentID", appointmentID).Msg("failed to create provider order")

		return res, failure.Upstream(err) //nolint:wrapcheck
	}

	payment := model.Payment{
		ID:              uuid.NewString(),
		AppointmentID:   appointmentID,
		Provider:        model.ProviderMercadoPago,
		ProviderOrderID: order.OrderID,
		Kind:            kind,
		CoversDeposit:   coversDeposit,
		Status:          model.StatusPending,
		AmountCents:     amount,
	}
	payment.CreatedAt = timezone.Now()
	payment.ModifiedAt = timezone.Now()
	payment.CreatedBy = customerID
	payment.ModifiedBy = customerID

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Str("appointmentID", appointmentID).Msg("failed to record payment attempt")

		return res, fmt.Errorf("failed to record payment attempt: %w", err)
	}

	res.PaymentID = payment.ID
	res.OrderID = order.OrderID
	res.CheckoutURL = order.CheckoutURL
	res.AmountCents = amount

	return res, nil
}

func (s *serviceImpl) RecordPaymentEvent(ctx context.Context, event dto.WebhookEvent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPaymentEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if event.OrderID == constant.Empty {
		log.Warn().Str("provider", event.Provider).Msg("webhook event carries no order id, ignoring")

		return nil
	}

	// A ledger read failure must not block the event's business effect.
	seen, ledgerErr := s.ledger.Seen(event.Provider, event.EventID)
	if ledgerErr != nil {
		log.Error().Err(ledgerErr).Str("eventID", event.EventID).Msg("failed to read webhook event ledger")
	}

	if seen {
		log.Info().Str("eventID", event.EventID).Msg("duplicate webhook event, skipping")

		return nil
	}

	order, err := s.gateway.GetOrder(ctx, event.OrderID)
	if err != nil {
		log.Error().Err(err).Str("orderID", event.OrderID).Msg("failed to look up provider order, recording no-op")

		return nil
	}

	payment, err := s.repo.GetByProviderOrderID(ctx, event.Provider, event.OrderID)
	if err != nil {
		log.Error().Err(err).Str("orderID", event.OrderID).Msg("failed to get payment")

		return fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		log.Warn().Str("orderID", event.OrderID).Msg("webhook event for unknown order, ignoring")

		s.markProcessed(event)

		return nil
	}

	status := ClassifyOrder(order)
	if status == payment.Status {
		s.markProcessed(event)

		return nil
	}

	var chargeID string

	var paidCents int64

	for _, charge := range PaidCharges(order) {
		chargeID = charge.ID
		paidCents += charge.PaidCents
	}

	if err = s.repo.Reconcile(ctx, payment.ID, status, chargeID, paidCents, ReconcileActor); err != nil {
		log.Error().Err(err).Str("paymentID", payment.ID).Msg("failed to reconcile payment")

		return fmt.Errorf("failed to reconcile payment: %w", err)
	}

	if status == model.StatusApproved {
		s.confirmIfDepositCovered(ctx, payment.AppointmentID)
	}

	s.markProcessed(event)

	return nil
}

// markProcessed records the event in the ledger once its effect is applied.
// Events that failed mid-way stay unrecorded so the provider's retry gets
// reconciled instead of skipped as a duplicate.
func (s *serviceImpl) markProcessed(event dto.WebhookEvent) {
	if err := s.ledger.MarkProcessed(event.Provider, event.EventID, event.Payload); err != nil {
		log.Error().Err(err).Str("eventID", event.EventID).Msg("failed to mark webhook event processed")
	}
}

// confirmIfDepositCovered promotes a pending appointment once its approved
// payments cover the required deposit, then kicks off reminders. Reminder
// failures are logged and dropped.
func (s *serviceImpl) confirmIfDepositCovered(ctx context.Context, appointmentID string) {
	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		log.Error().Err(err).Str("appointmentID", appointmentID).Msg("failed to get appointment for confirmation")

		return
	}

	if appointment.ID == constant.Empty || appointment.Status != appointmentModel.StatusPending {
		return
	}

	paid, err := s.repo.PaidTotal(ctx, appointmentID)
	if err != nil {
		log.Error().Err(err).Str("appointmentID", appointmentID).Msg("failed to sum paid total for confirmation")

		return
	}

	required := appointment.RequiredDepositCents()
	if required > 0 && paid < required {
		return
	}

	if err = s.appointments.UpdateStatus(ctx, appointmentID, appointmentModel.StatusConfirmed, ReconcileActor); err != nil {
		log.Error().Err(err).Str("appointmentID", appointmentID).Msg("failed to confirm appointment")

		return
	}

	log.Info().Str("appointmentID", appointmentID).Int64("paid", paid).Msg("appointment confirmed by payment")

	if err = s.notifier.EnqueueDefaultReminders(ctx, appointmentID); err != nil {
		log.Error().Err(err).Str("appointmentID", appointmentID).Msg("failed to enqueue reminders")
	}
}

func (s *serviceImpl) PaidTotal(ctx context.Context, appointmentID string) (int64, error) {
	return s.repo.PaidTotal(ctx, appointmentID) //nolint:wrapcheck
}

func (s *serviceImpl) RefundForCancellation(ctx context.Context, appointmentID string, amountCents int64) int64 {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefundForCancellation")
	defer scope.End()

	if amountCents <= 0 {
		return 0
	}

	payments, err := s.repo.ListApproved(ctx, appointmentID)
	if err != nil {
		log.Error().Err(err).Str("appointmentID", appointmentID).Msg("failed to list approved payments for refund")

		return 0
	}

	remaining := amountCents

	var applied int64

	for _, payment := range payments {
		if remaining <= 0 {
			break
		}

		take := payment.AmountCents
		if take > remaining {
			take = remaining
		}

		partial := take < payment.AmountCents

		refundAmount := int64(0)
		if partial {
			refundAmount = take
		}

		if err := s.gateway.RefundCharge(ctx, payment.ProviderPaymentID, refundAmount); err != nil {
			log.Error().Err(err).
				Str("paymentID", payment.ID).
				Int64("amountCents", take).
				Msg("refund attempt failed, continuing with remaining payments")

			continue
		}

		status := model.StatusRefunded
		if partial {
			status = model.StatusPartiallyRefunded
		}

		if err := s.repo.UpdateStatus(ctx, payment.ID, status, ReconcileActor); err != nil {
			log.Error().Err(err).Str("paymentID", payment.ID).Msg("failed to mark payment refunded")
		}

		remaining -= take
		applied += take
	}

	return applied
}
