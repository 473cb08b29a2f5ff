package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"agendo/infras/otel"
	"agendo/infras/postgres"
	"agendo/internal/domains/payment/model"
	"agendo/shared"
	"agendo/shared/constant"
	gDto "agendo/shared/dto"
	"agendo/shared/logger"
	gRepo "agendo/shared/repository"
	"agendo/shared/timezone"
)

type Payment interface {
	Insert(ctx context.Context, payment model.Payment) error
	GetByID(ctx context.Context, id string) (model.Payment, error)
	GetByProviderOrderID(ctx context.Context, provider, orderID string) (model.Payment, error)
	// ListApproved returns the appointment's approved payments oldest-first,
	// the order refunds are applied in.
	ListApproved(ctx context.Context, appointmentID string) ([]model.Payment, error)
	UpdateStatus(ctx context.Context, id, status, user string) error
	// Reconcile applies the classified provider state in one write: status,
	// the charge id the provider settled under, and the amount actually paid
	// when it differs from the requested amount.
	Reconcile(ctx context.Context, id, status, providerPaymentID string, amountCents int64, user string) error
	// PaidTotal sums approved payment amounts for the appointment. No rows
	// means zero, not an error.
	PaidTotal(ctx context.Context, appointmentID string) (int64, error)
}

type repositoryImpl struct {
	payments gRepo.Repository[model.Payment]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Payment {
	return &repositoryImpl{
		payments: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:       db,
		otel:     otl,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, payment model.Payment) error {
	return repo.payments.Insert(ctx, payment) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Payment, error) {
	return repo.payments.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetByProviderOrderID(ctx context.Context, provider, orderID string) (model.Payment, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldProvider,
				Value:    provider,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldProviderOrderID,
				Value:    orderID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return repo.payments.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) ListApproved(ctx context.Context, appointmentID string) ([]model.Payment, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAppointmentID,
				Value:    appointmentID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusApproved,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	return repo.payments.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id, status, user string) error {
	return repo.payments.Update(ctx, map[string]any{ //nolint:wrapcheck
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) Reconcile(ctx context.Context, id, status, providerPaymentID string, amountCents int64, user string) error {
	fields := shared.TransformFields(struct {
		Status            string `db:"status"`
		ProviderPaymentID string `db:"provider_payment_id"`
		AmountCents       int64  `db:"amount_cents"`
	}{status, providerPaymentID, amountCents}, user)

	return repo.payments.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) PaidTotal(ctx context.Context, appointmentID string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.PaidTotal")
	defer scope.End()

	query := fmt.Sprintf(`SELECT COALESCE(SUM(amount_cents), 0)
		FROM %s
		WHERE appointment_id = :appointment_id AND status = :status`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total int64

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &total, map[string]any{
		"appointment_id": appointmentID,
		"status":         model.StatusApproved,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum paid total: %w", err)
	}

	return total, nil
}
