package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agendo/infras/otel"
	"agendo/infras/postgres"
	"agendo/internal/domains/appointment/model"
	"agendo/shared"
	"agendo/shared/constant"
	gDto "agendo/shared/dto"
	"agendo/shared/failure"
	"agendo/shared/logger"
	gRepo "agendo/shared/repository"
	"agendo/shared/timezone"

	"github.com/lib/pq"
)

type Appointment interface {
	Create(ctx context.Context, appointment model.Appointment) error
	GetByID(ctx context.Context, id string) (model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Appointment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	// ListBusyBetween returns the appointments of the staff member that
	// occupy any part of [from, to), canceled rows excluded, ordered by
	// start time.
	ListBusyBetween(ctx context.Context, staffID string, from, to time.Time) ([]model.Appointment, error)
	// ListForBranchBetween returns every non-canceled appointment of the
	// branch inside the window, optionally narrowed to one staff member.
	ListForBranchBetween(ctx context.Context, branchID, staffID string, from, to time.Time) ([]model.Appointment, error)
	UpdateStatus(ctx context.Context, id, status, user string) error
	// UpdateTimes moves a pending appointment atomically; the status guard
	// in the WHERE clause keeps concurrent confirmations from losing the
	// race. Returns the number of rows moved.
	UpdateTimes(ctx context.Context, id string, startsAt, endsAt time.Time, user string) (int64, error)
	// CompleteStale marks up to limit occupying appointments that started
	// before the cutoff as completed, returning how many rows changed.
	CompleteStale(ctx context.Context, before time.Time, limit int) (int64, error)
	// ListUnpaidHolds returns pending appointments created before the
	// cutoff together with their approved-payment totals, as raw column
	// text. Deposit sufficiency is the caller's call.
	ListUnpaidHolds(ctx context.Context, createdBefore time.Time, limit int) ([]model.UnpaidHold, error)
	CancelByIDs(ctx context.Context, ids []string, user string) (int64, error)
}

type repositoryImpl struct {
	appointments gRepo.Repository[model.Appointment]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Appointment {
	return &repositoryImpl{
		appointments: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:           db,
		otel:         otl,
	}
}

func (repo *repositoryImpl) Create(ctx context.Context, appointment model.Appointment) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.Create")
	defer scope.End()

	err := repo.appointments.Insert(ctx, appointment)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return failure.Conflict("time slot no longer available") //nolint:wrapcheck
	}

	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Appointment, error) {
	return repo.appointments.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Appointment, error) {
	return repo.appointments.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.appointments.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) ListBusyBetween(ctx context.Context, staffID string, from, to time.Time) ([]model.Appointment, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStaffID,
				Value:    staffID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusCanceled,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
			windowOverlap(from, to),
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldStartsAt,
		SortDir: gDto.SortDirAsc,
	}

	return repo.appointments.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) ListForBranchBetween(ctx context.Context, branchID, staffID string, from, to time.Time) ([]model.Appointment, error) {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldBranchID,
			Value:    branchID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Value:    model.StatusCanceled,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		},
		windowOverlap(from, to),
	}

	if staffID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStaffID,
			Value:    staffID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldStartsAt,
		SortDir: gDto.SortDirAsc,
	}

	return repo.appointments.GetAll(ctx, params, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id, status, user string) error {
	return repo.appointments.Update(ctx, map[string]any{ //nolint:wrapcheck
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (repo *repositoryImpl) UpdateTimes(ctx context.Context, id string, startsAt, endsAt time.Time, user string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.UpdateTimes")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s
		SET starts_at = :starts_at, ends_at = :ends_at, modified_at = :modified_at, modified_by = :modified_by
		WHERE id = :id AND status = :status`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"id":          id,
		"starts_at":   startsAt,
		"ends_at":     endsAt,
		"modified_at": timezone.Now(),
		"modified_by": user,
		"status":      model.StatusPending,
	})

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return 0, failure.Conflict("time slot no longer available") //nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to move appointment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

func (repo *repositoryImpl) CompleteStale(ctx context.Context, before time.Time, limit int) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.CompleteStale")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s
		SET status = :completed, modified_at = :modified_at, modified_by = :modified_by
		WHERE id IN (
			SELECT id FROM %s
			WHERE status IN (:pending, :reserved, :confirmed) AND starts_at < :before
			ORDER BY starts_at ASC
			LIMIT :limit
		)`, model.TableName, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"completed":   model.StatusCompleted,
		"pending":     model.StatusPending,
		"reserved":    model.StatusReserved,
		"confirmed":   model.StatusConfirmed,
		"before":      before,
		"limit":       limit,
		"modified_at": timezone.Now(),
		"modified_by": model.SweepActor,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to complete stale appointments: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

func (repo *repositoryImpl) ListUnpaidHolds(ctx context.Context, createdBefore time.Time, limit int) ([]model.UnpaidHold, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.ListUnpaidHolds")
	defer scope.End()

	query := fmt.Sprintf(`SELECT a.id, a.deposit_cents::text AS deposit_cents, a.legacy_deposit, p.paid_total
		FROM %s a
		LEFT JOIN (
			SELECT appointment_id, SUM(amount_cents)::text AS paid_total
			FROM payments
			WHERE status = 'approved'
			GROUP BY appointment_id
		) p ON p.appointment_id = a.id
		WHERE a.status = :pending AND a.created_at < :before
		ORDER BY a.created_at ASC
		LIMIT :limit`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var holds []model.UnpaidHold

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return holds, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &holds, map[string]any{
		"pending": model.StatusPending,
		"before":  createdBefore,
		"limit":   limit,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return holds, fmt.Errorf("failed to list unpaid holds: %w", err)
	}

	return holds, nil
}

func (repo *repositoryImpl) CancelByIDs(ctx context.Context, ids []string, user string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.CancelByIDs")
	defer scope.End()

	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`UPDATE %s
		SET status = :canceled, modified_at = :modified_at, modified_by = :modified_by
		WHERE id = ANY(:ids) AND status = :pending`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"canceled":    model.StatusCanceled,
		"pending":     model.StatusPending,
		"ids":         pq.Array(ids),
		"modified_at": timezone.Now(),
		"modified_by": user,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to cancel appointments: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

// windowOverlap keeps rows whose [starts_at, ends_at) intersects [from, to).
func windowOverlap(from, to time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "window_end",
				Field:    model.FieldStartsAt,
				Value:    to,
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "window_start",
				Field:    model.FieldEndsAt,
				Value:    from,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
		},
	}
}
