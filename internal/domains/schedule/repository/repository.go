package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"agendo/infras/otel"
	"agendo/infras/postgres"
	"agendo/internal/domains/schedule/model"
	"agendo/shared"
	"agendo/shared/constant"
	gDto "agendo/shared/dto"
	"agendo/shared/logger"
	gRepo "agendo/shared/repository"
)

type Schedule interface {
	GetBranch(ctx context.Context, id string) (model.Branch, error)
	GetStaff(ctx context.Context, id string) (model.Staff, error)
	// GetBusinessHours returns the zero model when no row exists for the
	// weekday; a closed day is an expected state, not an error.
	GetBusinessHours(ctx context.Context, branchID string, weekday int) (model.BusinessHours, error)
	GetStaffHours(ctx context.Context, staffID string, weekday int) (model.StaffHours, error)
	// PickStaff selects the active staff member of the branch with hours
	// defined for the weekday, lowest id first for determinism. Returns the
	// zero model when nobody qualifies.
	PickStaff(ctx context.Context, branchID string, weekday int) (model.Staff, error)
	ListBlackouts(ctx context.Context, staffID string, from, to time.Time) ([]model.Blackout, error)
}

type repositoryImpl struct {
	branches      gRepo.Repository[model.Branch]
	staff         gRepo.Repository[model.Staff]
	businessHours gRepo.Repository[model.BusinessHours]
	staffHours    gRepo.Repository[model.StaffHours]
	blackouts     gRepo.Repository[model.Blackout]
	db            *postgres.Connection
	otel          otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Schedule {
	return &repositoryImpl{
		branches:      gRepo.NewRepository[model.Branch](model.BranchEntityName, model.BranchTableName, model.FieldID, db, otl),
		staff:         gRepo.NewRepository[model.Staff](model.StaffEntityName, model.StaffTableName, model.FieldID, db, otl),
		businessHours: gRepo.NewRepository[model.BusinessHours](model.BusinessHoursEntityName, model.BusinessHoursTableName, model.FieldID, db, otl),
		staffHours:    gRepo.NewRepository[model.StaffHours](model.StaffHoursEntityName, model.StaffHoursTableName, model.FieldID, db, otl),
		blackouts:     gRepo.NewRepository[model.Blackout](model.BlackoutEntityName, model.BlackoutTableName, model.FieldID, db, otl),
		db:            db,
		otel:          otl,
	}
}

func (repo *repositoryImpl) GetBranch(ctx context.Context, id string) (model.Branch, error) {
	return repo.branches.Get(ctx, shared.FilterByID(id, model.FieldID, model.BranchTableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetStaff(ctx context.Context, id string) (model.Staff, error) {
	return repo.staff.Get(ctx, shared.FilterByID(id, model.FieldID, model.StaffTableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetBusinessHours(ctx context.Context, branchID string, weekday int) (model.BusinessHours, error) {
	return repo.businessHours.Get(ctx, weekdayFilter(model.BusinessHoursTableName, model.FieldBranchID, branchID, weekday)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetStaffHours(ctx context.Context, staffID string, weekday int) (model.StaffHours, error) {
	return repo.staffHours.Get(ctx, weekdayFilter(model.StaffHoursTableName, model.FieldStaffID, staffID, weekday)) //nolint:wrapcheck
}

func (repo *repositoryImpl) PickStaff(ctx context.Context, branchID string, weekday int) (model.Staff, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".staff.PickStaff")
	defer scope.End()

	query := fmt.Sprintf(`SELECT s.id, s.branch_id, s.name, s.active
		FROM %s s
		JOIN %s sh ON sh.staff_id = s.id AND sh.weekday = :weekday
		WHERE s.branch_id = :branch_id AND s.active
		ORDER BY s.id ASC
		LIMIT 1`, model.StaffTableName, model.StaffHoursTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var staff model.Staff

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return staff, fmt.Errorf("failed to prepare statement (%s): %w", model.StaffEntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &staff, map[string]any{
		"branch_id": branchID,
		"weekday":   weekday,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return model.Staff{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return staff, fmt.Errorf("failed to pick staff (%s): %w", model.StaffEntityName, err)
	}

	return staff, nil
}

func (repo *repositoryImpl) ListBlackouts(ctx context.Context, staffID string, from, to time.Time) ([]model.Blackout, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStaffID,
				Value:    staffID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.BlackoutTableName,
			},
			gDto.Filter{
				ArgName:  "window_end",
				Field:    model.FieldStartsAt,
				Value:    to,
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.BlackoutTableName,
			},
			gDto.Filter{
				ArgName:  "window_start",
				Field:    model.FieldEndsAt,
				Value:    from,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.BlackoutTableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldStartsAt,
		SortDir: gDto.SortDirAsc,
	}

	return repo.blackouts.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func weekdayFilter(table, ownerField, ownerID string, weekday int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    ownerField,
				Value:    ownerID,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
			gDto.Filter{
				Field:    model.FieldWeekday,
				Value:    weekday,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
