package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"agendo/infras/otel"
	"agendo/infras/postgres"
	"agendo/internal/domains/catalog/model"
	gDto "agendo/shared/dto"
	gRepo "agendo/shared/repository"
)

type Catalog interface {
	GetService(ctx context.Context, filter gDto.FilterGroup) (model.Service, error)
	ServiceExists(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ListAssignments(ctx context.Context, serviceID string) ([]model.ServiceTypeAssignment, error)
}

type repositoryImpl struct {
	services    gRepo.Repository[model.Service]
	assignments gRepo.Repository[model.ServiceTypeAssignment]
	db          *postgres.Connection
	otel        otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Catalog {
	return &repositoryImpl{
		services:    gRepo.NewRepository[model.Service](model.EntityName, model.TableName, model.FieldID, db, otl),
		assignments: gRepo.NewRepository[model.ServiceTypeAssignment](model.AssignmentEntityName, model.AssignmentTableName, model.FieldID, db, otl),
		db:          db,
		otel:        otl,
	}
}

func (repo *repositoryImpl) GetService(ctx context.Context, filter gDto.FilterGroup) (model.Service, error) {
	return repo.services.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) ServiceExists(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.services.Exist(ctx, filter) //nolint:wrapcheck
}

// ListAssignments returns every assignment for the service joined with its
// service-type row, ordered by creation time then service-type id so
// resolution is deterministic.
func (repo *repositoryImpl) ListAssignments(ctx context.Context, serviceID string) ([]model.ServiceTypeAssignment, error) {
	params := gDto.QueryParams{
		SortBy:  model.AssignmentTableName + ".created_at, " + model.AssignmentTableName + "." + model.FieldServiceTypeID,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceID,
				Value:    serviceID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.AssignmentTableName,
			},
		},
	}

	return repo.assignments.GetAll(ctx, params, filter) //nolint:wrapcheck
}
