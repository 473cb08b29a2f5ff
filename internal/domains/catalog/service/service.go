package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"agendo/infras/otel"
	"agendo/internal/domains/catalog/model"
	"agendo/internal/domains/catalog/repository"
	"agendo/shared"
	"agendo/shared/constant"
	"agendo/shared/failure"

	"github.com/rs/zerolog/log"
)

type Catalog interface {
	GetService(ctx context.Context, id string) (model.Service, error)
	// ResolvePricing returns the effective pricing for the service, or
	// ok=false when the service has no eligible assignment. The caller
	// decides the fallback (typically the service's base values).
	ResolvePricing(ctx context.Context, serviceID, preferredTypeID string) (model.ResolvedPricing, bool, error)
}

type serviceImpl struct {
	repo repository.Catalog
	otel otel.Otel
}

func New(repo repository.Catalog, otl otel.Otel) Catalog {
	return &serviceImpl{
		repo: repo,
		otel: otl,
	}
}

func (s *serviceImpl) GetService(ctx context.Context, id string) (model.Service, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetService")
	defer scope.End()

	svc, err := s.repo.GetService(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("serviceID", id).Msg("failed to get service")

		return svc, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.ID == constant.Empty {
		return svc, failure.NotFound("service not found") //nolint:wrapcheck
	}

	return svc, nil
}

func (s *serviceImpl) ResolvePricing(ctx context.Context, serviceID, preferredTypeID string) (model.ResolvedPricing, bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolvePricing")
	defer scope.End()

	svc, err := s.GetService(ctx, serviceID)
	if err != nil {
		return model.ResolvedPricing{}, false, err
	}

	assignments, err := s.repo.ListAssignments(ctx, serviceID)
	if err != nil {
		log.Error().Err(err).Str("serviceID", serviceID).Msg("failed to list service type assignments")

		return model.ResolvedPricing{}, false, fmt.Errorf("failed to list service type assignments: %w", err)
	}

	return ResolvePricing(svc, assignments, preferredTypeID)
}

// ResolvePricing picks the effective assignment and applies its overrides.
// Assignments must already be ordered by creation time then service-type id.
// Assignments whose service-type is missing or inactive never participate.
func ResolvePricing(svc model.Service, assignments []model.ServiceTypeAssignment, preferredTypeID string) (model.ResolvedPricing, bool, error) {
	eligible := make([]model.ServiceTypeAssignment, 0, len(assignments))

	for _, assignment := range assignments {
		if assignment.Eligible() {
			eligible = append(eligible, assignment)
		}
	}

	if len(eligible) == 0 {
		return model.ResolvedPricing{}, false, nil
	}

	selected := eligible[0]

	if preferredTypeID != constant.Empty {
		for _, assignment := range eligible {
			if assignment.ServiceTypeID == preferredTypeID {
				selected = assignment

				break
			}
		}
	}

	return selected.Resolve(svc), true, nil
}
