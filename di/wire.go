//go:build wireinject
// +build wireinject

package di

import (
	"agendo/config"
	"agendo/infras/kafka"
	"agendo/infras/otel"
	"agendo/infras/postgres"
	"agendo/infras/redis"
	"agendo/shared/cache"
	"agendo/transport/http"
	"agendo/transport/http/middleware"
	"agendo/transport/http/router"

	appointmentRepository "agendo/internal/domains/appointment/repository"
	appointmentService "agendo/internal/domains/appointment/service"
	catalogRepository "agendo/internal/domains/catalog/repository"
	catalogService "agendo/internal/domains/catalog/service"
	"agendo/internal/domains/notify"
	paymentRepository "agendo/internal/domains/payment/repository"
	paymentService "agendo/internal/domains/payment/service"
	scheduleRepository "agendo/internal/domains/schedule/repository"

	appointmentHandler "agendo/internal/handlers/appointment"
	availabilityHandler "agendo/internal/handlers/availability"
	webhookHandler "agendo/internal/handlers/webhook"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	provideLedger,
	provideGateway,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	notify.NewDispatcher,
	paymentService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.NewSettings,
	appointmentService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	scheduleDomain,
	paymentDomain,
	appointmentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	appointmentHandler.New,
	webhookHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

// InitializeSweeper wires only what the maintenance sweeper binary needs.
func InitializeSweeper() appointmentService.Appointment {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
	)

	return nil
}
