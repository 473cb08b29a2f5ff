package router

import (
	"agendo/internal/handlers/appointment"
	"agendo/internal/handlers/availability"
	"agendo/internal/handlers/webhook"
	"agendo/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Availability availability.Handler
	Appointment  appointment.Handler
	Webhook      webhook.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.App
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.Tracing)
		routerGroup.Use(r.Middleware.RateLimit)
		routerGroup.Use(r.Middleware.CustomerContext)

		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Webhook.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.App) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
