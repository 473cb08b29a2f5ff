package appointment

import (
	"context"
	"net/http"

	"agendo/infras/otel"
	"agendo/internal/domains/appointment/model/dto"
	"agendo/internal/domains/appointment/service"
	paymentService "agendo/internal/domains/payment/service"
	"agendo/shared/constant"
	gDto "agendo/shared/dto"
	"agendo/shared/failure"
	"agendo/shared/validator"
	"agendo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Appointment
	payments paymentService.Payment
	otel     otel.Otel
}

func New(service service.Appointment, payments paymentService.Payment, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		payments: payments,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAppointment)
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Get("/calendar", handler.GetCalendar)
		routerGroup.Get("/{id}", handler.GetAppointmentByID)
		routerGroup.Post("/{id}/cancel", handler.CancelAppointment)
		routerGroup.Post("/{id}/reschedule", handler.RescheduleAppointment)
		routerGroup.Post("/{id}/checkout", handler.Checkout)
	})
}

// CreateAppointment books a pending appointment on a validated free slot.
func (handler *Handler) CreateAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAppointment")
	defer scope.End()

	customerID, ok := customerFromContext(ctx, writer)
	if !ok {
		return
	}

	req := dto.CreateAppointmentRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	req.CustomerID = customerID

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create appointment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment created by customer " + customerID)

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) GetAppointments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	customerID, ok := customerFromContext(ctx, writer)
	if !ok {
		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	status := request.URL.Query().Get(constant.RequestParamStatus)

	res, err := handler.service.GetAll(ctx, queryParams, customerID, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) GetAppointmentByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	customerID, ok := customerFromContext(ctx, writer)
	if !ok {
		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetCalendar returns the day-level availability snapshot for a branch.
func (handler *Handler) GetCalendar(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	customerID, _ := ctx.Value(constant.ContextKeyCustomerID).(string)

	query := request.URL.Query()

	req := dto.CalendarRequest{
		BranchID: query.Get(constant.RequestParamBranchID),
		StaffID:  query.Get(constant.RequestParamStaffID),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate calendar request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.BuildCalendar(ctx, req, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build calendar")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) CancelAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAppointment")
	defer scope.End()

	customerID, ok := customerFromContext(ctx, writer)
	if !ok {
		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Cancel(ctx, id, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel appointment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment canceled by customer " + customerID)

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) RescheduleAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleAppointment")
	defer scope.End()

	customerID, ok := customerFromContext(ctx, writer)
	if !ok {
		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.RescheduleRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Reschedule(ctx, id, customerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule appointment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment rescheduled by customer " + customerID)

	response.WithJSON(writer, http.StatusOK, res)
}

// Checkout opens a payment order for the appointment's outstanding deposit.
func (handler *Handler) Checkout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	customerID, ok := customerFromContext(ctx, writer)
	if !ok {
		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.payments.Checkout(ctx, id, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open checkout")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func customerFromContext(ctx context.Context, writer http.ResponseWriter) (string, bool) {
	customerID, _ := ctx.Value(constant.ContextKeyCustomerID).(string)
	if customerID == constant.Empty {
		response.WithError(writer, failure.Unauthorized("missing customer identity"))

		return constant.Empty, false
	}

	return customerID, true
}
