package availability

import (
	"net/http"

	"agendo/infras/otel"
	"agendo/internal/domains/appointment/model/dto"
	"agendo/internal/domains/appointment/service"
	"agendo/shared/constant"
	"agendo/shared/validator"
	"agendo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Appointment
	otel    otel.Otel
}

func New(service service.Appointment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.GetAvailability)
}

// GetAvailability returns the free slot starts for one service/staff/day.
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	query := request.URL.Query()

	req := dto.AvailabilityRequest{
		ServiceID:     query.Get(constant.RequestParamServiceID),
		ServiceTypeID: query.Get(constant.RequestParamServiceType),
		StaffID:       query.Get(constant.RequestParamStaffID),
		Date:          query.Get(constant.RequestParamDate),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ComputeAvailableSlots(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute available slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
