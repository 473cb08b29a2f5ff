package webhook

import (
	"io"
	"net/http"

	"agendo/infras/otel"
	paymentModel "agendo/internal/domains/payment/model"
	"agendo/internal/domains/payment/model/dto"
	"agendo/internal/domains/payment/service"
	"agendo/shared/constant"
	"agendo/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/webhooks/payments", handler.PaymentEvent)
}

// PaymentEvent ingests one provider notification. Malformed or duplicate
// deliveries answer 200 so the provider stops retrying them.
func (handler *Handler) PaymentEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PaymentEvent")
	defer scope.End()

	body, err := io.ReadAll(request.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook body")

		response.WithError(writer, err)

		return
	}

	event := dto.WebhookEvent{}
	event.FromRequest(request, paymentModel.ProviderMercadoPago, body)

	if err := handler.service.RecordPaymentEvent(ctx, event); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment event")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "event processed")
}
