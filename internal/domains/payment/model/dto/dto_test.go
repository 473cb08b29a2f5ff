package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"agendo/internal/domains/payment/model"
	"agendo/internal/domains/payment/model/dto"
)

func TestWebhookEventFromRequest(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		body        string
		wantOrderID string
		wantEventID string
	}{
		{
			name:        "order id in the id query parameter",
			target:      "/webhooks/payments?id=ord-1",
			body:        `{}`,
			wantOrderID: "ord-1",
			wantEventID: "ord-1",
		},
		{
			name:        "order id in the data.id query parameter",
			target:      "/webhooks/payments?data.id=ord-2",
			body:        `{}`,
			wantOrderID: "ord-2",
			wantEventID: "ord-2",
		},
		{
			name:        "order id in the body's data object",
			target:      "/webhooks/payments",
			body:        `{"id":"evt-9","data":{"id":"ord-3"}}`,
			wantOrderID: "ord-3",
			wantEventID: "evt-9",
		},
		{
			name:        "query order id with a body event id",
			target:      "/webhooks/payments?id=ord-4",
			body:        `{"id":"evt-4"}`,
			wantOrderID: "ord-4",
			wantEventID: "evt-4",
		},
		{
			name:        "no order id anywhere",
			target:      "/webhooks/payments",
			body:        `{}`,
			wantOrderID: "",
			wantEventID: "",
		},
		{
			name:        "malformed body keeps the query order id",
			target:      "/webhooks/payments?id=ord-5",
			body:        `not json`,
			wantOrderID: "ord-5",
			wantEventID: "ord-5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("POST", tt.target, nil)

			var event dto.WebhookEvent
			event.FromRequest(request, model.ProviderMercadoPago, []byte(tt.body))

			assert.Equal(t, model.ProviderMercadoPago, event.Provider)
			assert.Equal(t, tt.wantOrderID, event.OrderID)
			assert.Equal(t, tt.wantEventID, event.EventID)
			assert.Equal(t, []byte(tt.body), event.Payload)
		})
	}
}
