package dto

import (
	"encoding/json"
	"net/http"
)

type CheckoutResponse struct {
	PaymentID   string `json:"payment_id"`
	OrderID     string `json:"order_id"`
	CheckoutURL string `json:"checkout_url"`
	AmountCents int64  `json:"amount_cents"`
}

// WebhookEvent is the provider notification, reduced to what reconciliation
// needs. Providers deliver the order id either as a query parameter or inside
// the body's data object; both shapes are accepted.
type WebhookEvent struct {
	Provider string
	EventID  string
	OrderID  string
	Payload  []byte
}

type webhookBody struct {
	ID   string `json:"id"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// FromRequest extracts the event from an incoming webhook. A missing order id
// leaves OrderID empty; the caller treats that as a no-op, not an error,
// because providers retry deliveries aggressively.
func (e *WebhookEvent) FromRequest(r *http.Request, provider string, body []byte) {
	e.Provider = provider
	e.Payload = body

	query := r.URL.Query()
	e.OrderID = query.Get("id")

	if e.OrderID == "" {
		e.OrderID = query.Get("data.id")
	}

	var parsed webhookBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if e.OrderID == "" {
			e.OrderID = parsed.Data.ID
		}

		e.EventID = parsed.ID
	}

	if e.EventID == "" {
		e.EventID = e.OrderID
	}
}
