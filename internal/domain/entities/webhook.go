package entities

import "time"

// EventWildcard subscribes a registration to every event.
const EventWildcard = "*"

// Gateway event names fired by the lifecycle engines.
const (
	EventPaymentCreated  = "payment.created"
	EventPaymentUpdated  = "payment.updated"
	EventPaymentRefunded = "payment.refunded"
	// EventPayment is the bare event used for recurring charges, mirroring
	// the provider convention for subscription-generated payments.
	EventPayment     = "payment"
	EventPreapproval = "subscription_preapproval"
)

// Resource types carried in webhook envelopes.
const (
	ResourceTypePayment     = "payment"
	ResourceTypePreapproval = "subscription_preapproval"
)

// WebhookRegistration is one endpoint interested in gateway events.
//
// Storage model (DynamoDB): PK id.
type WebhookRegistration struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Events      []string  `json:"events"`
	Active      bool      `json:"active"`
	DateCreated time.Time `json:"date_created"`
}

// Matches reports whether the registration wants the given event.
func (w WebhookRegistration) Matches(event string) bool {
	if !w.Active {
		return false
	}
	for _, e := range w.Events {
		if e == EventWildcard || e == event {
			return true
		}
	}
	return false
}

// WebhookDeliveryLog records one delivery attempt. The collection is a capped
// ring: only the most recent entries are retained.
//
// Storage model (DynamoDB): PK id.
type WebhookDeliveryLog struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	Event        string    `json:"event"`
	ResourceID   string    `json:"resource_id"`
	StatusCode   int       `json:"status_code"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	ResponseBody string    `json:"response_body,omitempty"`
	DateCreated  time.Time `json:"date_created"`
}
