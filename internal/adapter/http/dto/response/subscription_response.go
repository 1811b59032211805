package response

import (
	"time"

	"gatewaysim/internal/domain/entities"
)

type PlanResponse struct {
	ID            string                 `json:"id"`
	Reason        string                 `json:"reason"`
	AutoRecurring entities.AutoRecurring `json:"auto_recurring"`
	Status        string                 `json:"status"`
	DateCreated   time.Time              `json:"date_created"`
}

func FromPlan(p entities.Plan) PlanResponse {
	return PlanResponse{
		ID:            p.ID,
		Reason:        p.Reason,
		AutoRecurring: p.AutoRecurring,
		Status:        p.Status,
		DateCreated:   p.DateCreated,
	}
}

func FromPlans(plans []entities.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, FromPlan(p))
	}
	return out
}

type SubscriptionResponse struct {
	ID                string                 `json:"id"`
	PreapprovalPlanID string                 `json:"preapproval_plan_id,omitempty"`
	Status            string                 `json:"status"`
	PayerEmail        string                 `json:"payer_email"`
	Reason            string                 `json:"reason,omitempty"`
	ExternalReference string                 `json:"external_reference,omitempty"`
	AutoRecurring     entities.AutoRecurring `json:"auto_recurring"`
	NextPaymentDate   *time.Time             `json:"next_payment_date,omitempty"`
	Summarized        entities.Summarized    `json:"summarized"`
	DateCreated       time.Time              `json:"date_created"`
	LastModified      time.Time              `json:"last_modified"`
}

func FromSubscription(s entities.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:                s.ID,
		PreapprovalPlanID: s.PlanID,
		Status:            string(s.Status),
		PayerEmail:        s.PayerEmail,
		Reason:            s.Reason,
		ExternalReference: s.ExternalReference,
		AutoRecurring:     s.AutoRecurring,
		NextPaymentDate:   s.NextPaymentDate,
		Summarized:        s.Summarized,
		DateCreated:       s.DateCreated,
		LastModified:      s.LastModified,
	}
}

func FromSubscriptions(subs []entities.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubscription(s))
	}
	return out
}

// RecurringChargeResponse pairs the generated payment with the refreshed
// subscription counters.
type RecurringChargeResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
	Payment      PaymentResponse      `json:"payment"`
}
