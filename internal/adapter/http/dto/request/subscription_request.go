package request

import "time"

type FreeTrialRequest struct {
	Frequency     int    `json:"frequency"`
	FrequencyType string `json:"frequency_type"`
}

type AutoRecurringRequest struct {
	Frequency         int               `json:"frequency"`
	FrequencyType     string            `json:"frequency_type"`
	TransactionAmount float64           `json:"transaction_amount"`
	CurrencyID        string            `json:"currency_id"`
	StartDate         *time.Time        `json:"start_date"`
	EndDate           *time.Time        `json:"end_date"`
	Repetitions       *int              `json:"repetitions"`
	FreeTrial         *FreeTrialRequest `json:"free_trial"`
}

// PlanCreateRequest registers a reusable billing template.
type PlanCreateRequest struct {
	Reason        string               `json:"reason"`
	AutoRecurring AutoRecurringRequest `json:"auto_recurring"`
}

// SubscriptionCreateRequest opens a preapproval, optionally seeded from a plan.
type SubscriptionCreateRequest struct {
	PreapprovalPlanID string                `json:"preapproval_plan_id"`
	Reason            string                `json:"reason"`
	PayerEmail        string                `json:"payer_email"`
	ExternalReference string                `json:"external_reference"`
	Status            string                `json:"status"`
	AutoRecurring     *AutoRecurringRequest `json:"auto_recurring"`
}

// SubscriptionUpdateRequest patches a preapproval; only present fields are
// applied.
type SubscriptionUpdateRequest struct {
	Status            *string               `json:"status"`
	Reason            *string               `json:"reason"`
	ExternalReference *string               `json:"external_reference"`
	AutoRecurring     *AutoRecurringRequest `json:"auto_recurring"`
}

// RecurringChargeRequest triggers one billing cycle, addressing the
// subscription by id or by external_reference.
type RecurringChargeRequest struct {
	SubscriptionID    string  `json:"subscription_id"`
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
	PaymentMethodID   string  `json:"payment_method_id"`
	SimulateStatus    string  `json:"_simulate_status"`
}
