package entities

import "time"

// SubscriptionStatus follows the provider's preapproval lifecycle.

type SubscriptionStatus string

const (
	SubscriptionStatusPending    SubscriptionStatus = "pending"
	SubscriptionStatusAuthorized SubscriptionStatus = "authorized"
	SubscriptionStatusPaused     SubscriptionStatus = "paused"
	SubscriptionStatusCancelled  SubscriptionStatus = "cancelled"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionStatusPending, SubscriptionStatusAuthorized,
		SubscriptionStatusPaused, SubscriptionStatusCancelled:
		return true
	}
	return false
}

func ValidSubscriptionStatuses() []string {
	return []string{
		string(SubscriptionStatusPending),
		string(SubscriptionStatusAuthorized),
		string(SubscriptionStatusPaused),
		string(SubscriptionStatusCancelled),
	}
}

// subscriptionTransitions is the single source of truth for legal moves.
// Cancelled is terminal.
var subscriptionTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionStatusPending:    {SubscriptionStatusAuthorized, SubscriptionStatusCancelled},
	SubscriptionStatusAuthorized: {SubscriptionStatusPaused, SubscriptionStatusCancelled},
	SubscriptionStatusPaused:     {SubscriptionStatusAuthorized, SubscriptionStatusCancelled},
	SubscriptionStatusCancelled:  {},
}

// CanTransitionTo reports whether moving to next is legal. Staying on the
// current status is always allowed (idempotent updates).
func (s SubscriptionStatus) CanTransitionTo(next SubscriptionStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range subscriptionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// FrequencyType values for AutoRecurring.
const (
	FrequencyTypeDays   = "days"
	FrequencyTypeMonths = "months"
)

type FreeTrial struct {
	Frequency     int    `json:"frequency"`
	FrequencyType string `json:"frequency_type"`
}

// AutoRecurring describes the billing cadence of a subscription or plan.
type AutoRecurring struct {
	Frequency         int        `json:"frequency"`
	FrequencyType     string     `json:"frequency_type"`
	TransactionAmount float64    `json:"transaction_amount"`
	CurrencyID        string     `json:"currency_id"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	Repetitions       *int       `json:"repetitions,omitempty"`
	FreeTrial         *FreeTrial `json:"free_trial,omitempty"`
}

// Summarized aggregates the charging history of a subscription.
type Summarized struct {
	ChargedQuantity       int        `json:"charged_quantity"`
	ChargedAmount         float64    `json:"charged_amount"`
	PendingChargeQuantity *int       `json:"pending_charge_quantity,omitempty"`
	LastChargedDate       *time.Time `json:"last_charged_date,omitempty"`
	LastChargedAmount     float64    `json:"last_charged_amount,omitempty"`
}

// Subscription (provider term: preapproval) is a recurring billing agreement.
// Payments generated from it carry its id in subscription_id.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (external_reference-index): external_reference
type Subscription struct {
	ID                string             `json:"id"`
	PlanID            string             `json:"preapproval_plan_id,omitempty"`
	Status            SubscriptionStatus `json:"status"`
	PayerEmail        string             `json:"payer_email"`
	Reason            string             `json:"reason,omitempty"`
	ExternalReference string             `json:"external_reference,omitempty"`
	AutoRecurring     AutoRecurring      `json:"auto_recurring"`
	NextPaymentDate   *time.Time         `json:"next_payment_date,omitempty"`
	Summarized        Summarized         `json:"summarized"`
	DateCreated       time.Time          `json:"date_created"`
	LastModified      time.Time          `json:"last_modified"`
}

// AdvanceNextPaymentDate moves next_payment_date one billing cycle forward,
// anchoring on now when no date is set yet.
func (s *Subscription) AdvanceNextPaymentDate(now time.Time) {
	base := now
	if s.NextPaymentDate != nil {
		base = *s.NextPaymentDate
	}
	var next time.Time
	switch s.AutoRecurring.FrequencyType {
	case FrequencyTypeDays:
		next = base.AddDate(0, 0, s.AutoRecurring.Frequency)
	default:
		next = base.AddDate(0, s.AutoRecurring.Frequency, 0)
	}
	s.NextPaymentDate = &next
}
