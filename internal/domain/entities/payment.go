package entities

import "time"

// PaymentStatus represents the outcome of a simulated charge.
//
// The set mirrors the provider's public statuses. Transitions are enforced by
// the Can* helpers below so the legality of an operation lives in one place
// instead of scattered string comparisons.

type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusApproved    PaymentStatus = "approved"
	PaymentStatusRejected    PaymentStatus = "rejected"
	PaymentStatusInProcess   PaymentStatus = "in_process"
	PaymentStatusCancelled   PaymentStatus = "cancelled"
	PaymentStatusRefunded    PaymentStatus = "refunded"
	PaymentStatusChargedBack PaymentStatus = "charged_back"
	PaymentStatusError       PaymentStatus = "error"
)

// StatusDetailAwaitingCheckout marks a payment created by a checkout
// preference that has not been processed yet.
const StatusDetailAwaitingCheckout = "awaiting_checkout"

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRejected,
		PaymentStatusInProcess, PaymentStatusCancelled, PaymentStatusRefunded,
		PaymentStatusChargedBack, PaymentStatusError:
		return true
	}
	return false
}

// ValidPaymentStatuses lists the accepted status values, for validation payloads.
func ValidPaymentStatuses() []string {
	return []string{
		string(PaymentStatusPending),
		string(PaymentStatusApproved),
		string(PaymentStatusRejected),
		string(PaymentStatusInProcess),
		string(PaymentStatusCancelled),
		string(PaymentStatusRefunded),
		string(PaymentStatusChargedBack),
		string(PaymentStatusError),
	}
}

// PaymentMethod values accepted by the simulator.
const (
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodDebitCard    = "debit_card"
	PaymentMethodPix          = "pix"
	PaymentMethodBoleto       = "boleto"
	PaymentMethodBankTransfer = "bank_transfer"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix,
		PaymentMethodBoleto, PaymentMethodBankTransfer:
		return true
	}
	return false
}

func ValidPaymentMethods() []string {
	return []string{
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodPix,
		PaymentMethodBoleto,
		PaymentMethodBankTransfer,
	}
}

// CardInfo keeps only the maskable parts of a card. The full PAN is never stored.
type CardInfo struct {
	FirstSixDigits  string `json:"first_six_digits"`
	LastFourDigits  string `json:"last_four_digits"`
	Brand           string `json:"brand"`
	HolderName      string `json:"holder_name"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
}

type Payer struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Document string `json:"document,omitempty"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// TransactionDetails carries the derived financial fields of a resolved payment.
type TransactionDetails struct {
	NetReceivedAmount float64 `json:"net_received_amount"`
	TotalPaidAmount   float64 `json:"total_paid_amount"`
	InstallmentAmount float64 `json:"installment_amount"`
}

// Payment is one attempted or completed charge.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (subscription_id-index): subscription_id
//   - GSI2 (external_reference-index): external_reference
type Payment struct {
	ID                 string             `json:"id"`
	PreferenceID       string             `json:"preference_id,omitempty"`
	Status             PaymentStatus      `json:"status"`
	StatusDetail       string             `json:"status_detail"`
	TransactionAmount  float64            `json:"transaction_amount"`
	CurrencyID         string             `json:"currency_id"`
	Description        string             `json:"description,omitempty"`
	PaymentMethodID    string             `json:"payment_method_id"`
	Installments       int                `json:"installments"`
	Card               *CardInfo          `json:"card,omitempty"`
	Payer              Payer              `json:"payer"`
	ExternalReference  string             `json:"external_reference,omitempty"`
	Metadata           map[string]any     `json:"metadata,omitempty"`
	SubscriptionID     string             `json:"subscription_id,omitempty"`
	Captured           bool               `json:"captured"`
	Refunded           bool               `json:"refunded"`
	RefundAmount       float64            `json:"refund_amount"`
	TransactionDetails TransactionDetails `json:"transaction_details"`
	NotificationURL    string             `json:"notification_url,omitempty"`
	BackURLs           BackURLs           `json:"back_urls,omitempty"`

	// CreateSubscriptionOnConfirm asks the PIX confirmation step to seed a
	// recurring Subscription from this payment's external_reference.
	CreateSubscriptionOnConfirm bool `json:"create_subscription_on_confirm,omitempty"`

	DateCreated      time.Time  `json:"date_created"`
	DateApproved     *time.Time `json:"date_approved,omitempty"`
	DateLastUpdated  time.Time  `json:"date_last_updated"`
	MoneyReleaseDate *time.Time `json:"money_release_date,omitempty"`
}

// AwaitingCheckout reports whether the payment is still in the pre-checkout
// sub-state created by a preference and may be processed.
func (p Payment) AwaitingCheckout() bool {
	return p.Status == PaymentStatusPending && p.StatusDetail == StatusDetailAwaitingCheckout
}

// CanCapture allows capture only from pending or in_process.
func (p Payment) CanCapture() bool {
	if p.AwaitingCheckout() {
		return false
	}
	return p.Status == PaymentStatusPending || p.Status == PaymentStatusInProcess
}

// CanCancel forbids cancelling a payment that already reached a money-moved
// or cancelled state.
func (p Payment) CanCancel() bool {
	switch p.Status {
	case PaymentStatusCancelled, PaymentStatusRefunded, PaymentStatusChargedBack:
		return false
	}
	return true
}

// CanRefund allows refunds only for approved payments.
func (p Payment) CanRefund() bool {
	return p.Status == PaymentStatusApproved
}

// RemainingRefundable is the amount still available for refund.
func (p Payment) RemainingRefundable() float64 {
	return p.TransactionAmount - p.RefundAmount
}
