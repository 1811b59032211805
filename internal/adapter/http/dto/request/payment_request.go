package request

type CardRequest struct {
	Number          string `json:"number"`
	HolderName      string `json:"holder_name"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
}

type PayerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Document string `json:"document"`
}

// PaymentCreateRequest creates and resolves a payment in one call.
//
// `_simulate_status` short-circuits the rule engine and forces the given
// outcome; it is stripped before the payment is stored.
type PaymentCreateRequest struct {
	TransactionAmount           float64                `json:"transaction_amount"`
	CurrencyID                  string                 `json:"currency_id"`
	Description                 string                 `json:"description"`
	PaymentMethodID             string                 `json:"payment_method_id"`
	Installments                int                    `json:"installments"`
	Card                        *CardRequest           `json:"card"`
	Payer                       PayerRequest           `json:"payer"`
	ExternalReference           string                 `json:"external_reference"`
	Metadata                    map[string]interface{} `json:"metadata"`
	NotificationURL             string                 `json:"notification_url"`
	SimulateStatus              string                 `json:"_simulate_status"`
	CreateSubscriptionOnConfirm bool                   `json:"create_subscription_on_confirm"`
}

// CheckoutProcessRequest finishes a preference-created payment with the
// buyer's chosen payment method.
type CheckoutProcessRequest struct {
	PaymentMethodID string           `json:"payment_method_id"`
	Installments    int              `json:"installments"`
	Card            *CardRequest     `json:"card"`
	Payer           PayerRequest     `json:"payer"`
	SimulateStatus  string           `json:"_simulate_status"`
	BackURLs        *BackURLsRequest `json:"back_urls"`
}

// RefundRequest carries the optional partial amount; absent means full refund
// of whatever remains.
type RefundRequest struct {
	Amount *float64 `json:"amount"`
}
