package response

import (
	"fmt"
	"time"

	"gatewaysim/internal/domain/entities"
)

type CardResponse struct {
	FirstSixDigits  string `json:"first_six_digits"`
	LastFourDigits  string `json:"last_four_digits"`
	Brand           string `json:"brand"`
	HolderName      string `json:"holder_name,omitempty"`
	ExpirationMonth int    `json:"expiration_month,omitempty"`
	ExpirationYear  int    `json:"expiration_year,omitempty"`
}

type TransactionDetailsResponse struct {
	NetReceivedAmount float64 `json:"net_received_amount"`
	TotalPaidAmount   float64 `json:"total_paid_amount"`
	InstallmentAmount float64 `json:"installment_amount"`
}

type PaymentResponse struct {
	ID                 string                     `json:"id"`
	PreferenceID       string                     `json:"preference_id,omitempty"`
	Status             string                     `json:"status"`
	StatusDetail       string                     `json:"status_detail"`
	TransactionAmount  float64                    `json:"transaction_amount"`
	CurrencyID         string                     `json:"currency_id"`
	Description        string                     `json:"description,omitempty"`
	PaymentMethodID    string                     `json:"payment_method_id"`
	Installments       int                        `json:"installments"`
	Card               *CardResponse              `json:"card,omitempty"`
	Payer              entities.Payer             `json:"payer"`
	ExternalReference  string                     `json:"external_reference,omitempty"`
	Metadata           map[string]interface{}     `json:"metadata,omitempty"`
	SubscriptionID     string                     `json:"subscription_id,omitempty"`
	Captured           bool                       `json:"captured"`
	Refunded           bool                       `json:"refunded"`
	RefundAmount       float64                    `json:"refund_amount"`
	TransactionDetails TransactionDetailsResponse `json:"transaction_details"`
	NotificationURL    string                     `json:"notification_url,omitempty"`
	DateCreated        time.Time                  `json:"date_created"`
	DateApproved       *time.Time                 `json:"date_approved,omitempty"`
	DateLastUpdated    time.Time                  `json:"date_last_updated"`
	MoneyReleaseDate   *time.Time                 `json:"money_release_date,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:                p.ID,
		PreferenceID:      p.PreferenceID,
		Status:            string(p.Status),
		StatusDetail:      p.StatusDetail,
		TransactionAmount: p.TransactionAmount,
		CurrencyID:        p.CurrencyID,
		Description:       p.Description,
		PaymentMethodID:   p.PaymentMethodID,
		Installments:      p.Installments,
		Payer:             p.Payer,
		ExternalReference: p.ExternalReference,
		Metadata:          p.Metadata,
		SubscriptionID:    p.SubscriptionID,
		Captured:          p.Captured,
		Refunded:          p.Refunded,
		RefundAmount:      p.RefundAmount,
		TransactionDetails: TransactionDetailsResponse{
			NetReceivedAmount: p.TransactionDetails.NetReceivedAmount,
			TotalPaidAmount:   p.TransactionDetails.TotalPaidAmount,
			InstallmentAmount: p.TransactionDetails.InstallmentAmount,
		},
		NotificationURL:  p.NotificationURL,
		DateCreated:      p.DateCreated,
		DateApproved:     p.DateApproved,
		DateLastUpdated:  p.DateLastUpdated,
		MoneyReleaseDate: p.MoneyReleaseDate,
	}
	if p.Card != nil {
		resp.Card = &CardResponse{
			FirstSixDigits:  p.Card.FirstSixDigits,
			LastFourDigits:  p.Card.LastFourDigits,
			Brand:           p.Card.Brand,
			HolderName:      p.Card.HolderName,
			ExpirationMonth: p.Card.ExpirationMonth,
			ExpirationYear:  p.Card.ExpirationYear,
		}
	}
	return resp
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// PreferenceResponse mirrors the provider's checkout preference shape:
// `id` is the preference, `init_point` the hosted-checkout URL the buyer
// should be redirected to.
type PreferenceResponse struct {
	ID                string         `json:"id"`
	PaymentID         string         `json:"payment_id"`
	InitPoint         string         `json:"init_point"`
	SandboxInitPoint  string         `json:"sandbox_init_point"`
	ExternalReference string         `json:"external_reference,omitempty"`
	Payer             entities.Payer `json:"payer"`
	TransactionAmount float64        `json:"transaction_amount"`
	NotificationURL   string         `json:"notification_url,omitempty"`
	DateCreated       time.Time      `json:"date_created"`
}

func FromPreference(p entities.Payment, baseURL string) PreferenceResponse {
	initPoint := fmt.Sprintf("%s/v1/checkout/%s", baseURL, p.ID)
	return PreferenceResponse{
		ID:                p.PreferenceID,
		PaymentID:         p.ID,
		InitPoint:         initPoint,
		SandboxInitPoint:  initPoint,
		ExternalReference: p.ExternalReference,
		Payer:             p.Payer,
		TransactionAmount: p.TransactionAmount,
		NotificationURL:   p.NotificationURL,
		DateCreated:       p.DateCreated,
	}
}

// CheckoutResponse is the processed-checkout outcome plus the back URL the
// buyer should land on.
type CheckoutResponse struct {
	Payment     PaymentResponse `json:"payment"`
	RedirectURL string          `json:"redirect_url,omitempty"`
}
