package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	request "gatewaysim/internal/adapter/http/dto/request"
	response "gatewaysim/internal/adapter/http/dto/response"
	"gatewaysim/internal/domain/entities"
	"gatewaysim/internal/usecase"
	"gatewaysim/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for the payment lifecycle: checkout
// preferences, direct creation, capture/cancel/refund and PIX confirmation.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePreference opens a checkout intent and returns the init_point the
// buyer should be redirected to.
func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	var payload request.PreferenceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	in := usecase.PreferenceInput{
		TransactionAmount: payload.TransactionAmount,
		Description:       payload.Description,
		PayerEmail:        payload.Payer.Email,
		ExternalReference: payload.ExternalReference,
		NotificationURL:   payload.NotificationURL,
		BackURLs: entities.BackURLs{
			Success: payload.BackURLs.Success,
			Failure: payload.BackURLs.Failure,
			Pending: payload.BackURLs.Pending,
		},
		Metadata: payload.Metadata,
	}
	for _, item := range payload.Items {
		in.Items = append(in.Items, usecase.PreferenceItem{
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	created, err := h.usecase.CreatePreference(c.Request.Context(), in)
	if err != nil {
		log.Printf("[payment][handler] create-preference failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-preference success preference_id=%s payment_id=%s", created.PreferenceID, created.ID)

	c.JSON(http.StatusCreated, response.FromPreference(created, gatewayBaseURL()))
}

// ProcessCheckout resolves a preference-created payment with the buyer's
// chosen payment method.
func (h *PaymentHandler) ProcessCheckout(c *gin.Context) {
	paymentID := c.Param("id")
	log.Printf("[payment][handler] checkout start payment_id=%s", paymentID)

	var payload request.CheckoutProcessRequest
	raw, err := bindWithRaw(c, &payload)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	in := usecase.CheckoutInput{
		PaymentMethodID: payload.PaymentMethodID,
		Installments:    payload.Installments,
		Card:            toCardInput(payload.Card),
		Payer:           toPayerInput(payload.Payer),
		SimulateStatus:  payload.SimulateStatus,
		Raw:             raw,
	}
	if payload.BackURLs != nil {
		in.BackURLs = entities.BackURLs{
			Success: payload.BackURLs.Success,
			Failure: payload.BackURLs.Failure,
			Pending: payload.BackURLs.Pending,
		}
	}

	result, err := h.usecase.ProcessCheckout(c.Request.Context(), paymentID, in)
	if err != nil {
		log.Printf("[payment][handler] checkout failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] checkout success payment_id=%s status=%s", result.Payment.ID, result.Payment.Status)

	c.JSON(http.StatusOK, response.CheckoutResponse{
		Payment:     response.FromPayment(result.Payment),
		RedirectURL: result.RedirectURL,
	})
}

// CreatePayment creates and resolves a payment in a single call.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	raw, err := bindWithRaw(c, &payload)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	in := usecase.PaymentInput{
		TransactionAmount:           payload.TransactionAmount,
		CurrencyID:                  payload.CurrencyID,
		Description:                 payload.Description,
		PaymentMethodID:             payload.PaymentMethodID,
		Installments:                payload.Installments,
		Card:                        toCardInput(payload.Card),
		Payer:                       toPayerInput(payload.Payer),
		ExternalReference:           payload.ExternalReference,
		Metadata:                    payload.Metadata,
		NotificationURL:             payload.NotificationURL,
		SimulateStatus:              payload.SimulateStatus,
		CreateSubscriptionOnConfirm: payload.CreateSubscriptionOnConfirm,
		Raw:                         raw,
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s status=%s detail=%s", created.ID, created.Status, created.StatusDetail)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// GetPayment returns one payment by id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")

	payment, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ListPayments lists payments, optionally filtered by external_reference,
// subscription_id or status.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	filter := usecase.PaymentFilter{
		ExternalReference: c.Query("external_reference"),
		SubscriptionID:    c.Query("subscription_id"),
		Status:            c.Query("status"),
	}

	payments, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[payment][handler] list failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// CapturePayment captures a pending or in_process payment.
func (h *PaymentHandler) CapturePayment(c *gin.Context) {
	h.patchPayment(c, "capture", h.usecase.Capture)
}

// CancelPayment cancels a payment that has not moved money yet.
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	h.patchPayment(c, "cancel", h.usecase.Cancel)
}

// ConfirmPix settles a pending PIX payment, simulating the buyer completing
// the transfer.
func (h *PaymentHandler) ConfirmPix(c *gin.Context) {
	h.patchPayment(c, "pix-confirm", h.usecase.ConfirmPix)
}

// RefundPayment refunds an approved payment, fully or partially.
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] refund start payment_id=%s", id)

	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	refunded, err := h.usecase.Refund(c.Request.Context(), id, payload.Amount)
	if err != nil {
		log.Printf("[payment][handler] refund failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund success payment_id=%s status=%s refund_amount=%.2f", refunded.ID, refunded.Status, refunded.RefundAmount)

	c.JSON(http.StatusOK, response.FromPayment(refunded))
}

func (h *PaymentHandler) patchPayment(
	c *gin.Context,
	op string,
	updater func(ctx context.Context, id string) (entities.Payment, error),
) {
	id := c.Param("id")
	log.Printf("[payment][handler] %s start payment_id=%s", op, id)

	payment, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] %s failed payment_id=%s err=%v", op, id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] %s success payment_id=%s status=%s", op, payment.ID, payment.Status)

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// bindWithRaw binds the body into payload and also returns it as a generic
// map, so rule conditions can match on fields the typed DTO does not know.
func bindWithRaw(c *gin.Context, payload interface{}) (map[string]interface{}, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, payload); err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func toCardInput(card *request.CardRequest) *usecase.CardInput {
	if card == nil {
		return nil
	}
	return &usecase.CardInput{
		Number:          card.Number,
		HolderName:      card.HolderName,
		ExpirationMonth: card.ExpirationMonth,
		ExpirationYear:  card.ExpirationYear,
	}
}

func toPayerInput(payer request.PayerRequest) usecase.PayerInput {
	return usecase.PayerInput{
		Email:    payer.Email,
		Name:     payer.Name,
		Document: payer.Document,
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", usecase.ErrInvalidAmount.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", usecase.ErrInvalidPaymentMethod.Error(), http.StatusUnprocessableEntity).
			WithDetails(map[string]interface{}{"valid_payment_methods": entities.ValidPaymentMethods()})
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutAlreadyProcessed):
		return pkg.NewDomainErrorSimple("CHECKOUT_ALREADY_PROCESSED", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrCaptureNotAllowed),
		errors.Is(err, usecase.ErrCancelNotAllowed),
		errors.Is(err, usecase.ErrRefundNotAllowed),
		errors.Is(err, usecase.ErrNotPixPayment),
		errors.Is(err, usecase.ErrPixConfirmNotAllowed):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRefundExceedsAvailable):
		return pkg.NewDomainErrorSimple("REFUND_EXCEEDS_AVAILABLE", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// gatewayBaseURL is the externally reachable address used to build checkout
// init_point links.
func gatewayBaseURL() string {
	if v := strings.TrimSpace(os.Getenv("GATEWAY_BASE_URL")); v != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://localhost:8080"
}
