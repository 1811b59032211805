package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "gatewaysim/internal/adapter/http/dto/request"
	response "gatewaysim/internal/adapter/http/dto/response"
	"gatewaysim/internal/domain/entities"
	"gatewaysim/internal/usecase"
	"gatewaysim/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSubscriptionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// SubscriptionHandler handles HTTP requests for plans and preapprovals.

type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc}
}

// CreatePlan registers a reusable billing template.
func (h *SubscriptionHandler) CreatePlan(c *gin.Context) {
	var payload request.PlanCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubscriptionPayload.HTTPStatus, errInvalidSubscriptionPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.CreatePlan(c.Request.Context(), usecase.PlanInput{
		Reason:        payload.Reason,
		AutoRecurring: toAutoRecurring(&payload.AutoRecurring),
	})
	if err != nil {
		log.Printf("[subscription][handler] create-plan failed err=%v", err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] create-plan success plan_id=%s", plan.ID)

	c.JSON(http.StatusCreated, response.FromPlan(plan))
}

// GetPlan returns one plan by id.
func (h *SubscriptionHandler) GetPlan(c *gin.Context) {
	plan, err := h.usecase.GetPlanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlan(plan))
}

// ListPlans lists all registered plans.
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.usecase.ListPlans(c.Request.Context())
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlans(plans))
}

// CreateSubscription opens a preapproval, optionally seeded from a plan.
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var payload request.SubscriptionCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubscriptionPayload.HTTPStatus, errInvalidSubscriptionPayload.ToHTTPError())
		return
	}

	in := usecase.SubscriptionInput{
		PlanID:            payload.PreapprovalPlanID,
		Reason:            payload.Reason,
		PayerEmail:        payload.PayerEmail,
		ExternalReference: payload.ExternalReference,
		Status:            payload.Status,
	}
	if payload.AutoRecurring != nil {
		recurring := toAutoRecurring(payload.AutoRecurring)
		in.AutoRecurring = &recurring
	}

	sub, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("[subscription][handler] create failed err=%v", err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] create success subscription_id=%s status=%s", sub.ID, sub.Status)

	c.JSON(http.StatusCreated, response.FromSubscription(sub))
}

// GetSubscription returns one preapproval by id.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	sub, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

// SearchSubscriptions lists preapprovals, optionally narrowed to a single
// external_reference.
func (h *SubscriptionHandler) SearchSubscriptions(c *gin.Context) {
	if ref := c.Query("external_reference"); ref != "" {
		sub, err := h.usecase.GetByExternalReference(c.Request.Context(), ref)
		if err != nil {
			appErr := mapSubscriptionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromSubscriptions([]entities.Subscription{sub}))
		return
	}

	subs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubscriptions(subs))
}

// UpdateSubscription patches a preapproval (status, reason, cadence).
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	id := c.Param("id")

	var payload request.SubscriptionUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubscriptionPayload.HTTPStatus, errInvalidSubscriptionPayload.ToHTTPError())
		return
	}

	patch := usecase.SubscriptionPatch{
		Status:            payload.Status,
		Reason:            payload.Reason,
		ExternalReference: payload.ExternalReference,
	}
	if payload.AutoRecurring != nil {
		recurring := toAutoRecurring(payload.AutoRecurring)
		patch.AutoRecurring = &recurring
	}

	sub, err := h.usecase.Update(c.Request.Context(), id, patch)
	if err != nil {
		log.Printf("[subscription][handler] update failed subscription_id=%s err=%v", id, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] update success subscription_id=%s status=%s", sub.ID, sub.Status)

	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

// PauseSubscription moves an authorized preapproval to paused.
func (h *SubscriptionHandler) PauseSubscription(c *gin.Context) {
	h.patchStatus(c, "pause", h.usecase.Pause)
}

// ReactivateSubscription moves a paused preapproval back to authorized.
func (h *SubscriptionHandler) ReactivateSubscription(c *gin.Context) {
	h.patchStatus(c, "reactivate", h.usecase.Reactivate)
}

// GeneratePayment triggers one billing cycle for the preapproval in the path.
func (h *SubscriptionHandler) GeneratePayment(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[subscription][handler] generate-payment start subscription_id=%s", id)

	var payload request.RecurringChargeRequest
	raw, err := bindWithRaw(c, &payload)
	if err != nil {
		c.JSON(errInvalidSubscriptionPayload.HTTPStatus, errInvalidSubscriptionPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.GeneratePayment(c.Request.Context(), id, usecase.RecurringChargeInput{
		TransactionAmount: payload.TransactionAmount,
		PaymentMethodID:   payload.PaymentMethodID,
		SimulateStatus:    payload.SimulateStatus,
		Raw:               raw,
	})
	if err != nil {
		log.Printf("[subscription][handler] generate-payment failed subscription_id=%s err=%v", id, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] generate-payment success subscription_id=%s payment_id=%s status=%s",
		result.Subscription.ID, result.Payment.ID, result.Payment.Status)

	c.JSON(http.StatusCreated, response.RecurringChargeResponse{
		Subscription: response.FromSubscription(result.Subscription),
		Payment:      response.FromPayment(result.Payment),
	})
}

// ChargeRecurring triggers one billing cycle addressing the preapproval by id
// or external_reference in the body.
func (h *SubscriptionHandler) ChargeRecurring(c *gin.Context) {
	var payload request.RecurringChargeRequest
	raw, err := bindWithRaw(c, &payload)
	if err != nil {
		c.JSON(errInvalidSubscriptionPayload.HTTPStatus, errInvalidSubscriptionPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ChargeRecurring(c.Request.Context(), usecase.RecurringChargeInput{
		SubscriptionID:    payload.SubscriptionID,
		ExternalReference: payload.ExternalReference,
		TransactionAmount: payload.TransactionAmount,
		PaymentMethodID:   payload.PaymentMethodID,
		SimulateStatus:    payload.SimulateStatus,
		Raw:               raw,
	})
	if err != nil {
		log.Printf("[subscription][handler] charge-recurring failed err=%v", err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] charge-recurring success subscription_id=%s payment_id=%s",
		result.Subscription.ID, result.Payment.ID)

	c.JSON(http.StatusCreated, response.RecurringChargeResponse{
		Subscription: response.FromSubscription(result.Subscription),
		Payment:      response.FromPayment(result.Payment),
	})
}

func (h *SubscriptionHandler) patchStatus(
	c *gin.Context,
	op string,
	updater func(ctx context.Context, id string) (entities.Subscription, error),
) {
	id := c.Param("id")
	log.Printf("[subscription][handler] %s start subscription_id=%s", op, id)

	sub, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[subscription][handler] %s failed subscription_id=%s err=%v", op, id, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] %s success subscription_id=%s status=%s", op, sub.ID, sub.Status)

	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

func toAutoRecurring(in *request.AutoRecurringRequest) entities.AutoRecurring {
	out := entities.AutoRecurring{
		Frequency:         in.Frequency,
		FrequencyType:     in.FrequencyType,
		TransactionAmount: in.TransactionAmount,
		CurrencyID:        in.CurrencyID,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		Repetitions:       in.Repetitions,
	}
	if in.FreeTrial != nil {
		out.FreeTrial = &entities.FreeTrial{
			Frequency:     in.FreeTrial.Frequency,
			FrequencyType: in.FreeTrial.FrequencyType,
		}
	}
	return out
}

func mapSubscriptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPlanReason),
		errors.Is(err, usecase.ErrMissingPayerEmail),
		errors.Is(err, usecase.ErrMissingRecurringAmount),
		errors.Is(err, usecase.ErrMissingSubscriptionReference):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidSubscriptionStatus):
		return pkg.NewDomainErrorSimple("INVALID_SUBSCRIPTION_STATUS", err.Error(), http.StatusUnprocessableEntity).
			WithDetails(map[string]interface{}{"valid_statuses": entities.ValidSubscriptionStatuses()})
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_FOUND", "Subscription not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubscriptionTransitionDenied),
		errors.Is(err, usecase.ErrSubscriptionChargeNotAllowed):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
