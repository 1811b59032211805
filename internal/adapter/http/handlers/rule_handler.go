package handlers

import (
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

var errInvalidRulePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// RuleHandler handles HTTP requests for simulation rules and dry-run
// resolution.

type RuleHandler struct {
	usecase usecase.IRuleUseCase
}

func NewRuleHandler(uc usecase.IRuleUseCase) *RuleHandler {
	return &RuleHandler{usecase: uc}
}

// CreateRule registers a simulation rule.
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var payload request.RuleCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.Create(c.Request.Context(), usecase.RuleInput{
		Name:         payload.Name,
		Conditions:   payload.Conditions,
		Status:       payload.Status,
		StatusDetail: payload.StatusDetail,
		Priority:     payload.Priority,
		Active:       payload.Active,
	})
	if err != nil {
		log.Printf("[rule][handler] create failed err=%v", err)
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[rule][handler] create success rule_id=%s status=%s priority=%d", rule.ID, rule.Status, rule.Priority)

	c.JSON(http.StatusCreated, response.FromRule(rule))
}

// ListRules lists rules in evaluation order.
func (h *RuleHandler) ListRules(c *gin.Context) {
	rules, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRules(rules))
}

// DeleteRule removes a rule by id.
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[rule][handler] delete failed rule_id=%s err=%v", id, err)
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// SimulatePayment resolves an arbitrary payment payload against the current
// rule set without persisting anything.
func (h *RuleHandler) SimulatePayment(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	status, detail, err := h.usecase.Simulate(c.Request.Context(), raw)
	if err != nil {
		log.Printf("[rule][handler] simulate failed err=%v", err)
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SimulateResponse{
		Status:       string(status),
		StatusDetail: detail,
	})
}

func mapRuleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingRuleStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidRuleStatus):
		return pkg.NewDomainErrorSimple("INVALID_RULE_STATUS", err.Error(), http.StatusUnprocessableEntity).
			WithDetails(map[string]interface{}{"valid_statuses": entities.ValidPaymentStatuses()})
	case errors.Is(err, usecase.ErrRuleNotFound):
		return pkg.NewDomainErrorSimple("RULE_NOT_FOUND", "Simulation rule not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
