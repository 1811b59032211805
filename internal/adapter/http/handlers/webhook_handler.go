package handlers

import (
	"errors"
	"log"
	"net/http"

	request "gatewaysim/internal/adapter/http/dto/request"
	response "gatewaysim/internal/adapter/http/dto/response"
	"gatewaysim/internal/usecase"
	"gatewaysim/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// WebhookHandler handles HTTP requests for webhook registrations and the
// delivery journal.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// RegisterWebhook registers a delivery target.
func (h *WebhookHandler) RegisterWebhook(c *gin.Context) {
	var payload request.WebhookCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	registration, err := h.usecase.Register(c.Request.Context(), usecase.WebhookInput{
		URL:    payload.URL,
		Events: payload.Events,
		Active: payload.Active,
	})
	if err != nil {
		log.Printf("[webhook][handler] register failed err=%v", err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] register success webhook_id=%s url=%s", registration.ID, registration.URL)

	c.JSON(http.StatusCreated, response.FromWebhook(registration))
}

// ListWebhooks lists registered delivery targets.
func (h *WebhookHandler) ListWebhooks(c *gin.Context) {
	registrations, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWebhooks(registrations))
}

// DeleteWebhook removes a registration by id.
func (h *WebhookHandler) DeleteWebhook(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[webhook][handler] delete failed webhook_id=%s err=%v", id, err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListWebhookLogs returns the delivery journal, newest first.
func (h *WebhookHandler) ListWebhookLogs(c *gin.Context) {
	logs, err := h.usecase.Logs(c.Request.Context())
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWebhookLogs(logs))
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookURL):
		return pkg.NewDomainErrorSimple("INVALID_WEBHOOK_URL", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrWebhookNotFound):
		return pkg.NewDomainErrorSimple("WEBHOOK_NOT_FOUND", "Webhook registration not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
