package response

import (
	"time"

	"gatewaysim/internal/domain/entities"
)

type WebhookResponse struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Events      []string  `json:"events"`
	Active      bool      `json:"active"`
	DateCreated time.Time `json:"date_created"`
}

func FromWebhook(w entities.WebhookRegistration) WebhookResponse {
	return WebhookResponse{
		ID:          w.ID,
		URL:         w.URL,
		Events:      w.Events,
		Active:      w.Active,
		DateCreated: w.DateCreated,
	}
}

func FromWebhooks(regs []entities.WebhookRegistration) []WebhookResponse {
	out := make([]WebhookResponse, 0, len(regs))
	for _, w := range regs {
		out = append(out, FromWebhook(w))
	}
	return out
}

type WebhookLogResponse struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	Event        string    `json:"event"`
	ResourceID   string    `json:"resource_id"`
	StatusCode   int       `json:"status_code"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	ResponseBody string    `json:"response_body,omitempty"`
	DateCreated  time.Time `json:"date_created"`
}

func FromWebhookLog(l entities.WebhookDeliveryLog) WebhookLogResponse {
	return WebhookLogResponse{
		ID:           l.ID,
		URL:          l.URL,
		Event:        l.Event,
		ResourceID:   l.ResourceID,
		StatusCode:   l.StatusCode,
		Success:      l.Success,
		Error:        l.Error,
		ResponseBody: l.ResponseBody,
		DateCreated:  l.DateCreated,
	}
}

func FromWebhookLogs(logs []entities.WebhookDeliveryLog) []WebhookLogResponse {
	out := make([]WebhookLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, FromWebhookLog(l))
	}
	return out
}
