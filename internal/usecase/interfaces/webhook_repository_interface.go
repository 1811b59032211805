package interfaces

import (
	"context"

	"gatewaysim/internal/domain/entities"
)

// IWebhookRepository abstracts DynamoDB persistence for webhook registrations.
type IWebhookRepository interface {
	Create(ctx context.Context, w entities.WebhookRegistration) (entities.WebhookRegistration, error)
	GetByID(ctx context.Context, id string) (entities.WebhookRegistration, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.WebhookRegistration, error)
}

// IWebhookLogRepository is the capped delivery journal. Append retains only
// the most recent entries; List returns them newest first.
type IWebhookLogRepository interface {
	Append(ctx context.Context, l entities.WebhookDeliveryLog) error
	List(ctx context.Context) ([]entities.WebhookDeliveryLog, error)
}
