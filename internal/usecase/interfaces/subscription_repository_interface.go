package interfaces

import (
	"context"

	"gatewaysim/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription.
//
// Lookups that miss return a zero-value Subscription with a nil error.
type ISubscriptionRepository interface {
	Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	GetByID(ctx context.Context, id string) (entities.Subscription, error)
	Update(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	List(ctx context.Context) ([]entities.Subscription, error)
	GetByExternalReference(ctx context.Context, externalReference string) (entities.Subscription, error)
}
