package interfaces

import (
	"context"

	"gatewaysim/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// GetByID returns a zero-value Payment (empty ID) and a nil error when the id
// is unknown; callers translate that into their own not-found error.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	ListBySubscriptionID(ctx context.Context, subscriptionID string) ([]entities.Payment, error)
	ListByExternalReference(ctx context.Context, externalReference string) ([]entities.Payment, error)
}
