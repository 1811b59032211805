package interfaces

import (
	"context"

	"gatewaysim/internal/domain/entities"
)

// IPlanRepository abstracts DynamoDB persistence for preapproval plans.
type IPlanRepository interface {
	Create(ctx context.Context, p entities.Plan) (entities.Plan, error)
	GetByID(ctx context.Context, id string) (entities.Plan, error)
	List(ctx context.Context) ([]entities.Plan, error)
}
