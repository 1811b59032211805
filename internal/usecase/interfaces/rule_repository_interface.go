package interfaces

import (
	"context"

	"gatewaysim/internal/domain/entities"
)

// IRuleRepository abstracts DynamoDB persistence for simulation rules.
type IRuleRepository interface {
	Create(ctx context.Context, r entities.SimulationRule) (entities.SimulationRule, error)
	GetByID(ctx context.Context, id string) (entities.SimulationRule, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.SimulationRule, error)
}
