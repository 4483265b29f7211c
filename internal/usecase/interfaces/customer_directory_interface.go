package interfaces

import (
	"context"

	"taller_movil/internal/domain/entities"
)

// ICustomerDirectory abstracts the customer directory service consumed by the
// customer section of the workflow.

type ICustomerDirectory interface {
	Search(ctx context.Context, term string) ([]entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
}
