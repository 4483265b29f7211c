package interfaces

import (
	"context"

	"taller_movil/internal/domain/entities"
)

// IDepositPaymentRepository abstracts DynamoDB persistence for DepositPayment.

type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByDraftID(ctx context.Context, draftID string) ([]entities.DepositPayment, error)
}
