package payment

import (
	"context"

	"ecommerce-api/internal/domain"
)

// Repository persists payment methods. No charging logic lives here.
type Repository interface {
	Create(ctx context.Context, pm domain.PaymentMethod) (*domain.PaymentMethod, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.PaymentMethod, error)
}
