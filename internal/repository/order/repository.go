package order

import (
	"context"

	"ecommerce-api/internal/domain"
)

// Repository reads orders. Order placement is out of scope; rows arrive via
// seeding or external tooling.
type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}
