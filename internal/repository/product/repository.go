package product

import (
	"context"

	"ecommerce-api/internal/domain"
)

// Repository persists and fetches products.
type Repository interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}
