package product

import (
	"context"
	"errors"
	"strings"

	"ecommerce-api/internal/domain"
	"github.com/shopspring/decimal"
)

type productRepo interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type Service struct {
	repo productRepo
}

func New(repo productRepo) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name required")
	}
	if in.Price.IsNegative() {
		return nil, errors.New("price must not be negative")
	}
	if in.Stock < 0 {
		return nil, errors.New("stock must not be negative")
	}
	return s.repo.Create(ctx, domain.Product{
		Name:  name,
		Price: in.Price,
		Stock: in.Stock,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
