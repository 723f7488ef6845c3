package user

import (
	"context"

	"ecommerce-api/internal/domain"
)

type userRepo interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Service exposes read access to users; account creation lives in the auth
// service.
type Service struct {
	repo userRepo
}

func New(repo userRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
