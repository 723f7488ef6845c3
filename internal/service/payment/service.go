package payment

import (
	"context"
	"errors"
	"strings"

	"ecommerce-api/internal/domain"
	"github.com/shopspring/decimal"
)

type paymentRepo interface {
	Create(ctx context.Context, pm domain.PaymentMethod) (*domain.PaymentMethod, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.PaymentMethod, error)
}

// Service stores payment methods on file. It never charges them.
type Service struct {
	repo paymentRepo
}

func New(repo paymentRepo) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	UserID  int64           `json:"user_id"`
	Name    string          `json:"name"`
	CardNum string          `json:"card_num"`
	CVV     string          `json:"cvv"`
	ExpDate string          `json:"exp_date"`
	Balance decimal.Decimal `json:"balance"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.PaymentMethod, error) {
	if in.UserID <= 0 {
		return nil, errors.New("user_id required")
	}
	if strings.TrimSpace(in.CardNum) == "" {
		return nil, errors.New("card_num required")
	}
	return s.repo.Create(ctx, domain.PaymentMethod{
		UserID:  in.UserID,
		Name:    strings.TrimSpace(in.Name),
		CardNum: strings.TrimSpace(in.CardNum),
		CVV:     strings.TrimSpace(in.CVV),
		ExpDate: strings.TrimSpace(in.ExpDate),
		Balance: in.Balance,
	})
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.PaymentMethod, error) {
	return s.repo.ListByUser(ctx, userID)
}
